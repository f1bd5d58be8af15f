package registry

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/miajio/keytrie/pkg/badger"
	"github.com/miajio/keytrie/pkg/metrics"
)

// variant 指标中的登记簿标签
const variant = "registry"

// keyPrefix 登记簿在 badger 中的键前缀
var keyPrefix = []byte("rut:")

// Engine 登记簿引擎: 前缀树 + badger 持久化
// 每条记录在 badger 中以记录块文本保存, 与导出文件格式一致
type Engine struct {
	reg      *Registry
	dbEngine *badger.Engine
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// NewEngine 创建登记簿引擎, 并从数据库加载已有记录
func NewEngine(dbEngine *badger.Engine, log *zap.Logger, m *metrics.Metrics) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	reg := New()
	err := dbEngine.Scan(keyPrefix, func(key, value []byte) error {
		rut, p, err := decodeRecord(string(value))
		if err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		_, err = reg.Add(rut, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read db load registry fail: %w", err)
	}

	e := &Engine{reg: reg, dbEngine: dbEngine, log: log, metrics: m}
	e.updateSize()
	log.Info("registry loaded", zap.Int("ruts", reg.Len()))
	return e, nil
}

// Registry 返回底层登记簿
func (e *Engine) Registry() *Registry { return e.reg }

// Add 登记或覆盖一条记录
func (e *Engine) Add(rut string, p Person) (string, error) {
	key, err := e.reg.Add(rut, p)
	e.metrics.Observe(variant, "add", err)
	if err != nil {
		return "", err
	}
	return key, e.persist(key, p)
}

// MarkNotDebtor 将已登记的 RUT 标记为非债务人
func (e *Engine) MarkNotDebtor(rut string) (string, error) {
	key, err := e.reg.MarkNotDebtor(rut)
	e.metrics.Observe(variant, "mark", err)
	if err != nil {
		return key, err
	}
	p, err := e.reg.Lookup(key)
	if err != nil {
		return key, err
	}
	return key, e.persist(key, p)
}

// Lookup 查找记录
func (e *Engine) Lookup(rut string) (Person, error) {
	p, err := e.reg.Lookup(rut)
	e.metrics.Observe(variant, "lookup", err)
	return p, err
}

// Remove 删除记录
func (e *Engine) Remove(rut string) (string, error) {
	key, err := e.reg.Remove(rut)
	e.metrics.Observe(variant, "delete", err)
	if err != nil {
		return key, err
	}
	if err := e.dbEngine.Del(dbKey(key)); err != nil {
		e.log.Error("delete rut fail", zap.String("rut", key), zap.Error(err))
		return key, fmt.Errorf("delete rut %s from db fail: %w", key, err)
	}
	e.updateSize()
	return key, nil
}

// Save 将登记簿导出到文本文件
func (e *Engine) Save(path string) error {
	err := e.reg.SaveFile(path)
	e.metrics.Observe(variant, "save", err)
	if err != nil {
		return err
	}
	e.log.Info("registry saved", zap.String("path", path), zap.Int("ruts", e.reg.Len()))
	return nil
}

// Load 从文本文件导入记录, 并用导入后的登记簿整体替换数据库内容.
// 文件解析或写库失败时内存与数据库均保持不变.
func (e *Engine) Load(path string) (int, error) {
	staged := New()
	n, err := staged.LoadFile(path)
	e.metrics.Observe(variant, "load", err)
	if err != nil {
		return 0, err
	}

	merged := New()
	merged.merge(e.reg)
	merged.merge(staged)
	if err := e.sync(merged); err != nil {
		return 0, err
	}
	e.reg = merged
	e.updateSize()
	e.log.Info("registry loaded from file", zap.String("path", path), zap.Int("records", n))
	return n, nil
}

// Close 关闭数据库
func (e *Engine) Close() error {
	return e.dbEngine.Close()
}

// persist 写入单条记录
func (e *Engine) persist(key string, p Person) error {
	var buf bytes.Buffer
	if err := writeRecord(&buf, key, p); err != nil {
		return err
	}
	if err := e.dbEngine.Set(dbKey(key), buf.Bytes()); err != nil {
		e.log.Error("save rut fail", zap.String("rut", key), zap.Error(err))
		return fmt.Errorf("save rut %s to db fail: %w", key, err)
	}
	e.updateSize()
	return nil
}

// sync 用 reg 替换数据库中的全部记录
func (e *Engine) sync(reg *Registry) error {
	entries := make(map[string][]byte, reg.Len())
	for rut, p := range reg.Entries() {
		var buf bytes.Buffer
		if err := writeRecord(&buf, rut, p); err != nil {
			return err
		}
		entries[rut] = buf.Bytes()
	}
	if err := e.dbEngine.Replace(keyPrefix, entries); err != nil {
		return fmt.Errorf("sync registry to db fail: %w", err)
	}
	return nil
}

func (e *Engine) updateSize() {
	e.metrics.SetSize(variant, e.reg.Len(), e.reg.Nodes())
}

func dbKey(rut string) []byte {
	return append(append([]byte{}, keyPrefix...), rut...)
}
