package dictionary

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
	"go.uber.org/zap"

	"github.com/miajio/keytrie/pkg/badger"
	"github.com/miajio/keytrie/pkg/metrics"
)

// variant 指标中的字典标签
const variant = "dictionary"

// keyPrefix 字典在 badger 中的键前缀
var keyPrefix = []byte("dict:")

// 加入分词器的词频与词性
const (
	tokenFrequency = 1000.0
	tokenPos       = "nz"
)

// Engine 字典引擎: 前缀树 + badger 持久化 + gse 分词
type Engine struct {
	dict      *Dictionary      // 前缀树字典
	dbEngine  *badger.Engine   // 数据库
	segmenter gse.Segmenter    // 分词器
	log       *zap.Logger      // 日志
	metrics   *metrics.Metrics // 指标, 可为nil
}

// Translation 句子中一个词的翻译结果
type Translation struct {
	Token        string   // 分词结果
	Translations []string // 翻译, 未找到时为空
	Found        bool     // 是否在字典中
}

// NewEngine 创建字典引擎, 并从数据库加载已有单词
func NewEngine(dbEngine *badger.Engine, log *zap.Logger, m *metrics.Metrics) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dict := New()
	if err := loadDictionaryFromDB(dbEngine, dict); err != nil {
		return nil, fmt.Errorf("read db load dict fail: %w", err)
	}

	seg, err := gse.New()
	if err != nil {
		return nil, fmt.Errorf("init gse segmenter fail: %w", err)
	}
	loadDictionaryIntoSegmenter(dict, &seg)

	e := &Engine{
		dict:      dict,
		dbEngine:  dbEngine,
		segmenter: seg,
		log:       log,
		metrics:   m,
	}
	e.updateSize()
	log.Info("dictionary loaded", zap.Int("words", dict.Len()))
	return e, nil
}

// loadDictionaryFromDB 从数据库加载单词到前缀树
func loadDictionaryFromDB(dbEngine *badger.Engine, dict *Dictionary) error {
	return dbEngine.Scan(keyPrefix, func(key, value []byte) error {
		if _, _, err := dict.Add(string(key), string(value)); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		return nil
	})
}

// loadDictionaryIntoSegmenter 从前缀树加载单词到 gse
func loadDictionaryIntoSegmenter(dict *Dictionary, seg *gse.Segmenter) {
	contents := make([]string, 0, dict.Len())
	for word := range dict.Entries() {
		contents = append(contents, fmt.Sprintf("%s %f %s", strings.ToLower(word), tokenFrequency, tokenPos))
	}
	if len(contents) > 0 {
		seg.LoadDictStr(strings.Join(contents, "\n"))
	}
}

// Dictionary 返回底层字典
func (e *Engine) Dictionary() *Dictionary { return e.dict }

// AddWord 为单词追加翻译, 写入前缀树与数据库
func (e *Engine) AddWord(word, translations string) (string, error) {
	key, merged, err := e.dict.Add(word, translations)
	e.metrics.Observe(variant, "add", err)
	if err != nil {
		return "", err
	}

	if err := e.dbEngine.Set(append(append([]byte{}, keyPrefix...), key...), []byte(merged)); err != nil {
		e.log.Error("save word fail", zap.String("word", key), zap.Error(err))
		return merged, fmt.Errorf("save word %s to db fail: %w", key, err)
	}
	e.segmenter.AddToken(strings.ToLower(key), tokenFrequency, tokenPos)

	e.updateSize()
	e.log.Debug("word added", zap.String("word", key), zap.String("translations", merged))
	return merged, nil
}

// Lookup 查找单词的翻译
func (e *Engine) Lookup(word string) (string, error) {
	t, err := e.dict.Lookup(word)
	e.metrics.Observe(variant, "lookup", err)
	return t, err
}

// RemoveWord 从前缀树与数据库中删除单词
func (e *Engine) RemoveWord(word string) error {
	key, err := e.dict.Remove(word)
	e.metrics.Observe(variant, "delete", err)
	if err != nil {
		return err
	}

	if err := e.dbEngine.Del(append(append([]byte{}, keyPrefix...), key...)); err != nil {
		e.log.Error("delete word fail", zap.String("word", key), zap.Error(err))
		return fmt.Errorf("delete word %s from db fail: %w", key, err)
	}
	e.updateSize()
	return nil
}

// Export 将字典导出到文本文件, 每行 "WORD t1,t2"
func (e *Engine) Export(path string) error {
	err := e.dict.SaveFile(path)
	e.metrics.Observe(variant, "save", err)
	if err != nil {
		return err
	}
	e.log.Info("dictionary saved", zap.String("path", path), zap.Int("words", e.dict.Len()))
	return nil
}

// Import 从文本文件读取单词并与现有翻译合并, 同时写入数据库.
// 文件解析或写库失败时前缀树与数据库均保持不变.
func (e *Engine) Import(path string) (int, error) {
	staged := New()
	n, err := staged.LoadFile(path)
	e.metrics.Observe(variant, "load", err)
	if err != nil {
		return 0, err
	}

	merged := make(map[string]string, staged.Len())
	for word, translations := range staged.Entries() {
		old, _ := e.dict.Lookup(word)
		merged[word] = MergeTranslations(old, translations)
	}

	values := make(map[string][]byte, len(merged))
	for word, translations := range merged {
		values[word] = []byte(translations)
	}
	if err := e.dbEngine.SetAll(keyPrefix, values); err != nil {
		e.log.Error("import words fail", zap.String("path", path), zap.Error(err))
		return 0, fmt.Errorf("save imported words to db fail: %w", err)
	}

	for word, translations := range merged {
		_, _ = e.dict.words.Put(word, translations) // 键已规范化
		e.segmenter.AddToken(strings.ToLower(word), tokenFrequency, tokenPos)
	}
	e.updateSize()
	e.log.Info("dictionary loaded from file", zap.String("path", path), zap.Int("words", n))
	return n, nil
}

// Translate 对文本分词, 并逐词查询翻译; 标点与空白会被跳过
func (e *Engine) Translate(text string) []Translation {
	var out []Translation
	for _, token := range e.segmenter.Cut(text, true) {
		if IsSpecialChar(token) {
			continue
		}
		tr := Translation{Token: token}
		if ts, err := e.dict.Translations(token); err == nil {
			tr.Translations, tr.Found = ts, true
		}
		out = append(out, tr)
	}
	return out
}

// Close 关闭数据库
func (e *Engine) Close() error {
	return e.dbEngine.Close()
}

func (e *Engine) updateSize() {
	e.metrics.SetSize(variant, e.dict.Len(), e.dict.Nodes())
}
