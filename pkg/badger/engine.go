package badger

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// closeTimeout 关闭数据库的最长等待时间
const closeTimeout = 5 * time.Second

// DefaultGCInterval 默认的 value log GC 间隔
const DefaultGCInterval = 5 * time.Minute

// Engine badger引擎
type Engine struct {
	db  *badger.DB  // badgerDB
	log *zap.Logger // 日志

	gcInterval   time.Duration      // GC间隔时间
	gcUpdateChan chan time.Duration // GC更新间隔时间信号

	done             chan struct{} // 退出信号
	doneSuccessChain chan struct{} // 退出成功信号
	closeOnce        sync.Once
	err              error // 关闭时产生的错误
}

// New 创建一个badger引擎
func New(opt badger.Options, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	opt = opt.WithLogger(badgerLogger{log.Named("badger").Sugar()})

	db, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	be := &Engine{
		db:  db,
		log: log,

		gcInterval:   DefaultGCInterval,
		gcUpdateChan: make(chan time.Duration),

		done:             make(chan struct{}),
		doneSuccessChain: make(chan struct{}),
	}
	go be.listener()
	return be, nil
}

// Default 创建一个默认的badger引擎
// path 为空时使用内存模式, 数据不会落盘
func Default(path string, log *zap.Logger) (*Engine, error) {
	if path == "" {
		return New(badger.DefaultOptions("").WithInMemory(true), log)
	}
	return New(badger.DefaultOptions(path), log)
}

// listener 监听GC与关闭信号
func (e *Engine) listener() {
	ticker := time.NewTicker(e.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := e.db.RunValueLogGC(0.5); err != nil {
				e.log.Debug("value log gc skipped", zap.Error(err))
			}
		case interval := <-e.gcUpdateChan:
			e.gcInterval = interval
			ticker.Reset(interval)
		case <-e.done:
			e.err = e.db.Close()
			close(e.doneSuccessChain)
			return
		}
	}
}

// Close 关闭badger引擎, 可重复调用
func (e *Engine) Close() error {
	e.closeOnce.Do(func() { close(e.done) })
	select {
	case <-e.doneSuccessChain:
		return e.err
	case <-time.After(closeTimeout):
		return errors.New("badger engine close timeout")
	}
}

// SetGCInterval 设置GC间隔
func (e *Engine) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.doneSuccessChain:
	}
}

// badgerLogger 将 badger 日志转发到 zap
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.Warnf(format, args...)
}
