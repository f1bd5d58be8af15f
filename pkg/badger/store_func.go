package badger

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// ErrKeyNotFound 键不存在
var ErrKeyNotFound = badger.ErrKeyNotFound

// badgerTX 事务函数
type badgerTX func(tx *badger.Txn) error

// txSet 读写事务
func (e *Engine) txSet(tx badgerTX) error {
	return e.db.Update(tx)
}

// txGet 只读事务
func (e *Engine) txGet(tx badgerTX) error {
	return e.db.View(tx)
}

// Set 设置参数
func (e *Engine) Set(key, value []byte) error {
	return e.txSet(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	})
}

// Get 获取参数
func (e *Engine) Get(key []byte) ([]byte, error) {
	var value []byte
	err := e.txGet(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

// Del 删除参数
func (e *Engine) Del(key []byte) error {
	return e.txSet(func(tx *badger.Txn) error {
		return tx.Delete(key)
	})
}

// BadgerBatch 批量操作
type BadgerBatch func(*badger.WriteBatch) error

// Batch 批量写入, bb 返回错误时整批放弃
func (e *Engine) Batch(bb BadgerBatch) error {
	wb := e.db.NewWriteBatch()
	if err := bb(wb); err != nil {
		wb.Cancel()
		return err
	}
	return wb.Flush()
}

// Replace 用 entries 整体替换 prefix 下的所有键
func (e *Engine) Replace(prefix []byte, entries map[string][]byte) error {
	if err := e.db.DropPrefix(prefix); err != nil {
		return err
	}
	return e.SetAll(prefix, entries)
}

// SetAll 在 prefix 下批量写入 entries, 已有的其他键不受影响
func (e *Engine) SetAll(prefix []byte, entries map[string][]byte) error {
	return e.Batch(func(wb *badger.WriteBatch) error {
		for k, v := range entries {
			if err := wb.Set(append(append([]byte{}, prefix...), k...), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Scan 按键顺序遍历 prefix 下的所有键值
// fn 收到的 key 已去掉 prefix, key 与 value 只在回调期间有效
func (e *Engine) Scan(prefix []byte, fn func(key, value []byte) error) error {
	return e.txGet(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := item.Key()[len(prefix):]
			if err := item.Value(func(val []byte) error {
				return fn(key, val)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetKey 获取所有key
// @param prefix 前缀, 为nil时返回全部
func (e *Engine) GetKey(prefix []byte) ([][]byte, error) {
	var keys [][]byte

	err := e.txGet(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // 只获取键，不获取值

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})

	return keys, err
}

// Exists 判断key是否存在
func (e *Engine) Exists(key []byte) (bool, error) {
	var exists bool
	err := e.txGet(func(tx *badger.Txn) error {
		_, err := tx.Get(key)
		if err == nil {
			exists = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	return exists, err
}
