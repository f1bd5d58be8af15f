package trie

import "errors"

var (
	// ErrInvalidKey 键包含字母表之外的字符, 或规范化后为空
	ErrInvalidKey = errors.New("invalid key")
	// ErrNotFound 键不存在
	ErrNotFound = errors.New("key not found")
)
