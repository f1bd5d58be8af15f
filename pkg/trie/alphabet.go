package trie

import "fmt"

// MaxKeyLength 规范化后键的最大长度, 同时限制了递归深度
const MaxKeyLength = 256

// Alphabet 字母表: 决定子节点的数量以及键的规范化方式
type Alphabet interface {
	// Size 符号数量, 即每个节点子节点数组的长度
	Size() int
	// Index 返回规范化字符对应的下标, 非法字符返回 -1
	Index(c byte) int
	// Symbol 下标对应的规范化字符
	Symbol(i int) byte
	// Normalize 将原始输入转换为规范化键
	Normalize(raw string) (string, error)
}

// Letters 字典使用的字母表: A-Z, 不区分大小写, 规范化为大写
var Letters Alphabet = letters{}

// RUT 智利身份证号字母表: 0-9 与校验位 K
// 输入中的 '.', ' ', '-' 会被忽略
var RUT Alphabet = rut{}

type letters struct{}

func (letters) Size() int { return 26 }

func (letters) Index(c byte) int {
	if c >= 'A' && c <= 'Z' {
		return int(c - 'A')
	}
	return -1
}

func (letters) Symbol(i int) byte { return byte('A' + i) }

func (letters) Normalize(raw string) (string, error) {
	key := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'A' && c <= 'Z':
			key = append(key, c)
		case c >= 'a' && c <= 'z':
			key = append(key, c-'a'+'A')
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidKey, raw, c)
		}
	}
	return checkLength(raw, key)
}

type rut struct{}

func (rut) Size() int { return 11 }

func (rut) Index(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == 'K':
		return 10
	}
	return -1
}

func (rut) Symbol(i int) byte {
	if i == 10 {
		return 'K'
	}
	return byte('0' + i)
}

func (rut) Normalize(raw string) (string, error) {
	key := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '.' || c == ' ' || c == '-':
			// 分隔符直接忽略
		case c >= '0' && c <= '9', c == 'K':
			key = append(key, c)
		case c == 'k':
			key = append(key, 'K')
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidKey, raw, c)
		}
	}
	return checkLength(raw, key)
}

func checkLength(raw string, key []byte) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("%w: %q is empty", ErrInvalidKey, raw)
	}
	if len(key) > MaxKeyLength {
		return "", fmt.Errorf("%w: %q longer than %d symbols", ErrInvalidKey, raw, MaxKeyLength)
	}
	return string(key), nil
}
