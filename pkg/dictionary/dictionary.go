// Package dictionary 单词到翻译列表的字典, 基于 A-Z 前缀树
package dictionary

import (
	"errors"
	"fmt"
	"iter"

	"github.com/miajio/keytrie/pkg/trie"
)

// ErrNoTranslations 插入时没有给出任何翻译
var ErrNoTranslations = errors.New("no translations given")

// Dictionary 字典
type Dictionary struct {
	words *trie.Trie[string] // 键为大写单词, 值为逗号连接的翻译
}

// New 创建空字典
func New() *Dictionary {
	return &Dictionary{words: trie.New[string](trie.Letters)}
}

// Add 为单词追加翻译, 返回规范化单词与合并后的翻译
func (d *Dictionary) Add(word, translations string) (string, string, error) {
	if _, err := d.words.Alphabet().Normalize(word); err != nil {
		return "", "", err
	}
	if len(SplitTranslations(translations)) == 0 {
		return "", "", fmt.Errorf("%w for %q", ErrNoTranslations, word)
	}
	var merged string
	key, err := d.words.Upsert(word, func(old string, _ bool) string {
		merged = MergeTranslations(old, translations)
		return merged
	})
	if err != nil {
		return "", "", err
	}
	return key, merged, nil
}

// Lookup 查找单词的翻译
func (d *Dictionary) Lookup(word string) (string, error) {
	return d.words.Get(word)
}

// Translations 以切片形式返回单词的翻译
func (d *Dictionary) Translations(word string) ([]string, error) {
	t, err := d.words.Get(word)
	if err != nil {
		return nil, err
	}
	return SplitTranslations(t), nil
}

// Remove 删除单词
func (d *Dictionary) Remove(word string) (string, error) {
	return d.words.Delete(word)
}

// Suggest 返回以 prefix 开头的所有单词
func (d *Dictionary) Suggest(prefix string) []string {
	var words []string
	for w := range d.words.Prefix(prefix) {
		words = append(words, w)
	}
	return words
}

// Entries 按字母顺序遍历所有单词及翻译
func (d *Dictionary) Entries() iter.Seq2[string, string] {
	return d.words.All()
}

// Len 单词数量
func (d *Dictionary) Len() int { return d.words.Len() }

// Nodes 底层前缀树节点数量
func (d *Dictionary) Nodes() int { return d.words.Nodes() }
