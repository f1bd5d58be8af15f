package trie

import "iter"

// All 先序遍历所有键及其记录
// 子节点按字母表下标升序访问, 每次调用都会从根节点重新遍历
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.walk(t.root, make([]byte, 0, MaxKeyLength), yield)
	}
}

// Prefix 遍历以 prefix 开头的所有键; prefix 非法或不存在时序列为空
func (t *Trie[V]) Prefix(raw string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		key, err := t.alphabet.Normalize(raw)
		if err != nil {
			return
		}
		n := t.descend(key)
		if n == nil {
			return
		}
		path := make([]byte, 0, MaxKeyLength)
		t.walk(n, append(path, key...), yield)
	}
}

// Keys 按遍历顺序返回所有键
func (t *Trie[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// walk 返回 false 表示调用方要求停止遍历
func (t *Trie[V]) walk(n *node[V], path []byte, yield func(string, V) bool) bool {
	if n.terminal && !yield(string(path), n.record) {
		return false
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if !t.walk(c, append(path, t.alphabet.Symbol(i)), yield) {
			return false
		}
	}
	return true
}
