// Package trie 实现一个按固定字母表寻址的前缀树.
//
// 每个节点持有一个长度等于字母表大小的子节点数组; 记录类型 V 对前缀树不透明,
// 字典与 RUT 登记簿共用同一套插入, 查找, 删除与遍历逻辑.
// Trie 不是并发安全的.
package trie

import "fmt"

// Trie 前缀树
type Trie[V any] struct {
	alphabet Alphabet
	root     *node[V]
	size     int // 键尾节点数量
}

// New 创建一个使用指定字母表的空前缀树
func New[V any](alphabet Alphabet) *Trie[V] {
	return &Trie[V]{
		alphabet: alphabet,
		root:     newNode[V](alphabet.Size()),
	}
}

// Alphabet 返回前缀树使用的字母表
func (t *Trie[V]) Alphabet() Alphabet { return t.alphabet }

// Len 已存储的键数量
func (t *Trie[V]) Len() int { return t.size }

// Nodes 当前节点总数, 包含根节点
func (t *Trie[V]) Nodes() int {
	count := 0
	var walk func(n *node[V])
	walk = func(n *node[V]) {
		count++
		for _, c := range n.children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(t.root)
	return count
}

// Clear 清空整棵树
func (t *Trie[V]) Clear() {
	t.root = newNode[V](t.alphabet.Size())
	t.size = 0
}

// Put 插入或覆盖键对应的记录, 返回规范化后的键
func (t *Trie[V]) Put(raw string, record V) (string, error) {
	return t.Upsert(raw, func(V, bool) V { return record })
}

// Upsert 插入键, 由 fn 根据旧记录计算新记录
// 键非法时不会创建或修改任何节点
func (t *Trie[V]) Upsert(raw string, fn func(old V, exists bool) V) (string, error) {
	key, err := t.alphabet.Normalize(raw)
	if err != nil {
		return "", err
	}

	n := t.root
	for i := 0; i < len(key); i++ {
		n = n.child(t.alphabet.Index(key[i]))
	}

	n.record = fn(n.record, n.terminal)
	if !n.terminal {
		n.terminal = true
		t.size++
	}
	return key, nil
}

// Modify 修改已存在键的记录, 不会创建节点
func (t *Trie[V]) Modify(raw string, fn func(V) V) (string, error) {
	key, n, err := t.find(raw)
	if err != nil {
		return key, err
	}
	n.record = fn(n.record)
	return key, nil
}

// Get 精确查找键对应的记录
func (t *Trie[V]) Get(raw string) (V, error) {
	_, n, err := t.find(raw)
	if err != nil {
		var zero V
		return zero, err
	}
	return n.record, nil
}

// Contains 判断键是否存在
func (t *Trie[V]) Contains(raw string) bool {
	_, _, err := t.find(raw)
	return err == nil
}

// find 查找键尾节点
func (t *Trie[V]) find(raw string) (string, *node[V], error) {
	key, err := t.alphabet.Normalize(raw)
	if err != nil {
		return "", nil, err
	}
	n := t.descend(key)
	if n == nil || !n.terminal {
		return key, nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return key, n, nil
}

// descend 沿规范化键向下查找节点, 路径中断时返回 nil
func (t *Trie[V]) descend(key string) *node[V] {
	n := t.root
	for i := 0; i < len(key) && n != nil; i++ {
		n = n.children[t.alphabet.Index(key[i])]
	}
	return n
}

// Delete 删除键, 并自底向上剪除不再需要的节点
// 被其他键共享的前缀节点不会被删除
func (t *Trie[V]) Delete(raw string) (string, error) {
	key, err := t.alphabet.Normalize(raw)
	if err != nil {
		return "", err
	}
	if found, _ := t.remove(t.root, key, 0); !found {
		return key, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	t.size--
	return key, nil
}

// remove 递归删除, 返回键是否找到以及当前节点能否被父节点剪除
func (t *Trie[V]) remove(n *node[V], key string, depth int) (found, prune bool) {
	if depth == len(key) {
		if !n.terminal {
			return false, false
		}
		n.unmark()
		return true, n.kids == 0
	}

	i := t.alphabet.Index(key[depth])
	c := n.children[i]
	if c == nil {
		return false, false
	}

	found, prune = t.remove(c, key, depth+1)
	if prune {
		n.drop(i)
	}
	return found, found && n.prunable()
}
