package trie

// node 前缀树节点
type node[V any] struct {
	children []*node[V] // 子节点, 按字母表下标寻址, 由父节点独占
	kids     int        // 非空子节点数量
	terminal bool       // 是否是一个键的结尾
	record   V          // 如果是键尾, 存储对应记录
}

// newNode 创建一个新的前缀树节点
func newNode[V any](size int) *node[V] {
	return &node[V]{
		children: make([]*node[V], size),
	}
}

// child 返回下标 i 处的子节点, 不存在时按需创建
func (n *node[V]) child(i int) *node[V] {
	if n.children[i] == nil {
		n.children[i] = newNode[V](len(n.children))
		n.kids++
	}
	return n.children[i]
}

// drop 移除下标 i 处的子节点及其整棵子树
func (n *node[V]) drop(i int) {
	if n.children[i] != nil {
		n.children[i] = nil
		n.kids--
	}
}

// unmark 取消键尾标记并清空记录
func (n *node[V]) unmark() {
	var zero V
	n.terminal = false
	n.record = zero
}

// prunable 非键尾且没有子节点的节点不应继续保留
func (n *node[V]) prunable() bool {
	return !n.terminal && n.kids == 0
}
