// Package registry 以 RUT 为键的个人信息登记簿.
//
// RUT 在存储前被规范化: 忽略 '.', ' ', '-', 校验位 k 统一为 K,
// 因此 "12.345.678-K" 与 "12345678k" 指向同一条记录.
package registry

import (
	"iter"

	"github.com/miajio/keytrie/pkg/trie"
)

// Registry RUT 登记簿
type Registry struct {
	people *trie.Trie[Person]
}

// New 创建空登记簿
func New() *Registry {
	return &Registry{people: trie.New[Person](trie.RUT)}
}

// Add 登记或整体覆盖一条记录, 返回规范化后的 RUT
func (r *Registry) Add(rut string, p Person) (string, error) {
	return r.people.Put(rut, p)
}

// SetStatus 修改已登记 RUT 的债务状态, 其余字段不变
func (r *Registry) SetStatus(rut string, s Status) (string, error) {
	return r.people.Modify(rut, func(p Person) Person {
		p.Status = s
		return p
	})
}

// MarkNotDebtor 将已登记 RUT 标记为非债务人
func (r *Registry) MarkNotDebtor(rut string) (string, error) {
	return r.SetStatus(rut, NotDebtor)
}

// Lookup 查找 RUT 对应的记录
func (r *Registry) Lookup(rut string) (Person, error) {
	return r.people.Get(rut)
}

// Remove 删除 RUT
func (r *Registry) Remove(rut string) (string, error) {
	return r.people.Delete(rut)
}

// Entries 按 RUT 字符顺序遍历所有记录
func (r *Registry) Entries() iter.Seq2[string, Person] {
	return r.people.All()
}

// Len 登记数量
func (r *Registry) Len() int { return r.people.Len() }

// Nodes 底层前缀树节点数量
func (r *Registry) Nodes() int { return r.people.Nodes() }
