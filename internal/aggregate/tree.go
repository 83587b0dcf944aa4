package aggregate

import (
	"math"
	"math/rand/v2"
)

// key 按 (sortKey, itemID) 排序；同一 sortKey 下以 itemID 决胜，保证重放结果确定。
type key struct {
	sort int64
	id   string
}

func (k key) less(other key) bool {
	if k.sort != other.sort {
		return k.sort < other.sort
	}
	return k.id < other.id
}

type node struct {
	key         key
	priority    uint64
	size        int
	left, right *node
}

func sizeOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node) update() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// split 将 t 拆分为 (< k) 与 (>= k) 两棵树。
func split(t *node, k key) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	if t.key.less(k) {
		l, r := split(t.right, k)
		t.right = l
		t.update()
		return t, r
	}
	l, r := split(t.left, k)
	t.left = r
	t.update()
	return l, t
}

// merge 要求 l 中所有键小于 r 中所有键。
func merge(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		l.right = merge(l.right, r)
		l.update()
		return l
	}
	r.left = merge(l, r.left)
	r.update()
	return r
}

func erase(t *node, k key) *node {
	if t == nil {
		return nil
	}
	if t.key == k {
		return merge(t.left, t.right)
	}
	if k.less(t.key) {
		t.left = erase(t.left, k)
	} else {
		t.right = erase(t.right, k)
	}
	t.update()
	return t
}

// tree 是带子树计数的 treap，提供期望 O(log n) 的插入、删除与秩查询。
type tree struct {
	root *node
}

func (t *tree) len() int {
	return sizeOf(t.root)
}

func (t *tree) contains(k key) bool {
	n := t.root
	for n != nil {
		switch {
		case n.key == k:
			return true
		case k.less(n.key):
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

func (t *tree) insert(k key) bool {
	if t.contains(k) {
		return false
	}
	l, r := split(t.root, k)
	t.root = merge(merge(l, &node{key: k, priority: rand.Uint64(), size: 1}), r)
	return true
}

func (t *tree) remove(k key) bool {
	if !t.contains(k) {
		return false
	}
	t.root = erase(t.root, k)
	return true
}

// rank 返回严格小于 k 的键数量。
func (t *tree) rank(k key) int {
	n, count := t.root, 0
	for n != nil {
		if n.key.less(k) {
			count += sizeOf(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return count
}

// countBelow 返回 sortKey < sortKey 的键数量；"" 是最小的 itemID。
func (t *tree) countBelow(sortKey int64) int {
	return t.rank(key{sort: sortKey})
}

// countRange 返回 sortKey 位于 [lower, upper] 的键数量。
func (t *tree) countRange(lower, upper int64) int {
	if lower > upper {
		return 0
	}
	high := t.len()
	if upper != math.MaxInt64 {
		high = t.countBelow(upper + 1)
	}
	return high - t.countBelow(lower)
}

func (t *tree) reset() {
	t.root = nil
}

// walk 按顺序遍历所有键，仅用于测试与调试。
func (t *tree) walk(fn func(key)) {
	var visit func(*node)
	visit = func(n *node) {
		if n == nil {
			return
		}
		visit(n.left)
		fn(n.key)
		visit(n.right)
	}
	visit(t.root)
}
