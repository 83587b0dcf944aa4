// Package aggregate 实现按命名空间隔离的顺序统计索引。
//
// 每个命名空间是一棵独立的 treap，键为 (sortKey, itemID)，节点维护子树大小，
// 因此插入、删除与区间计数都是 O(log n)，不会扫描事件全集。索引只是缓存：
// 它不会自我修复，发现漂移后只能 Clear 再由回填重建。
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/metrics"
)

var (
	// ErrEmptyNamespace 表示调用方未提供命名空间。
	ErrEmptyNamespace = errors.New("aggregate: empty namespace")
	// ErrNamespaceMismatch 表示 ReplaceOrInsert 的新旧条目不在同一命名空间。
	ErrNamespaceMismatch = errors.New("aggregate: replace across namespaces")
)

// Item 是索引中的一个逻辑节点。
type Item struct {
	Namespace string
	SortKey   int64
	ItemID    string
}

func (i Item) key() key {
	return key{sort: i.SortKey, id: i.ItemID}
}

// Persister 是索引的持久化镜像。写入先落盘再修改内存树。
type Persister interface {
	Apply(ctx context.Context, puts, deletes []Item) error
	ClearNamespace(ctx context.Context, namespace string) error
	Load(ctx context.Context, fn func(Item) error) error
	Close() error
}

type namespace struct {
	mu   sync.RWMutex
	tree tree
}

// Index 是可注入的顺序统计索引；persister 为 nil 时仅驻留内存。
type Index struct {
	namespaces *xsync.MapOf[string, *namespace]
	persister  Persister
	log        *log.Helper
}

// Durable 报告索引是否有持久化镜像。没有镜像时进程重启后索引为空。
func (ix *Index) Durable() bool {
	return ix.persister != nil
}

// NewIndex 构造 Index。
func NewIndex(persister Persister, logger log.Logger) *Index {
	return &Index{
		namespaces: xsync.NewMapOf[string, *namespace](),
		persister:  persister,
		log:        log.NewHelper(logger),
	}
}

// Open 从持久化镜像恢复内存树。
func (ix *Index) Open(ctx context.Context) error {
	if ix.persister == nil {
		return nil
	}
	loaded := 0
	err := ix.persister.Load(ctx, func(item Item) error {
		ns := ix.namespace(item.Namespace)
		ns.mu.Lock()
		ns.tree.insert(item.key())
		ns.mu.Unlock()
		loaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("load aggregate index: %w", err)
	}
	ix.log.WithContext(ctx).Infow("msg", "aggregate index loaded", "items", loaded, "namespaces", ix.namespaces.Size())
	return nil
}

// Close 释放持久化镜像。
func (ix *Index) Close() error {
	if ix.persister == nil {
		return nil
	}
	return ix.persister.Close()
}

func (ix *Index) namespace(name string) *namespace {
	ns, _ := ix.namespaces.LoadOrCompute(name, func() *namespace { return &namespace{} })
	return ns
}

// Insert 插入条目；条目已存在时返回 false 且不做任何修改。
func (ix *Index) Insert(ctx context.Context, item Item) (bool, error) {
	if item.Namespace == "" {
		return false, ErrEmptyNamespace
	}
	ns := ix.namespace(item.Namespace)
	ns.mu.Lock()
	defer ns.mu.Unlock()
	k := item.key()
	if ns.tree.contains(k) {
		metrics.AggregateOps.WithLabelValues("insert_noop").Inc()
		return false, nil
	}
	if err := ix.persist(ctx, []Item{item}, nil); err != nil {
		return false, err
	}
	ns.tree.insert(k)
	metrics.AggregateOps.WithLabelValues("insert").Inc()
	return true, nil
}

// ReplaceOrInsert 在同一把写锁内移除 old 并插入 replacement，并发读者只会看到其一。
// old 不存在时等价于 Insert。
func (ix *Index) ReplaceOrInsert(ctx context.Context, old, replacement Item) error {
	if replacement.Namespace == "" {
		return ErrEmptyNamespace
	}
	if old.Namespace != replacement.Namespace {
		return fmt.Errorf("%w: %q -> %q", ErrNamespaceMismatch, old.Namespace, replacement.Namespace)
	}
	ns := ix.namespace(replacement.Namespace)
	ns.mu.Lock()
	defer ns.mu.Unlock()

	oldKey, newKey := old.key(), replacement.key()
	removeOld := oldKey != newKey && ns.tree.contains(oldKey)
	addNew := !ns.tree.contains(newKey)
	if !removeOld && !addNew {
		metrics.AggregateOps.WithLabelValues("replace_noop").Inc()
		return nil
	}
	var puts, deletes []Item
	if addNew {
		puts = []Item{replacement}
	}
	if removeOld {
		deletes = []Item{old}
	}
	if err := ix.persist(ctx, puts, deletes); err != nil {
		return err
	}
	if removeOld {
		ns.tree.remove(oldKey)
	}
	if addNew {
		ns.tree.insert(newKey)
	}
	metrics.AggregateOps.WithLabelValues("replace").Inc()
	return nil
}

// Delete 删除条目；条目不存在时是 no-op。
func (ix *Index) Delete(ctx context.Context, item Item) error {
	_, err := ix.DeleteIfExists(ctx, item)
	return err
}

// DeleteIfExists 删除条目并报告是否确实删除。
func (ix *Index) DeleteIfExists(ctx context.Context, item Item) (bool, error) {
	ns, ok := ix.namespaces.Load(item.Namespace)
	if !ok {
		return false, nil
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	k := item.key()
	if !ns.tree.contains(k) {
		metrics.AggregateOps.WithLabelValues("delete_noop").Inc()
		return false, nil
	}
	if err := ix.persist(ctx, nil, []Item{item}); err != nil {
		return false, err
	}
	ns.tree.remove(k)
	metrics.AggregateOps.WithLabelValues("delete").Inc()
	return true, nil
}

// Count 返回命名空间内的条目总数。
func (ix *Index) Count(namespace string) int {
	ns, ok := ix.namespaces.Load(namespace)
	if !ok {
		return 0
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.tree.len()
}

// CountRange 返回 sortKey 位于闭区间 [lower, upper] 的条目数。
func (ix *Index) CountRange(namespace string, lower, upper int64) int {
	ns, ok := ix.namespaces.Load(namespace)
	if !ok {
		return 0
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.tree.countRange(lower, upper)
}

// Clear 清空一个命名空间。回填在每次运行中对每个命名空间只调用一次。
func (ix *Index) Clear(ctx context.Context, namespace string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}
	ns := ix.namespace(namespace)
	ns.mu.Lock()
	defer ns.mu.Unlock()
	if ix.persister != nil {
		if err := ix.persister.ClearNamespace(ctx, namespace); err != nil {
			ix.log.WithContext(ctx).Errorw("msg", "clear aggregate namespace failed", "namespace", namespace, "error", err)
			return fmt.Errorf("clear aggregate namespace: %w", err)
		}
	}
	ns.tree.reset()
	metrics.AggregateOps.WithLabelValues("clear").Inc()
	return nil
}

// Namespaces 返回当前已知的命名空间（排序后）。
func (ix *Index) Namespaces() []string {
	names := make([]string, 0, ix.namespaces.Size())
	ix.namespaces.Range(func(name string, _ *namespace) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Items 按顺序列出命名空间内的全部条目，供调试与测试使用。
func (ix *Index) Items(namespace string) []Item {
	ns, ok := ix.namespaces.Load(namespace)
	if !ok {
		return nil
	}
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	items := make([]Item, 0, ns.tree.len())
	ns.tree.walk(func(k key) {
		items = append(items, Item{Namespace: namespace, SortKey: k.sort, ItemID: k.id})
	})
	return items
}

func (ix *Index) persist(ctx context.Context, puts, deletes []Item) error {
	if ix.persister == nil {
		return nil
	}
	if err := ix.persister.Apply(ctx, puts, deletes); err != nil {
		ix.log.WithContext(ctx).Errorw("msg", "persist aggregate items failed", "puts", len(puts), "deletes", len(deletes), "error", err)
		return fmt.Errorf("persist aggregate items: %w", err)
	}
	return nil
}
