package aggregate

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

const itemKeyPrefix byte = 'A'

var errMalformedKey = errors.New("aggregate: malformed item key")

// PebbleStore 将索引条目镜像到 Pebble，进程重启后通过 Index.Open 恢复。
type PebbleStore struct {
	db   *pebble.DB
	sync *pebble.WriteOptions
}

// OpenPebbleStore 打开 dir 下的 Pebble 数据库；opts 为 nil 时使用默认配置。
func OpenPebbleStore(dir string, opts *pebble.Options) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble: %w", err)
	}
	return &PebbleStore{db: db, sync: pebble.Sync}, nil
}

// namespacePrefix = 'A' | uvarint(len(ns)) | ns；长度前缀避免 "ab" 与 "abc" 的前缀冲突。
func namespacePrefix(namespace string) []byte {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(namespace))
	buf = append(buf, itemKeyPrefix)
	buf = binary.AppendUvarint(buf, uint64(len(namespace)))
	return append(buf, namespace...)
}

// itemKey 在命名空间前缀后追加翻转符号位的大端 sortKey 与 itemID，字节序即 (sortKey, itemID) 序。
func itemKey(item Item) []byte {
	buf := namespacePrefix(item.Namespace)
	buf = binary.BigEndian.AppendUint64(buf, uint64(item.SortKey)^(1<<63))
	return append(buf, item.ItemID...)
}

func parseItemKey(raw []byte) (Item, error) {
	if len(raw) < 2 || raw[0] != itemKeyPrefix {
		return Item{}, errMalformedKey
	}
	n, size := binary.Uvarint(raw[1:])
	if size <= 0 {
		return Item{}, errMalformedKey
	}
	rest := raw[1+size:]
	if uint64(len(rest)) < n+8 {
		return Item{}, errMalformedKey
	}
	ns := string(rest[:n])
	rest = rest[n:]
	sortKey := int64(binary.BigEndian.Uint64(rest[:8]) ^ (1 << 63))
	return Item{Namespace: ns, SortKey: sortKey, ItemID: string(rest[8:])}, nil
}

// prefixEnd 返回大于所有以 prefix 开头的键的最小键。
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// Apply 以单个批次提交删除与写入。
func (s *PebbleStore) Apply(ctx context.Context, puts, deletes []Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	batch := s.db.NewBatch()
	defer batch.Close()
	for _, item := range deletes {
		if err := batch.Delete(itemKey(item), nil); err != nil {
			return fmt.Errorf("batch delete: %w", err)
		}
	}
	for _, item := range puts {
		if err := batch.Set(itemKey(item), nil, nil); err != nil {
			return fmt.Errorf("batch set: %w", err)
		}
	}
	if err := batch.Commit(s.sync); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// ClearNamespace 删除命名空间前缀下的全部键。
func (s *PebbleStore) ClearNamespace(ctx context.Context, namespace string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := namespacePrefix(namespace)
	if err := s.db.DeleteRange(prefix, prefixEnd(prefix), s.sync); err != nil {
		return fmt.Errorf("delete range: %w", err)
	}
	return nil
}

// Load 顺序遍历所有条目。
func (s *PebbleStore) Load(ctx context.Context, fn func(Item) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{itemKeyPrefix},
		UpperBound: []byte{itemKeyPrefix + 1},
	})
	if err != nil {
		return fmt.Errorf("new iter: %w", err)
	}
	defer iter.Close()
	for valid := iter.First(); valid; valid = iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		item, err := parseItemKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close 关闭底层数据库。
func (s *PebbleStore) Close() error {
	return s.db.Close()
}

var _ Persister = (*PebbleStore)(nil)
