package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrUserNotFound 表示用户不存在。
	ErrUserNotFound = errors.New("repositories: user not found")
	// ErrEventNotFound 表示事件不存在。
	ErrEventNotFound = errors.New("repositories: event not found")
	// ErrListNotFound 表示列表不存在。
	ErrListNotFound = errors.New("repositories: list not found")
	// ErrEventFollowNotFound 表示关注关系不存在。
	ErrEventFollowNotFound = errors.New("repositories: event follow not found")
	// ErrFeedEntryNotFound 表示 Feed 条目不存在。
	ErrFeedEntryNotFound = errors.New("repositories: feed entry not found")
	// ErrDuplicateFeedEntry 表示 (feed_id, event_id) 已存在，通常是并发插入撞上主键。
	ErrDuplicateFeedEntry = errors.New("repositories: duplicate feed entry")
	// ErrSyncStateNotFound 表示回填管线尚未启动。
	ErrSyncStateNotFound = errors.New("repositories: sync state not found")
	// ErrTaskNotFound 表示任务不存在。
	ErrTaskNotFound = errors.New("repositories: task not found")
)

// notFound 将 pgx.ErrNoRows 翻译为领域哨兵错误，其它错误原样返回。
func notFound(err, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}
