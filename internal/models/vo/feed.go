// Package vo 定义向上层返回的 Feed 视图对象。
package vo

import "time"

// FeedItem 表示 Feed 时间线中的一条事件。
type FeedItem struct {
	FeedID    string
	EventID   string
	StartTime time.Time
	EndTime   time.Time
	HasEnded  bool
	AddedAt   time.Time
}

// FeedResponse 汇总 Feed 返回的数据。
type FeedResponse struct {
	Items       []FeedItem
	NextCursor  string
	GeneratedAt time.Time
}

// UserStats 是用户维度的计数汇总，全部由聚合索引计算。
type UserStats struct {
	UserID           string
	Username         string
	CapturesThisWeek int
	WeeklyGoal       int32
	UpcomingEvents   int
	AllTimeEvents    int
}

// GoalReached 报告本周创建数是否已达到周目标。
func (s *UserStats) GoalReached() bool {
	return s != nil && s.WeeklyGoal > 0 && int32(s.CapturesThisWeek) >= s.WeeklyGoal
}
