package po

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedEntryParams 描述构造 FeedEntry 所需的参数。
type FeedEntryParams struct {
	FeedID    string
	EventID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Now       time.Time
}

// NewFeedEntry 基于参数构造 FeedEntry，并物化 HasEnded。
func NewFeedEntry(params FeedEntryParams) FeedEntry {
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()
	return FeedEntry{
		FeedID:         strings.TrimSpace(params.FeedID),
		EventID:        params.EventID,
		EventStartTime: params.StartTime.UTC(),
		EventEndTime:   params.EndTime.UTC(),
		AddedAt:        now,
		HasEnded:       DeriveHasEnded(params.EndTime, now),
		UpdatedAt:      now,
	}
}

// Refreshed 返回以 now 重新计算 HasEnded 后的副本，AddedAt 保持不变。
func (e FeedEntry) Refreshed(now time.Time) FeedEntry {
	out := e
	out.HasEnded = DeriveHasEnded(e.EventEndTime, now)
	if out.HasEnded != e.HasEnded {
		out.UpdatedAt = now.UTC()
	}
	return out
}
