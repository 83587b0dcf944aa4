package vo

import "github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"

// FeedItemFromEntry 根据 Feed 条目构造 FeedItem。
func FeedItemFromEntry(entry *po.FeedEntry) FeedItem {
	if entry == nil {
		return FeedItem{}
	}
	return FeedItem{
		FeedID:    entry.FeedID,
		EventID:   entry.EventID.String(),
		StartTime: entry.EventStartTime,
		EndTime:   entry.EventEndTime,
		HasEnded:  entry.HasEnded,
		AddedAt:   entry.AddedAt,
	}
}

// FeedItemsFromEntries 批量转换，跳过 nil 记录。
func FeedItemsFromEntries(entries []*po.FeedEntry) []FeedItem {
	items := make([]FeedItem, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		items = append(items, FeedItemFromEntry(entry))
	}
	return items
}
