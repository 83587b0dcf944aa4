package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/vo"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
)

// GetFeedInput 描述获取 Feed 所需的参数。UserID 是调用者；FeedID 为空时读取调用者的个人 Feed。
// 个人 Feed 含所有者的私有事件，只有所有者本人可以读取。
type GetFeedInput struct {
	UserID       string
	FeedID       string
	Limit        int
	Cursor       string
	UpcomingOnly bool
}

// FeedService 按开始时间分页读取物化后的 Feed。
type FeedService struct {
	entries FeedEntryStore
	clock   clock.Clock
	log     *log.Helper
}

// NewFeedService 构造 FeedService。
func NewFeedService(entries FeedEntryStore, clk clock.Clock, logger log.Logger) *FeedService {
	return &FeedService{
		entries: entries,
		clock:   clk,
		log:     log.NewHelper(logger),
	}
}

// GetFeed 返回一页 Feed 条目与下一页游标。
func (s *FeedService) GetFeed(ctx context.Context, input GetFeedInput) (*vo.FeedResponse, error) {
	feedID, err := resolveFeedID(input)
	if err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	after, err := decodeCursor(input.Cursor)
	if err != nil {
		return nil, err
	}
	query := repositories.TimelineQuery{
		FeedID:       feedID,
		UpcomingOnly: input.UpcomingOnly,
		Limit:        limit + 1,
	}
	if after.Primary != "" {
		start, parseErr := time.Parse(time.RFC3339Nano, after.Primary)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: cursor start time: %v", ErrInvalidArgument, parseErr)
		}
		eventID, parseErr := parseCursorID(after.Secondary)
		if parseErr != nil {
			return nil, parseErr
		}
		query.AfterStart = &start
		query.AfterEventID = eventID
	}

	records, err := s.entries.ListTimeline(ctx, nil, query)
	if err != nil {
		return nil, fmt.Errorf("list feed timeline: %w", err)
	}
	resp := &vo.FeedResponse{GeneratedAt: s.clock.Now().UTC()}
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next, encErr := encodeCursor(keysetCursor{
			Primary:   last.EventStartTime.UTC().Format(time.RFC3339Nano),
			Secondary: last.EventID.String(),
		})
		if encErr != nil {
			return nil, encErr
		}
		resp.NextCursor = next
	}
	resp.Items = vo.FeedItemsFromEntries(records)
	return resp, nil
}

func resolveFeedID(input GetFeedInput) (string, error) {
	feedID := strings.TrimSpace(input.FeedID)
	if feedID == po.DiscoverFeedID {
		return feedID, nil
	}
	var owner uuid.UUID
	if feedID != "" {
		parsed, ok := po.ParseUserFeedID(feedID)
		if !ok {
			return "", fmt.Errorf("%w: feed id %q", ErrInvalidArgument, feedID)
		}
		owner = parsed
	}
	viewer, err := uuid.Parse(strings.TrimSpace(input.UserID))
	if err != nil {
		return "", fmt.Errorf("%w: user id: %v", ErrInvalidArgument, err)
	}
	if feedID == "" {
		return po.UserFeedID(viewer), nil
	}
	if owner != viewer {
		return "", fmt.Errorf("%w: feed %q belongs to another user", ErrPermissionDenied, feedID)
	}
	return feedID, nil
}
