package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/juju/clock"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/vo"
)

const statsWindow = 7 * 24 * time.Hour

// StatsService 只读聚合索引组合出用户统计，另有一次按用户名的点查。
type StatsService struct {
	users       UserStore
	index       AggregateIndex
	clock       clock.Clock
	defaultGoal int32
	cache       *expirable.LRU[string, *po.User]
	log         *log.Helper
}

// NewStatsService 构造 StatsService。
func NewStatsService(users UserStore, index AggregateIndex, clk clock.Clock, cfg *conf.Bootstrap, logger log.Logger) *StatsService {
	size, ttl, goal := 1024, 10*time.Minute, int32(5)
	if cfg != nil {
		if cfg.Stats.CacheSize > 0 {
			size = cfg.Stats.CacheSize
		}
		if cfg.Stats.CacheTTL > 0 {
			ttl = cfg.Stats.CacheTTL
		}
		goal = cfg.Stats.DefaultWeeklyGoal
	}
	return &StatsService{
		users:       users,
		index:       index,
		clock:       clk,
		defaultGoal: goal,
		cache:       expirable.NewLRU[string, *po.User](size, nil, ttl),
		log:         log.NewHelper(logger),
	}
}

// GetUserStats 返回本周创建数、周目标、未结束事件数与历史事件总数。
//
// 历史总数是创建数与关注数之和；自关注不写入关注命名空间，所以不会重复计数。
func (s *StatsService) GetUserStats(ctx context.Context, username string) (*vo.UserStats, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidArgument)
	}
	user, err := s.lookup(ctx, username)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	created := aggregate.EventsByCreatorNamespace(user.ID)
	followed := aggregate.EventFollowsByUserNamespace(user.ID)
	feed := aggregate.FeedNamespace(po.UserFeedID(user.ID))

	goal := s.defaultGoal
	if user.WeeklyGoal != nil {
		goal = *user.WeeklyGoal
	}
	return &vo.UserStats{
		UserID:           user.ID.String(),
		Username:         user.Username,
		CapturesThisWeek: s.index.CountRange(created, aggregate.TimeSortKey(now.Add(-statsWindow)), aggregate.TimeSortKey(now)),
		WeeklyGoal:       goal,
		UpcomingEvents:   s.index.CountRange(feed, aggregate.SortKeyUpcoming, aggregate.SortKeyUpcoming),
		AllTimeEvents:    s.index.Count(created) + s.index.Count(followed),
	}, nil
}

func (s *StatsService) lookup(ctx context.Context, username string) (*po.User, error) {
	if user, ok := s.cache.Get(username); ok {
		return user, nil
	}
	user, err := s.users.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	s.cache.Add(username, user)
	return user, nil
}

// ForgetUser 逐出缓存中属于 userID 的用户名。周目标变更与删除用户后调用。
func (s *StatsService) ForgetUser(userID uuid.UUID) {
	for _, username := range s.cache.Keys() {
		if user, ok := s.cache.Peek(username); ok && user.ID == userID {
			s.cache.Remove(username)
		}
	}
}
