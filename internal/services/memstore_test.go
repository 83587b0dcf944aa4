package services_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/aggregate"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/models/po"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/repositories"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/txmanager"
)

var stdLogger = log.NewStdLogger(io.Discard)

type pair struct{ a, b uuid.UUID }

type entryKey struct {
	feed  string
	event uuid.UUID
}

// world 是主库的内存替身，实现 services 包需要的全部仓储接口。
type world struct {
	mu           sync.Mutex
	users        map[uuid.UUID]po.User
	events       map[uuid.UUID]po.Event
	lists        map[uuid.UUID]po.List
	comments     map[uuid.UUID]po.Comment
	eventFollows map[pair]po.EventFollow
	listFollows  map[pair]po.ListFollow
	userFollows  map[pair]po.UserFollow
	memberships  map[pair]po.ListMembership
	entries      map[entryKey]po.FeedEntry
	states       map[string]po.SyncState
}

func newWorld() *world {
	return &world{
		users:        map[uuid.UUID]po.User{},
		events:       map[uuid.UUID]po.Event{},
		lists:        map[uuid.UUID]po.List{},
		comments:     map[uuid.UUID]po.Comment{},
		eventFollows: map[pair]po.EventFollow{},
		listFollows:  map[pair]po.ListFollow{},
		userFollows:  map[pair]po.UserFollow{},
		memberships:  map[pair]po.ListMembership{},
		entries:      map[entryKey]po.FeedEntry{},
		states:       map[string]po.SyncState{},
	}
}

func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func sortIDs(ids []uuid.UUID) []uuid.UUID {
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })
	return ids
}

// ---- users ----

type userStore struct{ *world }

func (w userStore) Create(_ context.Context, _ txmanager.Session, input repositories.CreateUserInput) (*po.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, u := range w.users {
		if u.Username == input.Username {
			return nil, fmt.Errorf("insert user: duplicate username %q", input.Username)
		}
	}
	user := po.User{ID: input.ID, Username: strings.TrimSpace(input.Username), WeeklyGoal: input.WeeklyGoal, CreatedAt: input.CreatedAt}
	w.users[user.ID] = user
	return &user, nil
}

func (w userStore) Get(_ context.Context, _ txmanager.Session, id uuid.UUID) (*po.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	user, ok := w.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", repositories.ErrUserNotFound)
	}
	return &user, nil
}

func (w userStore) GetByUsername(_ context.Context, _ txmanager.Session, username string) (*po.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, user := range w.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by username: %w", repositories.ErrUserNotFound)
}

func (w userStore) UpdateWeeklyGoal(_ context.Context, _ txmanager.Session, id uuid.UUID, goal *int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	user, ok := w.users[id]
	if !ok {
		return fmt.Errorf("update weekly goal: %w", repositories.ErrUserNotFound)
	}
	user.WeeklyGoal = goal
	w.users[id] = user
	return nil
}

func (w userStore) Delete(_ context.Context, _ txmanager.Session, id uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.users[id]
	delete(w.users, id)
	return ok, nil
}

// ---- events ----

type eventStore struct{ *world }

func (w eventStore) Create(_ context.Context, _ txmanager.Session, input repositories.CreateEventInput) (*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	event := po.Event{
		ID:         input.ID,
		OwnerID:    input.OwnerID,
		Visibility: input.Visibility,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
		CreatedAt:  input.CreatedAt.UTC(),
		UpdatedAt:  input.CreatedAt.UTC(),
	}
	w.events[event.ID] = event
	return &event, nil
}

func (w eventStore) Update(_ context.Context, _ txmanager.Session, input repositories.UpdateEventInput) (*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	event, ok := w.events[input.ID]
	if !ok {
		return nil, fmt.Errorf("update event: %w", repositories.ErrEventNotFound)
	}
	event.Visibility = input.Visibility
	event.StartTime = input.StartTime.UTC()
	event.EndTime = input.EndTime.UTC()
	event.UpdatedAt = input.UpdatedAt.UTC()
	w.events[input.ID] = event
	return &event, nil
}

func (w eventStore) Get(_ context.Context, _ txmanager.Session, id uuid.UUID) (*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	event, ok := w.events[id]
	if !ok {
		return nil, fmt.Errorf("get event: %w", repositories.ErrEventNotFound)
	}
	return &event, nil
}

func (w eventStore) Delete(_ context.Context, _ txmanager.Session, id uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.events[id]
	delete(w.events, id)
	return ok, nil
}

func (w eventStore) ListByOwner(_ context.Context, _ txmanager.Session, ownerID uuid.UUID) ([]*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sortedEvents(func(e po.Event) bool { return e.OwnerID == ownerID }), nil
}

func (w eventStore) ListByList(_ context.Context, _ txmanager.Session, listID uuid.UUID) ([]*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sortedEvents(func(e po.Event) bool {
		_, ok := w.memberships[pair{listID, e.ID}]
		return ok
	}), nil
}

func (w eventStore) ListPage(_ context.Context, _ txmanager.Session, afterOwnerID, afterID uuid.UUID, limit int) ([]*po.Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	all := make([]po.Event, 0, len(w.events))
	for _, e := range w.events {
		if lessID(afterOwnerID, e.OwnerID) || (afterOwnerID == e.OwnerID && lessID(afterID, e.ID)) {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].OwnerID != all[j].OwnerID {
			return lessID(all[i].OwnerID, all[j].OwnerID)
		}
		return lessID(all[i].ID, all[j].ID)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]*po.Event, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

func (w *world) sortedEvents(keep func(po.Event) bool) []*po.Event {
	var out []*po.Event
	for _, e := range w.events {
		if keep(e) {
			event := e
			out = append(out, &event)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })
	return out
}

// ---- lists ----

type listStore struct{ *world }

func (w listStore) Create(_ context.Context, _ txmanager.Session, input repositories.CreateListInput) (*po.List, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	list := po.List{ID: input.ID, OwnerID: input.OwnerID, Name: input.Name, CreatedAt: input.CreatedAt}
	w.lists[list.ID] = list
	return &list, nil
}

func (w listStore) Get(_ context.Context, _ txmanager.Session, id uuid.UUID) (*po.List, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	list, ok := w.lists[id]
	if !ok {
		return nil, fmt.Errorf("get list: %w", repositories.ErrListNotFound)
	}
	return &list, nil
}

func (w listStore) Delete(_ context.Context, _ txmanager.Session, id uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.lists[id]
	delete(w.lists, id)
	return ok, nil
}

func (w listStore) ListByOwner(_ context.Context, _ txmanager.Session, ownerID uuid.UUID) ([]*po.List, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*po.List
	for _, l := range w.lists {
		if l.OwnerID == ownerID {
			list := l
			out = append(out, &list)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].ID, out[j].ID) })
	return out, nil
}

func (w listStore) AddMembership(_ context.Context, _ txmanager.Session, listID, eventID uuid.UUID, at time.Time) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{listID, eventID}
	if _, ok := w.memberships[key]; ok {
		return false, nil
	}
	w.memberships[key] = po.ListMembership{ListID: listID, EventID: eventID, CreatedAt: at}
	return true, nil
}

func (w listStore) RemoveMembership(_ context.Context, _ txmanager.Session, listID, eventID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{listID, eventID}
	_, ok := w.memberships[key]
	delete(w.memberships, key)
	return ok, nil
}

func (w listStore) DeleteMembershipsByList(_ context.Context, _ txmanager.Session, listID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.memberships {
		if key.a == listID {
			delete(w.memberships, key)
		}
	}
	return nil
}

func (w listStore) DeleteMembershipsByEvent(_ context.Context, _ txmanager.Session, eventID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.memberships {
		if key.b == eventID {
			delete(w.memberships, key)
		}
	}
	return nil
}

func (w listStore) DeleteMembershipsByOwner(_ context.Context, _ txmanager.Session, ownerID uuid.UUID) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int64
	for key := range w.memberships {
		list, listOK := w.lists[key.a]
		event, eventOK := w.events[key.b]
		if (listOK && list.OwnerID == ownerID) || (eventOK && event.OwnerID == ownerID) {
			delete(w.memberships, key)
			n++
		}
	}
	return n, nil
}

func (w listStore) Follow(_ context.Context, _ txmanager.Session, userID, listID uuid.UUID, at time.Time) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{userID, listID}
	if _, ok := w.listFollows[key]; ok {
		return false, nil
	}
	w.listFollows[key] = po.ListFollow{UserID: userID, ListID: listID, CreatedAt: at}
	return true, nil
}

func (w listStore) Unfollow(_ context.Context, _ txmanager.Session, userID, listID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{userID, listID}
	_, ok := w.listFollows[key]
	delete(w.listFollows, key)
	return ok, nil
}

func (w listStore) ListFollowerIDs(_ context.Context, _ txmanager.Session, listID uuid.UUID) ([]uuid.UUID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var ids []uuid.UUID
	for key := range w.listFollows {
		if key.b == listID {
			ids = append(ids, key.a)
		}
	}
	return sortIDs(ids), nil
}

func (w listStore) ListFollowerIDsByEvent(_ context.Context, _ txmanager.Session, eventID uuid.UUID) ([]uuid.UUID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	seen := map[uuid.UUID]struct{}{}
	for key := range w.listFollows {
		if _, ok := w.memberships[pair{key.b, eventID}]; ok {
			seen[key.a] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return sortIDs(ids), nil
}

func (w listStore) DeleteFollowsByUser(_ context.Context, _ txmanager.Session, userID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.listFollows {
		if key.a == userID {
			delete(w.listFollows, key)
		}
	}
	return nil
}

func (w listStore) DeleteFollowsByList(_ context.Context, _ txmanager.Session, listID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.listFollows {
		if key.b == listID {
			delete(w.listFollows, key)
		}
	}
	return nil
}

// ---- follows ----

type followStore struct{ *world }

func (w followStore) FollowEvent(_ context.Context, _ txmanager.Session, userID, eventID uuid.UUID, at time.Time) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{userID, eventID}
	if _, ok := w.eventFollows[key]; ok {
		return false, nil
	}
	w.eventFollows[key] = po.EventFollow{UserID: userID, EventID: eventID, CreatedAt: at.UTC()}
	return true, nil
}

func (w followStore) GetEventFollow(_ context.Context, _ txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	follow, ok := w.eventFollows[pair{userID, eventID}]
	if !ok {
		return nil, fmt.Errorf("get event follow: %w", repositories.ErrEventFollowNotFound)
	}
	return &follow, nil
}

func (w followStore) UnfollowEvent(_ context.Context, _ txmanager.Session, userID, eventID uuid.UUID) (*po.EventFollow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{userID, eventID}
	follow, ok := w.eventFollows[key]
	if !ok {
		return nil, fmt.Errorf("delete event follow: %w", repositories.ErrEventFollowNotFound)
	}
	delete(w.eventFollows, key)
	return &follow, nil
}

func (w followStore) ListEventFollowers(_ context.Context, _ txmanager.Session, eventID uuid.UUID) ([]po.EventFollow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []po.EventFollow
	for key, follow := range w.eventFollows {
		if key.b == eventID {
			out = append(out, follow)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].UserID, out[j].UserID) })
	return out, nil
}

func (w followStore) ListEventFollowsByUser(_ context.Context, _ txmanager.Session, userID uuid.UUID) ([]po.EventFollow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []po.EventFollow
	for key, follow := range w.eventFollows {
		if key.a == userID {
			out = append(out, follow)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessID(out[i].EventID, out[j].EventID) })
	return out, nil
}

func (w followStore) DeleteEventFollowsByUser(_ context.Context, _ txmanager.Session, userID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.eventFollows {
		if key.a == userID {
			delete(w.eventFollows, key)
		}
	}
	return nil
}

func (w followStore) DeleteEventFollowsByEvent(_ context.Context, _ txmanager.Session, eventID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.eventFollows {
		if key.b == eventID {
			delete(w.eventFollows, key)
		}
	}
	return nil
}

func (w followStore) ListEventFollowsPage(_ context.Context, _ txmanager.Session, afterUserID, afterEventID uuid.UUID, limit int) ([]po.EventFollowRow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var rows []po.EventFollowRow
	for key, follow := range w.eventFollows {
		if !(lessID(afterUserID, key.a) || (afterUserID == key.a && lessID(afterEventID, key.b))) {
			continue
		}
		event, ok := w.events[key.b]
		if !ok {
			continue
		}
		rows = append(rows, po.EventFollowRow{EventFollow: follow, EventOwnerID: event.OwnerID})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UserID != rows[j].UserID {
			return lessID(rows[i].UserID, rows[j].UserID)
		}
		return lessID(rows[i].EventID, rows[j].EventID)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (w followStore) FollowUser(_ context.Context, _ txmanager.Session, followerID, followingID uuid.UUID, at time.Time) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{followerID, followingID}
	if _, ok := w.userFollows[key]; ok {
		return false, nil
	}
	w.userFollows[key] = po.UserFollow{FollowerID: followerID, FollowingID: followingID, CreatedAt: at}
	return true, nil
}

func (w followStore) UnfollowUser(_ context.Context, _ txmanager.Session, followerID, followingID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := pair{followerID, followingID}
	_, ok := w.userFollows[key]
	delete(w.userFollows, key)
	return ok, nil
}

func (w followStore) ListUserFollowerIDs(_ context.Context, _ txmanager.Session, followingID uuid.UUID) ([]uuid.UUID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var ids []uuid.UUID
	for key := range w.userFollows {
		if key.b == followingID {
			ids = append(ids, key.a)
		}
	}
	return sortIDs(ids), nil
}

func (w followStore) DeleteUserFollowsByUser(_ context.Context, _ txmanager.Session, userID uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.userFollows {
		if key.a == userID || key.b == userID {
			delete(w.userFollows, key)
		}
	}
	return nil
}

func (w followStore) HasFollowReason(_ context.Context, _ txmanager.Session, userID, eventID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.eventFollows[pair{userID, eventID}]; ok {
		return true, nil
	}
	for key := range w.listFollows {
		if key.a != userID {
			continue
		}
		if _, ok := w.memberships[pair{key.b, eventID}]; ok {
			return true, nil
		}
	}
	if event, ok := w.events[eventID]; ok {
		if _, ok := w.userFollows[pair{userID, event.OwnerID}]; ok {
			return true, nil
		}
	}
	return false, nil
}

// ---- comments ----

type commentStore struct{ *world }

func (w commentStore) Create(_ context.Context, _ txmanager.Session, input repositories.CreateCommentInput) (*po.Comment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	comment := po.Comment{ID: input.ID, EventID: input.EventID, UserID: input.UserID, Body: input.Body, CreatedAt: input.CreatedAt}
	w.comments[comment.ID] = comment
	return &comment, nil
}

func (w commentStore) DeleteByUser(_ context.Context, _ txmanager.Session, userID uuid.UUID) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int64
	for id, c := range w.comments {
		if c.UserID == userID {
			delete(w.comments, id)
			n++
		}
	}
	return n, nil
}

func (w commentStore) DeleteByEvent(_ context.Context, _ txmanager.Session, eventID uuid.UUID) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int64
	for id, c := range w.comments {
		if c.EventID == eventID {
			delete(w.comments, id)
			n++
		}
	}
	return n, nil
}

// ---- feed entries ----

type entryStore struct{ *world }

func (w entryStore) Get(_ context.Context, _ txmanager.Session, feedID string, eventID uuid.UUID) (*po.FeedEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	entry, ok := w.entries[entryKey{feedID, eventID}]
	if !ok {
		return nil, fmt.Errorf("get feed entry: %w", repositories.ErrFeedEntryNotFound)
	}
	return &entry, nil
}

func (w entryStore) Insert(_ context.Context, _ txmanager.Session, entry po.FeedEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := entryKey{entry.FeedID, entry.EventID}
	if _, ok := w.entries[key]; ok {
		return fmt.Errorf("insert feed entry: %w", repositories.ErrDuplicateFeedEntry)
	}
	w.entries[key] = entry
	return nil
}

func (w entryStore) UpdateSnapshot(_ context.Context, _ txmanager.Session, entry po.FeedEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := entryKey{entry.FeedID, entry.EventID}
	current, ok := w.entries[key]
	if !ok {
		return fmt.Errorf("update feed entry: %w", repositories.ErrFeedEntryNotFound)
	}
	current.EventStartTime = entry.EventStartTime
	current.EventEndTime = entry.EventEndTime
	current.HasEnded = entry.HasEnded
	current.UpdatedAt = entry.UpdatedAt
	w.entries[key] = current
	return nil
}

func (w entryStore) Delete(_ context.Context, _ txmanager.Session, feedID string, eventID uuid.UUID) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	key := entryKey{feedID, eventID}
	_, ok := w.entries[key]
	delete(w.entries, key)
	return ok, nil
}

func (w entryStore) ListByEvent(_ context.Context, _ txmanager.Session, eventID uuid.UUID) ([]*po.FeedEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sortedEntries(func(e po.FeedEntry) bool { return e.EventID == eventID }), nil
}

func (w entryStore) ListByFeed(_ context.Context, _ txmanager.Session, feedID string) ([]*po.FeedEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sortedEntries(func(e po.FeedEntry) bool { return e.FeedID == feedID }), nil
}

func (w entryStore) DeleteByFeed(_ context.Context, _ txmanager.Session, feedID string) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var n int64
	for key := range w.entries {
		if key.feed == feedID {
			delete(w.entries, key)
			n++
		}
	}
	return n, nil
}

func (w entryStore) ListPage(_ context.Context, _ txmanager.Session, afterFeedID string, afterEventID uuid.UUID, limit int) ([]*po.FeedEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.sortedEntries(func(e po.FeedEntry) bool {
		return e.FeedID > afterFeedID || (e.FeedID == afterFeedID && lessID(afterEventID, e.EventID))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (w entryStore) ListTimeline(_ context.Context, _ txmanager.Session, query repositories.TimelineQuery) ([]*po.FeedEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*po.FeedEntry
	for _, e := range w.entries {
		if e.FeedID != query.FeedID || (query.UpcomingOnly && e.HasEnded) {
			continue
		}
		if query.AfterStart != nil {
			after := *query.AfterStart
			if e.EventStartTime.Before(after) || (e.EventStartTime.Equal(after) && !lessID(query.AfterEventID, e.EventID)) {
				continue
			}
		}
		entry := e
		out = append(out, &entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EventStartTime.Equal(out[j].EventStartTime) {
			return out[i].EventStartTime.Before(out[j].EventStartTime)
		}
		return lessID(out[i].EventID, out[j].EventID)
	})
	if len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (w *world) sortedEntries(keep func(po.FeedEntry) bool) []*po.FeedEntry {
	var out []*po.FeedEntry
	for _, e := range w.entries {
		if keep(e) {
			entry := e
			out = append(out, &entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FeedID != out[j].FeedID {
			return out[i].FeedID < out[j].FeedID
		}
		return lessID(out[i].EventID, out[j].EventID)
	})
	return out
}

// ---- sync state ----

type stateStore struct{ *world }

func (w stateStore) Get(_ context.Context, _ txmanager.Session, key string) (*po.SyncState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state, ok := w.states[key]
	if !ok {
		return nil, fmt.Errorf("get sync state: %w", repositories.ErrSyncStateNotFound)
	}
	return &state, nil
}

func (w stateStore) Start(_ context.Context, _ txmanager.Session, key string, runID uuid.UUID, mode po.SyncMode, now time.Time) (*po.SyncState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state := po.SyncState{PipelineKey: key, RunID: runID, Status: po.SyncStatusRunning, Mode: mode, UpdatedAt: now}
	w.states[key] = state
	return &state, nil
}

func (w stateStore) Advance(_ context.Context, _ txmanager.Session, input repositories.AdvanceSyncStateInput) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state, ok := w.states[input.PipelineKey]
	if !ok || state.RunID != input.RunID || state.Cursor != input.ExpectedCursor {
		return false, nil
	}
	state.Cursor = input.Cursor
	state.LastNamespace = input.LastNamespace
	state.Processed = input.Processed
	state.Status = input.Status
	state.UpdatedAt = input.UpdatedAt
	w.states[input.PipelineKey] = state
	return true, nil
}

func (w stateStore) SetStatus(_ context.Context, _ txmanager.Session, key string, runID uuid.UUID, status po.SyncStatus, now time.Time) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	state, ok := w.states[key]
	if !ok || state.RunID != runID {
		return false, nil
	}
	state.Status = status
	state.UpdatedAt = now
	w.states[key] = state
	return true, nil
}

func (w stateStore) List(_ context.Context, _ txmanager.Session) ([]*po.SyncState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*po.SyncState, 0, len(w.states))
	for _, s := range w.states {
		state := s
		out = append(out, &state)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PipelineKey < out[j].PipelineKey })
	return out, nil
}

// ---- tx / scheduler ----

type inlineTx struct{}

func (inlineTx) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(ctx context.Context, sess txmanager.Session) error) error {
	return fn(ctx, nil)
}

type scheduledTask struct {
	name  string
	delay time.Duration
	args  any
}

// fakeQueue 记录入队任务，由 drain 同步分发。fail 返回非 nil 时入队失败。
type fakeQueue struct {
	mu        sync.Mutex
	pending   []scheduledTask
	scheduled []scheduledTask
	fail      func(name string, args any) error
}

func (q *fakeQueue) ScheduleAfter(_ context.Context, delay time.Duration, name string, args any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fail != nil {
		if err := q.fail(name, args); err != nil {
			return err
		}
	}
	task := scheduledTask{name: name, delay: delay, args: args}
	q.pending = append(q.pending, task)
	q.scheduled = append(q.scheduled, task)
	return nil
}

func (q *fakeQueue) pop() (scheduledTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return scheduledTask{}, false
	}
	task := q.pending[0]
	q.pending = q.pending[1:]
	return task, true
}

func (q *fakeQueue) count(name string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, task := range q.scheduled {
		if task.name == name {
			n++
		}
	}
	return n
}

// harness 把内存主库、聚合索引与各用例组装在一起。
type harness struct {
	world        *world
	index        *aggregate.Index
	queue        *fakeQueue
	clock        *testclock.Clock
	materializer *services.FeedMaterializer
	capture      *services.CaptureService
	backfill     *services.BackfillRunner
	stats        *services.StatsService
	feeds        *services.FeedService
	// replay 为 true 时每个任务投递两次，模拟至少一次语义。
	replay bool
}

var baseTime = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithConfig(t, &conf.Bootstrap{
		Backfill: conf.Backfill{BatchSize: 100},
		Stats:    conf.Stats{DefaultWeeklyGoal: 5, CacheSize: 16, CacheTTL: time.Minute},
	})
}

func newHarnessWithConfig(t *testing.T, cfg *conf.Bootstrap) *harness {
	t.Helper()
	w := newWorld()
	index := aggregate.NewIndex(nil, stdLogger)
	queue := &fakeQueue{}
	clk := testclock.NewClock(baseTime)

	materializer := services.NewFeedMaterializer(eventStore{w}, listStore{w}, followStore{w}, entryStore{w}, index, clk, stdLogger)
	stats := services.NewStatsService(userStore{w}, index, clk, cfg, stdLogger)
	return &harness{
		world:        w,
		index:        index,
		queue:        queue,
		clock:        clk,
		materializer: materializer,
		capture: services.NewCaptureService(userStore{w}, eventStore{w}, listStore{w}, followStore{w}, commentStore{w},
			entryStore{w}, inlineTx{}, queue, materializer, stats, clk, stdLogger),
		backfill: services.NewBackfillRunner(userStore{w}, eventStore{w}, followStore{w}, entryStore{w}, stateStore{w}, queue, index, clk, cfg, stdLogger),
		stats:    stats,
		feeds:    services.NewFeedService(entryStore{w}, clk, stdLogger),
	}
}

// drain 同步执行队列中的全部任务（包括执行期间新入队的任务）。
func (h *harness) drain(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for {
		task, ok := h.queue.pop()
		if !ok {
			return
		}
		require.NoError(t, h.dispatch(ctx, task), "task %s", task.name)
		if h.replay && task.name != services.TaskBackfillBatch {
			require.NoError(t, h.dispatch(ctx, task), "replayed task %s", task.name)
		}
	}
}

func (h *harness) dispatch(ctx context.Context, task scheduledTask) error {
	switch args := task.args.(type) {
	case services.EventUpsertedArgs:
		return h.materializer.HandleEventUpserted(ctx, args)
	case services.EventDeletedArgs:
		return h.materializer.HandleEventDeleted(ctx, args)
	case services.EventFollowedArgs:
		return h.materializer.HandleEventFollowed(ctx, args)
	case services.EventUnfollowedArgs:
		return h.materializer.HandleEventUnfollowed(ctx, args)
	case services.ListFollowChangedArgs:
		return h.materializer.HandleListFollowChanged(ctx, args)
	case services.ListMembershipChangedArgs:
		return h.materializer.HandleListMembershipChanged(ctx, args)
	case services.UserFollowChangedArgs:
		return h.materializer.HandleUserFollowChanged(ctx, args)
	case services.BackfillBatchArgs:
		return h.backfill.RunBatch(ctx, args)
	default:
		return fmt.Errorf("unexpected task %s (%T)", task.name, task.args)
	}
}

func (h *harness) createUser(t *testing.T, username string) *po.User {
	t.Helper()
	user, err := h.capture.CreateUser(context.Background(), services.CreateUserInput{Username: username})
	require.NoError(t, err)
	return user
}

func (h *harness) createEvent(t *testing.T, ownerID uuid.UUID, visibility po.Visibility) *po.Event {
	t.Helper()
	now := h.clock.Now()
	event, err := h.capture.CreateEvent(context.Background(), services.CreateEventInput{
		OwnerID:    ownerID,
		Visibility: visibility,
		StartTime:  now.Add(24 * time.Hour),
		EndTime:    now.Add(26 * time.Hour),
	})
	require.NoError(t, err)
	h.drain(t)
	return event
}

// feedsOf 返回事件当前所在的 Feed 集合。
func (h *harness) feedsOf(eventID uuid.UUID) []string {
	entries, _ := entryStore{h.world}.ListByEvent(context.Background(), nil, eventID)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.FeedID)
	}
	sort.Strings(out)
	return out
}

func (h *harness) hasEntry(feedID string, eventID uuid.UUID) bool {
	h.world.mu.Lock()
	defer h.world.mu.Unlock()
	_, ok := h.world.entries[entryKey{feedID, eventID}]
	return ok
}

// requireIndexMatchesRows 校验每个 Feed 命名空间的计数与行数一致。
func (h *harness) requireIndexMatchesRows(t *testing.T) {
	t.Helper()
	h.world.mu.Lock()
	perFeed := map[string][2]int{}
	for _, e := range h.world.entries {
		counts := perFeed[e.FeedID]
		if e.HasEnded {
			counts[1]++
		} else {
			counts[0]++
		}
		perFeed[e.FeedID] = counts
	}
	h.world.mu.Unlock()
	for feedID, counts := range perFeed {
		ns := aggregate.FeedNamespace(feedID)
		require.Equal(t, counts[0], h.index.CountRange(ns, aggregate.SortKeyUpcoming, aggregate.SortKeyUpcoming), "upcoming %s", feedID)
		require.Equal(t, counts[1], h.index.CountRange(ns, aggregate.SortKeyEnded, aggregate.SortKeyEnded), "ended %s", feedID)
	}
}
