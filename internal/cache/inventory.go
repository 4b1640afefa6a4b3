package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix       = "user:%d"
	groupKeyPrefix      = "group:%s"
	globalFeedKeyPrefix = "feed:global:%d"
	groupFeedKeyPrefix  = "feed:group:%s:%d"
)

// TTLs per cached entity kind. Feed pages turn over quickly, directory-style
// entities can live longer.
const (
	UserTTL  = 5 * time.Minute
	GroupTTL = 10 * time.Minute
	FeedTTL  = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(groupKeyPrefix, slug)
}

// GlobalFeedKey caches one page of the anonymous global feed.
func GlobalFeedKey(page int) string {
	return fmt.Sprintf(globalFeedKeyPrefix, page)
}

// GroupFeedKey caches one page of a group's anonymous feed.
func GroupFeedKey(slug string, page int) string {
	return fmt.Sprintf(groupFeedKeyPrefix, slug, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}

// InvalidateFeeds drops every cached feed page. Called on any post write since
// a new, edited, or deleted post can shift every page boundary.
func InvalidateFeeds(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
