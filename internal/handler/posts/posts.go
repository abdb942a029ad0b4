package posts

import (
	"context"
	"strconv"

	"blog-api/internal/cache"
	"blog-api/internal/store"

	"go.uber.org/zap"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

var (
	getUserByUsername        = store.GetUserByUsername
	createPost               = store.CreatePost
	setPublished             = store.SetPublished
	addLikes                 = store.AddLikes
	listPublishedPosts       = store.ListPublishedPosts
	listPublishedPostsByUser = store.ListPublishedPostsByUser
)

// postID parses the :id path segment. ok is false for anything that is not an
// integer, which callers report as a missing post.
func postID(raw string) (id int, ok bool) {
	id, err := strconv.Atoi(raw)
	return id, err == nil
}

// positiveOr returns raw as an int, or def when raw is absent, malformed or
// below 1.
func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// invalidate drops cached listing pages after a change that can alter them.
// The write already succeeded, so a failure here is only logged.
func invalidate(ctx context.Context, pages *cache.PostPages, log *zap.Logger, postID int) {
	if err := pages.Invalidate(ctx); err != nil {
		log.Warn("invalidate post pages", zap.Int("post_id", postID), zap.Error(err))
	}
}
