package posts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"blog-api/internal/cache"
	"blog-api/internal/store"
	"blog-api/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	getUserByUsername = store.GetUserByUsername
	createPost = store.CreatePost
	setPublished = store.SetPublished
	addLikes = store.AddLikes
	listPublishedPosts = store.ListPublishedPosts
	listPublishedPostsByUser = store.ListPublishedPostsByUser
}

// newCtx builds a context for target; params are name/value pairs for path
// parameters.
func newCtx(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func requireInternal(t *testing.T, err error) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusInternalServerError, he.Code)
}

// memCache is a map-backed cache.Cache that counts version bumps.
type memCache struct {
	data  map[string]string
	incrs int
}

func newPages() (*cache.PostPages, *memCache) {
	m := &memCache{data: map[string]string{}}
	return cache.NewPostPages(m, time.Minute), m
}

func (m *memCache) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (m *memCache) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.Atoi(m.data[key])
	n++
	m.incrs++
	m.data[key] = strconv.Itoa(n)
	return redis.NewIntResult(int64(n), nil)
}

func (m *memCache) Close() error { return nil }

func TestPositiveOr(t *testing.T) {
	require.Equal(t, 10, positiveOr("", 10))
	require.Equal(t, 10, positiveOr("abc", 10))
	require.Equal(t, 10, positiveOr("0", 10))
	require.Equal(t, 10, positiveOr("-3", 10))
	require.Equal(t, 10, positiveOr("2.5", 10))
	require.Equal(t, 4, positiveOr("4", 10))
}

func TestPostID(t *testing.T) {
	id, ok := postID("42")
	require.True(t, ok)
	require.Equal(t, 42, id)
	_, ok = postID("abc")
	require.False(t, ok)
}
