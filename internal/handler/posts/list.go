// File: internal/handler/posts/list.go
package posts

import (
	"encoding/json"
	"errors"
	"net/http"

	"blog-api/internal/api"
	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListPostsHandler 分頁列出已發佈文章
// @Summary     List published posts
// @Description 依建立順序分頁；page/per_page 無效時使用預設值 1/10
// @Tags        posts
// @Produce     json
// @Param       page     query    int false "頁碼"
// @Param       per_page query    int false "每頁筆數"
// @Success     200      {array}  api.PostResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /posts [get]
func ListPostsHandler(db database.DB, pages *cache.PostPages, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := positiveOr(c.QueryParam("page"), defaultPage)
		perPage := positiveOr(c.QueryParam("per_page"), defaultPerPage)
		ctx := c.Request().Context()

		// 快取失敗一律退回資料庫
		key, err := pages.Key(ctx, page, perPage)
		if err != nil {
			log.Warn("post pages key", zap.Error(err))
			key = ""
		}
		body, hit, err := pages.Get(ctx, key)
		if err != nil {
			log.Warn("post pages get", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return c.JSONBlob(http.StatusOK, body)
		}

		posts, err := listPublishedPosts(ctx, db, page, perPage)
		if err != nil {
			return handler.Error(c, err)
		}
		body, err = json.Marshal(api.NewPostResponses(posts))
		if err != nil {
			return handler.Error(c, err)
		}
		if err := pages.Set(ctx, key, body); err != nil {
			log.Warn("post pages set", zap.String("key", key), zap.Error(err))
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}

// ListUserPostsHandler 列出指定作者的已發佈文章
// @Summary     List a user's published posts
// @Tags        posts
// @Produce     json
// @Param       username path     string true  "作者帳號"
// @Param       page     query    int    false "頁碼"
// @Param       per_page query    int    false "每頁筆數"
// @Success     200      {array}  api.PostResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /users/{username}/posts [get]
func ListUserPostsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := positiveOr(c.QueryParam("page"), defaultPage)
		perPage := positiveOr(c.QueryParam("per_page"), defaultPerPage)
		ctx := c.Request().Context()

		author, err := getUserByUsername(ctx, db, c.Param("username"))
		if errors.Is(err, store.ErrNotFound) {
			return handler.Error(c, service.ErrUserNotFound)
		}
		if err != nil {
			return handler.Error(c, err)
		}

		posts, err := listPublishedPostsByUser(ctx, db, author.ID, page, perPage)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPostResponses(posts))
	}
}
