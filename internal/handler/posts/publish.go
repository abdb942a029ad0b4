// File: internal/handler/posts/publish.go
package posts

import (
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

// PublishPostHandler 發佈文章
// @Summary     Publish a post
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id}/publish [put]
func PublishPostHandler(db database.DB, pages *cache.PostPages, log *zap.Logger) echo.HandlerFunc {
	return publishHandler(db, pages, log, true)
}

// UnpublishPostHandler 取消發佈文章
// @Summary     Unpublish a post
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id}/unpublish [put]
func UnpublishPostHandler(db database.DB, pages *cache.PostPages, log *zap.Logger) echo.HandlerFunc {
	return publishHandler(db, pages, log, false)
}

func publishHandler(db database.DB, pages *cache.PostPages, log *zap.Logger, published bool) echo.HandlerFunc {
	unchanged, done := service.ErrAlreadyPublished, "Post published successfully"
	if !published {
		unchanged, done = service.ErrAlreadyUnpublished, "Post unpublished successfully"
	}

	return func(c echo.Context) error {
		id, ok := postID(c.Param("id"))
		if !ok {
			return handler.Error(c, service.ErrPostNotFound)
		}

		ctx := c.Request().Context()
		err := setPublished(ctx, db, id, published)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return handler.Error(c, service.ErrPostNotFound)
		case errors.Is(err, store.ErrUnchanged):
			return handler.Error(c, unchanged)
		case err != nil:
			return handler.Error(c, err)
		}

		invalidate(ctx, pages, log, id)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: done})
	}
}
