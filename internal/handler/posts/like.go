// File: internal/handler/posts/like.go
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

// LikePostHandler 讚數 +1
// @Summary     Like a post
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} api.LikeResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id}/like [put]
func LikePostHandler(db database.DB, pages *cache.PostPages, log *zap.Logger) echo.HandlerFunc {
	return likeHandler(db, pages, log, 1, "Post liked successfully")
}

// UnlikePostHandler 讚數 -1，不設下限
// @Summary     Unlike a post
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} api.LikeResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /post/{id}/unlike [put]
func UnlikePostHandler(db database.DB, pages *cache.PostPages, log *zap.Logger) echo.HandlerFunc {
	return likeHandler(db, pages, log, -1, "Post unliked successfully")
}

func likeHandler(db database.DB, pages *cache.PostPages, log *zap.Logger, delta int, done string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := postID(c.Param("id"))
		if !ok {
			return handler.Error(c, service.ErrPostNotFound)
		}

		ctx := c.Request().Context()
		likes, err := addLikes(ctx, db, id, delta)
		if errors.Is(err, store.ErrNotFound) {
			return handler.Error(c, service.ErrPostNotFound)
		}
		if err != nil {
			return handler.Error(c, err)
		}

		invalidate(ctx, pages, log, id)
		return c.JSON(http.StatusOK, api.LikeResponse{Message: done, Likes: likes})
	}
}
