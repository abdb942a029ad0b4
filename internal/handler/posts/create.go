// File: internal/handler/posts/create.go
package posts

import (
	"errors"
	"net/http"

	"blog-api/internal/api"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
)

// CreatePostHandler 以指定作者建立草稿文章
// @Summary     Create a post
// @Description 建立未發佈、讚數為 0 的文章
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       body body     api.CreatePostRequest true "文章內容"
// @Success     201  {object} api.CreatePostResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /post [post]
func CreatePostHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePostRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Error(c, err)
		}

		ctx := c.Request().Context()
		author, err := getUserByUsername(ctx, db, *req.Username)
		if errors.Is(err, store.ErrNotFound) {
			return handler.Error(c, service.ErrInvalidUser)
		}
		if err != nil {
			return handler.Error(c, err)
		}

		post, err := createPost(ctx, db, &model.Post{
			Title:       *req.Title,
			Description: *req.Description,
			Tags:        req.Tags,
			UserID:      author.ID,
		})
		if errors.Is(err, store.ErrNotFound) {
			// author deleted between lookup and insert
			return handler.Error(c, service.ErrInvalidUser)
		}
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.CreatePostResponse{Message: "Post created successfully", ID: post.ID})
	}
}
