// File: internal/router/router.go
package router

import (
	"blog-api/internal/cache"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/handler/auth"
	"blog-api/internal/handler/posts"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Setup 註冊所有路由
// cch 與 pages 可為 nil（未設定 Redis）
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, pages *cache.PostPages, log *zap.Logger) {
	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, cch))

	// 帳號
	e.POST("/signup", auth.SignupHandler(db, log))
	e.POST("/login", auth.LoginHandler(db))

	// 文章
	e.POST("/post", posts.CreatePostHandler(db))
	e.PUT("/post/:id/publish", posts.PublishPostHandler(db, pages, log))
	e.PUT("/post/:id/unpublish", posts.UnpublishPostHandler(db, pages, log))
	e.PUT("/post/:id/like", posts.LikePostHandler(db, pages, log))
	e.PUT("/post/:id/unlike", posts.UnlikePostHandler(db, pages, log))
	e.GET("/posts", posts.ListPostsHandler(db, pages, log))
	e.GET("/users/:username/posts", posts.ListUserPostsHandler(db))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
