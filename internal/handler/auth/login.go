// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"blog-api/internal/api"
	"blog-api/internal/database"
	"blog-api/internal/handler"
	"blog-api/internal/service"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
)

// LoginHandler 驗證帳號密碼；不發行 token
// @Summary     Log in
// @Description 使用 Username 與 Password 進行驗證
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Error(c, err)
		}

		user, err := getUserByUsername(c.Request().Context(), db, *req.Username)
		if errors.Is(err, store.ErrNotFound) {
			return handler.Error(c, service.ErrUserNotFound)
		}
		if err != nil {
			return handler.Error(c, err)
		}

		if err := authenticateUser(*user, *req.Password); err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User logged in successfully"})
	}
}
