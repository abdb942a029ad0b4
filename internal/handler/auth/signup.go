// File: internal/handler/auth/signup.go
package auth

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
	"go.uber.org/zap"
)

// SignupHandler 註冊新使用者
// @Summary     Sign up
// @Description 建立帳號；密碼以 bcrypt 雜湊後儲存
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.SignupRequest true "註冊資料"
// @Success     201  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(db database.DB, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		// 欄位長度錯誤要等確認帳號未被使用後才回報；
		// InvalidField 代表所有必填欄位都已存在
		invalid := handler.BindAndValidate(c, &req)
		if invalid != nil && service.KindOf(invalid) != service.KindInvalidField {
			return handler.Error(c, invalid)
		}
		// 只記錄帳號，密碼不落地
		log.Info("signup", zap.String("username", *req.Username))

		ctx := c.Request().Context()
		taken, err := usernameExists(ctx, db, *req.Username)
		if err != nil {
			return handler.Error(c, err)
		}
		if taken {
			return handler.Error(c, service.ErrDuplicateUsername)
		}
		if invalid != nil {
			return handler.Error(c, invalid)
		}
		taken, err = emailExists(ctx, db, *req.Email)
		if err != nil {
			return handler.Error(c, err)
		}
		if taken {
			return handler.Error(c, service.ErrDuplicateEmail)
		}

		if err := service.CheckPasswordPolicy(*req.Password); err != nil {
			return handler.Error(c, err)
		}
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return handler.Error(c, err)
		}

		_, err = createUser(ctx, db, &model.User{
			Name:     *req.Name,
			Email:    *req.Email,
			Mobile:   *req.Mobile,
			Username: *req.Username,
			Password: hash,
		})
		switch {
		case errors.Is(err, store.ErrDuplicateUsername):
			// lost a race with a concurrent signup
			return handler.Error(c, service.ErrDuplicateUsername)
		case errors.Is(err, store.ErrDuplicateEmail):
			return handler.Error(c, service.ErrDuplicateEmail)
		case err != nil:
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	}
}
