package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"blog-api/internal/database"
	"blog-api/internal/model"
	"blog-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const signupBody = `{"name":"Alice","email":"alice@example.com","mobile":"0912","username":"alice","password":"longpass1"}`

// stubSignupStore makes every store call succeed and records the created user.
func stubSignupStore(t *testing.T) *model.User {
	t.Helper()
	t.Cleanup(restoreGlobals)
	created := &model.User{}
	usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
	emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
	hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
	createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
		*created = *u
		u.ID = 7
		return u, nil
	}
	return created
}

func TestSignupHandlerSuccess(t *testing.T) {
	created := stubSignupStore(t)
	core, logs := observer.New(zapcore.InfoLevel)

	ctx, rec := newCtx(signupBody)
	require.NoError(t, SignupHandler(&database.FakeDB{}, zap.New(core))(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"message":"User created successfully"}`, rec.Body.String())

	require.Equal(t, model.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Mobile:   "0912",
		Username: "alice",
		Password: "hashed:longpass1",
	}, *created)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]any{"username": "alice"}, entries[0].ContextMap())
	require.NotContains(t, fmt.Sprint(entries[0].ContextMap()), "longpass1")
}

func TestSignupHandlerRejections(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		setup  func()
		status int
		msg    string
	}{
		{
			name:   "bad json",
			body:   `not json`,
			status: http.StatusBadRequest,
			msg:    "Invalid request payload",
		},
		{
			name:   "first missing key wins",
			body:   `{"username":"alice"}`,
			status: http.StatusBadRequest,
			msg:    "Missing required key: name",
		},
		{
			name:   "missing password",
			body:   `{"name":"A","email":"e","mobile":"m","username":"u"}`,
			status: http.StatusBadRequest,
			msg:    "Missing required key: password",
		},
		{
			name:   "mobile too long",
			body:   `{"name":"A","email":"e","mobile":"012345678901234567890","username":"u","password":"longpass1"}`,
			status: http.StatusBadRequest,
			msg:    "Invalid value for key: mobile",
		},
		{
			name: "duplicate username",
			body: signupBody,
			setup: func() {
				usernameExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }
			},
			status: http.StatusBadRequest,
			msg:    "Username already exists",
		},
		{
			name: "duplicate username beats over-long fields",
			body: `{"name":"A","email":"e","mobile":"012345678901234567890","username":"alice","password":"short"}`,
			setup: func() {
				usernameExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }
			},
			status: http.StatusBadRequest,
			msg:    "Username already exists",
		},
		{
			name: "over-long field beats duplicate email",
			body: `{"name":"A","email":"e","mobile":"012345678901234567890","username":"alice","password":"longpass1"}`,
			setup: func() {
				emailExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }
			},
			status: http.StatusBadRequest,
			msg:    "Invalid value for key: mobile",
		},
		{
			name: "missing key beats duplicate username",
			body: `{"name":"A","email":"e","username":"alice","password":"longpass1"}`,
			setup: func() {
				usernameExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }
			},
			status: http.StatusBadRequest,
			msg:    "Missing required key: mobile",
		},
		{
			name: "duplicate email",
			body: signupBody,
			setup: func() {
				emailExists = func(context.Context, database.DB, string) (bool, error) { return true, nil }
			},
			status: http.StatusBadRequest,
			msg:    "Email already exists",
		},
		{
			name:   "weak password",
			body:   `{"name":"A","email":"e","mobile":"m","username":"u","password":"short"}`,
			status: http.StatusBadRequest,
			msg:    "Password must be at least 8 characters",
		},
		{
			name: "duplicate taken while inserting",
			body: signupBody,
			setup: func() {
				createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
					return nil, fmt.Errorf("CreateUser: %w", store.ErrDuplicateUsername)
				}
			},
			status: http.StatusBadRequest,
			msg:    "Username already exists",
		},
		{
			name: "email taken while inserting",
			body: signupBody,
			setup: func() {
				createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
					return nil, fmt.Errorf("CreateUser: %w", store.ErrDuplicateEmail)
				}
			},
			status: http.StatusBadRequest,
			msg:    "Email already exists",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubSignupStore(t)
			if tc.setup != nil {
				tc.setup()
			}
			ctx, rec := newCtx(tc.body)
			require.NoError(t, SignupHandler(&database.FakeDB{}, zap.NewNop())(ctx))
			require.Equal(t, tc.status, rec.Code)
			require.JSONEq(t, `{"message":"`+tc.msg+`"}`, rec.Body.String())
		})
	}
}

func TestSignupHandlerInternalErrors(t *testing.T) {
	boom := errors.New("boom")
	setups := map[string]func(){
		"username lookup": func() {
			usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, boom }
		},
		"email lookup": func() {
			emailExists = func(context.Context, database.DB, string) (bool, error) { return false, boom }
		},
		"hash": func() {
			hashPassword = func(string) (string, error) { return "", boom }
		},
		"insert": func() {
			createUser = func(context.Context, database.DB, *model.User) (*model.User, error) { return nil, boom }
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			stubSignupStore(t)
			setup()
			ctx, _ := newCtx(signupBody)
			err := SignupHandler(&database.FakeDB{}, zap.NewNop())(ctx)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			require.Equal(t, http.StatusInternalServerError, he.Code)
			require.ErrorIs(t, he.Internal, boom)
		})
	}
}
