package store

import (
	"context"
	"errors"
	"testing"

	"blog-api/internal/database"
	"blog-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- fakes ---------- */

// fakeUserRow handles the three Scan shapes used in user.go:
// 6 dests for GetUserByUsername, 1 *int for CreateUser, 1 *bool for the
// existence checks.
type fakeUserRow struct {
	scanErr error
	user    *model.User
	exists  bool
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 6:
		u := r.user
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.Mobile
		*dest[4].(*string) = u.Username
		*dest[5].(*string) = u.Password
	case 1:
		switch d := dest[0].(type) {
		case *int:
			*d = r.user.ID
		case *bool:
			*d = r.exists
		}
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

func rowDB(row pgx.Row, gotArgs *[]any) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			if gotArgs != nil {
				*gotArgs = args
			}
			return row
		},
	}
}

/* ---------- tests ---------- */

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var args []any
		db := rowDB(&fakeUserRow{user: &model.User{ID: 42}}, &args)
		u, err := CreateUser(context.Background(), db, &model.User{
			Name: "A", Email: "a@x.com", Mobile: "1", Username: "a1", Password: "hash",
		})
		require.NoError(t, err)
		require.Equal(t, 42, u.ID)
		require.Equal(t, []any{"A", "a@x.com", "1", "a1", "hash"}, args)
	})

	t.Run("duplicate username", func(t *testing.T) {
		db := rowDB(&fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}, nil)
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := rowDB(&fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}, nil)
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("other error", func(t *testing.T) {
		db := rowDB(&fakeUserRow{scanErr: errors.New("boom")}, nil)
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "CreateUser")
		require.NotErrorIs(t, err, ErrDuplicateUsername)
	})
}

func TestGetUserByUsername(t *testing.T) {
	sample := &model.User{ID: 7, Name: "Alice", Email: "alice@example.com", Mobile: "555", Username: "alice", Password: "h"}

	t.Run("found", func(t *testing.T) {
		var args []any
		u, err := GetUserByUsername(context.Background(), rowDB(&fakeUserRow{user: sample}, &args), "alice")
		require.NoError(t, err)
		require.Equal(t, sample, u)
		require.Equal(t, []any{"alice"}, args)
	})

	t.Run("not found", func(t *testing.T) {
		u, err := GetUserByUsername(context.Background(), rowDB(&fakeUserRow{scanErr: pgx.ErrNoRows}, nil), "bob")
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("db error", func(t *testing.T) {
		_, err := GetUserByUsername(context.Background(), rowDB(&fakeUserRow{scanErr: errors.New("conn")}, nil), "bob")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestExistenceChecks(t *testing.T) {
	ok, err := UsernameExists(context.Background(), rowDB(&fakeUserRow{exists: true}, nil), "a1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = EmailExists(context.Background(), rowDB(&fakeUserRow{exists: false}, nil), "a@x.com")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = UsernameExists(context.Background(), rowDB(&fakeUserRow{scanErr: errors.New("x")}, nil), "a1")
	require.Error(t, err)
	_, err = EmailExists(context.Background(), rowDB(&fakeUserRow{scanErr: errors.New("x")}, nil), "a@x.com")
	require.Error(t, err)
}
