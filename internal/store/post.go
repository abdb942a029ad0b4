package store

import (
	"context"
	"math"

	"blog-api/internal/database"
	"blog-api/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CreatePost inserts p unpublished with zero likes and fills in the generated
// columns.
func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (title, description, tags, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, published, likes`,
		p.Title,
		p.Description,
		p.Tags,
		p.UserID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.Published, &p.Likes); err != nil {
		return nil, wrap("CreatePost", err)
	}
	return p, nil
}

// SetPublished moves a post to the requested published state in a single
// statement. It returns ErrNotFound when the post does not exist and
// ErrUnchanged when it is already in that state.
func SetPublished(ctx context.Context, db database.DB, postID int, published bool) error {
	var found, changed bool
	err := db.QueryRow(ctx,
		`WITH target AS (
		     SELECT id, published FROM posts WHERE id = $1 FOR UPDATE
		 ), changed AS (
		     UPDATE posts SET published = $2
		     FROM target
		     WHERE posts.id = target.id AND target.published <> $2
		     RETURNING posts.id
		 )
		 SELECT EXISTS (SELECT 1 FROM target), EXISTS (SELECT 1 FROM changed)`,
		postID,
		published,
	).Scan(&found, &changed)
	if err != nil {
		return wrap("SetPublished", err)
	}
	if !found {
		return wrap("SetPublished", ErrNotFound)
	}
	if !changed {
		return wrap("SetPublished", ErrUnchanged)
	}
	return nil
}

// AddLikes adjusts the like counter atomically and returns the new value.
// There is no floor; the counter may go negative.
func AddLikes(ctx context.Context, db database.DB, postID, delta int) (int, error) {
	var likes int
	err := db.QueryRow(ctx,
		`UPDATE posts SET likes = likes + $2 WHERE id = $1 RETURNING likes`,
		postID,
		delta,
	).Scan(&likes)
	if err != nil {
		return 0, wrap("AddLikes", err)
	}
	return likes, nil
}

// ListPublishedPosts returns one page of published posts in insertion order.
// Pages past the end are empty.
func ListPublishedPosts(ctx context.Context, db database.DB, page, perPage int) ([]model.Post, error) {
	builder, ok := publishedPage(psql.Select(postColumns...).From("posts"), page, perPage)
	if !ok {
		return []model.Post{}, nil
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrap("ListPublishedPosts", err)
	}
	posts, err := queryPosts(ctx, db, query, args...)
	if err != nil {
		return nil, wrap("ListPublishedPosts", err)
	}
	return posts, nil
}

// ListPublishedPostsByUser is ListPublishedPosts restricted to one author.
func ListPublishedPostsByUser(ctx context.Context, db database.DB, userID, page, perPage int) ([]model.Post, error) {
	builder := psql.Select(postColumns...).From("posts").Where(sq.Eq{"user_id": userID})
	builder, ok := publishedPage(builder, page, perPage)
	if !ok {
		return []model.Post{}, nil
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrap("ListPublishedPostsByUser", err)
	}
	posts, err := queryPosts(ctx, db, query, args...)
	if err != nil {
		return nil, wrap("ListPublishedPostsByUser", err)
	}
	return posts, nil
}

var postColumns = []string{"id", "title", "description", "tags", "created_at", "published", "likes", "user_id"}

// publishedPage adds the published filter and paging to b. ok is false when
// the page starts beyond the largest OFFSET Postgres accepts; such a page is
// necessarily empty.
func publishedPage(b sq.SelectBuilder, page, perPage int) (_ sq.SelectBuilder, ok bool) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	skipped := int64(page) - 1
	if skipped > math.MaxInt64/int64(perPage) {
		return b, false
	}
	return b.Where(sq.Eq{"published": true}).
		OrderBy("id").
		Limit(uint64(perPage)).
		Offset(uint64(skipped * int64(perPage))), true
}

func queryPosts(ctx context.Context, db database.DB, query string, args ...any) ([]model.Post, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func scanPost(row pgx.Row, p *model.Post) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Tags,
		&p.CreatedAt,
		&p.Published,
		&p.Likes,
		&p.UserID,
	)
}
