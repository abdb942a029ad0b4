// Command seed fills a development database with demo users and posts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/logger"
	"blog-api/internal/model"
	"blog-api/internal/service"
	"blog-api/internal/store"
	"blog-api/internal/worker"

	"go.uber.org/zap"
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	hashPassword    = service.HashPassword
	createUser      = store.CreateUser
	createPost      = store.CreatePost
	setPublished    = store.SetPublished
	exitFunc        = os.Exit
)

type options struct {
	users   int
	posts   int
	workers int
}

type result struct {
	users   atomic.Int64
	skipped atomic.Int64
	posts   atomic.Int64
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.IntVar(&o.users, "users", 10, "number of demo users")
	fs.IntVar(&o.posts, "posts", 5, "posts per demo user")
	fs.IntVar(&o.workers, "workers", 4, "concurrent inserts")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.users < 0 || o.posts < 0 {
		return o, fmt.Errorf("users and posts must not be negative")
	}
	return o, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logr, err := newLogger(logger.Options{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("Logger 建立失敗: %w", err)
	}
	defer func() { _ = logr.Sync() }()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	res := seed(context.Background(), db, opts)
	logr.Info("seed finished",
		zap.Int64("users", res.users.Load()),
		zap.Int64("skipped", res.skipped.Load()),
		zap.Int64("posts", res.posts.Load()),
	)
	return res.err
}

type seedResult struct {
	result
	err error
}

// seed creates opts.users demo users, each with opts.posts posts of which
// every other one is published. Users that already exist are skipped.
func seed(ctx context.Context, db database.DB, opts options) *seedResult {
	res := &seedResult{}
	wp := newWorkerPool(opts.workers)
	for i := 1; i <= opts.users; i++ {
		wp.Submit(func() error {
			return seedUser(ctx, db, i, opts.posts, &res.result)
		})
	}
	res.err = wp.Stop()
	return res
}

func seedUser(ctx context.Context, db database.DB, i, posts int, res *result) error {
	username := fmt.Sprintf("demo%d", i)
	hash, err := hashPassword(fmt.Sprintf("password%d", i))
	if err != nil {
		return fmt.Errorf("%s: %w", username, err)
	}
	user, err := createUser(ctx, db, &model.User{
		Name:     fmt.Sprintf("Demo User %d", i),
		Email:    fmt.Sprintf("demo%d@example.com", i),
		Mobile:   fmt.Sprintf("09%08d", i),
		Username: username,
		Password: hash,
	})
	if errors.Is(err, store.ErrDuplicateUsername) || errors.Is(err, store.ErrDuplicateEmail) {
		res.skipped.Add(1)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", username, err)
	}
	res.users.Add(1)

	for j := 1; j <= posts; j++ {
		post, err := createPost(ctx, db, &model.Post{
			Title:       fmt.Sprintf("%s post %d", username, j),
			Description: fmt.Sprintf("Post %d written by %s.", j, username),
			UserID:      user.ID,
		})
		if err != nil {
			return fmt.Errorf("%s post %d: %w", username, j, err)
		}
		if j%2 == 1 {
			if err := setPublished(ctx, db, post.ID, true); err != nil {
				return fmt.Errorf("%s publish %d: %w", username, post.ID, err)
			}
		}
		res.posts.Add(1)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
