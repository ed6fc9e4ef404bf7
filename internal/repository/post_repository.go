package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/domcreator/dashboard/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error)
	ListUnposted(ctx context.Context) ([]*models.ScheduledPost, error)
	Update(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) error
	Remove(ctx context.Context, id int64) error
	CountByPlatform(ctx context.Context, platform string, isPosted bool) (int, error)
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (int64, error) {
	query := `
		INSERT INTO scheduled_posts (platform, caption, scheduled_datetime, link_or_asset_note, created_at, updated_at, is_posted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	var id int64
	var err error

	args := []any{post.Platform, post.Caption, post.ScheduledDatetime, post.LinkOrAssetNote, post.CreatedAt, post.UpdatedAt, post.IsPosted}
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	post.ID = id
	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.ScheduledPost, error) {
	query := `SELECT id, platform, caption, scheduled_datetime, link_or_asset_note, created_at, updated_at, is_posted FROM scheduled_posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.ScheduledPost
	err := row.Scan(&post.ID, &post.Platform, &post.Caption, &post.ScheduledDatetime, &post.LinkOrAssetNote, &post.CreatedAt, &post.UpdatedAt, &post.IsPosted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListUnposted(ctx context.Context) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, platform, caption, scheduled_datetime, link_or_asset_note, created_at, updated_at, is_posted
		FROM scheduled_posts
		WHERE is_posted = $1
		ORDER BY scheduled_datetime ASC
	`

	rows, err := r.db.QueryContext(ctx, query, false)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	posts := make([]*models.ScheduledPost, 0)
	for rows.Next() {
		var post models.ScheduledPost
		err := rows.Scan(&post.ID, &post.Platform, &post.Caption, &post.ScheduledDatetime, &post.LinkOrAssetNote, &post.CreatedAt, &post.UpdatedAt, &post.IsPosted)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Update(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) error {
	query := `
		UPDATE scheduled_posts
		SET platform = $1,
			caption = $2,
			scheduled_datetime = $3,
			link_or_asset_note = $4,
			updated_at = $5
		WHERE id = $6
	`

	post.UpdatedAt = time.Now().UTC()

	var err error
	args := []any{post.Platform, post.Caption, post.ScheduledDatetime, post.LinkOrAssetNote, post.UpdatedAt, post.ID}
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM scheduled_posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) CountByPlatform(ctx context.Context, platform string, isPosted bool) (int, error) {
	query := `SELECT COUNT(*) FROM scheduled_posts WHERE platform = $1 AND is_posted = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, platform, isPosted).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return count, nil
}
