package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/domcreator/dashboard/internal/apperrors"
	"github.com/domcreator/dashboard/internal/models"
	"github.com/domcreator/dashboard/internal/repository"
	"github.com/domcreator/dashboard/internal/transfer"
)

type PostService interface {
	Create(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	List(ctx context.Context) ([]*models.ScheduledPost, error)
	Update(ctx context.Context, postID int64, pu *transfer.PostUpdate) (*models.ScheduledPost, error)
	Remove(ctx context.Context, postID int64) error
}

type postService struct {
	db *sql.DB
	pr repository.PostRepository
}

func NewPostService(db *sql.DB, pr repository.PostRepository) PostService {
	return &postService{
		db: db,
		pr: pr,
	}
}

// scheduledTimeLayouts are tried in order. The API documents ISO-8601;
// the shorter layouts cover datetime-local form values without seconds.
var scheduledTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseScheduledTime(value string) (time.Time, error) {
	for _, layout := range scheduledTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.InvalidInputf("invalid datetime format %q, use ISO format: YYYY-MM-DDTHH:mm", value)
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	if pc == nil {
		err := apperrors.InvalidInputf("post creation data is nil")
		slog.Info(err.Error())
		return nil, err
	}
	if pc.Platform == "" {
		err := apperrors.InvalidInputf("platform cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}
	if pc.Caption == "" {
		err := apperrors.InvalidInputf("caption cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}
	if pc.ScheduledDatetime == "" {
		err := apperrors.InvalidInputf("scheduled_datetime cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	scheduledTime, err := parseScheduledTime(pc.ScheduledDatetime)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	post := models.ScheduledPost{
		Platform:          strings.ToLower(pc.Platform),
		Caption:           pc.Caption,
		ScheduledDatetime: scheduledTime,
		LinkOrAssetNote:   pc.LinkOrAssetNote,
	}

	if _, err = s.pr.Create(ctx, tx, &post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &post, nil
}

// List returns the upcoming-posts view: unposted records, soonest first.
func (s *postService) List(ctx context.Context) ([]*models.ScheduledPost, error) {
	posts, err := s.pr.ListUnposted(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) Update(ctx context.Context, postID int64, pu *transfer.PostUpdate) (*models.ScheduledPost, error) {
	if pu == nil {
		err := apperrors.InvalidInputf("post update data is nil")
		slog.Info(err.Error())
		return nil, err
	}

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	if post == nil {
		err = apperrors.NotFoundf("post %d doesn't exist", postID)
		slog.Info(err.Error())
		return nil, err
	}

	if pu.Platform != nil {
		post.Platform = strings.ToLower(*pu.Platform)
	}
	if pu.Caption != nil {
		post.Caption = *pu.Caption
	}
	if pu.ScheduledDatetime != nil {
		scheduledTime, err := parseScheduledTime(*pu.ScheduledDatetime)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		post.ScheduledDatetime = scheduledTime
	}
	if pu.LinkOrAssetNote != nil {
		post.LinkOrAssetNote = *pu.LinkOrAssetNote
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pr.Update(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return post, nil
}

func (s *postService) Remove(ctx context.Context, postID int64) error {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("error getting post: %w", err)
	}
	if post == nil {
		err = apperrors.NotFoundf("post %d doesn't exist", postID)
		slog.Info(err.Error())
		return err
	}

	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}

	return nil
}
