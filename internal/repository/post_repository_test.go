package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/domcreator/dashboard/internal/database"
	"github.com/domcreator/dashboard/internal/models"
	"github.com/domcreator/dashboard/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func testPost(platform string, scheduled time.Time) *models.ScheduledPost {
	return &models.ScheduledPost{
		Platform:          platform,
		Caption:           "test caption",
		ScheduledDatetime: scheduled,
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	post := testPost("tiktok", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	id, err := repo.Create(ctx, nil, post)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero id")
	}
	if !post.CreatedAt.Equal(post.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %v and %v", post.CreatedAt, post.UpdatedAt)
	}

	other := testPost("youtube", time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC))
	otherID, err := repo.Create(ctx, nil, other)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if otherID == id {
		t.Errorf("expected unique ids, both got %d", id)
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	scheduled := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	post := testPost("instagram", scheduled)
	post.LinkOrAssetNote = "https://example.com/asset.mp4"
	id, err := repo.Create(ctx, nil, post)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected post, got nil")
	}
	if got.Platform != "instagram" || got.Caption != "test caption" {
		t.Errorf("unexpected record: %+v", got)
	}
	if !got.ScheduledDatetime.Equal(scheduled) {
		t.Errorf("expected scheduled time %v, got %v", scheduled, got.ScheduledDatetime)
	}
	if got.LinkOrAssetNote != "https://example.com/asset.mp4" {
		t.Errorf("unexpected note: %q", got.LinkOrAssetNote)
	}
	if got.IsPosted {
		t.Error("expected is_posted to default to false")
	}
}

func TestGetByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)

	got, err := repo.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestListUnpostedOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	t1 := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	// Scrambled insertion order.
	for _, scheduled := range []time.Time{t2, t3, t1} {
		if _, err := repo.Create(ctx, nil, testPost("tiktok", scheduled)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	posts, err := repo.ListUnposted(ctx)
	if err != nil {
		t.Fatalf("ListUnposted: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []time.Time{t1, t2, t3} {
		if !posts[i].ScheduledDatetime.Equal(want) {
			t.Errorf("position %d: expected %v, got %v", i, want, posts[i].ScheduledDatetime)
		}
	}
}

func TestListUnpostedExcludesPosted(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, nil, testPost("tiktok", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, nil, testPost("youtube", time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := db.Exec(`UPDATE scheduled_posts SET is_posted = $1 WHERE id = $2`, true, id); err != nil {
		t.Fatalf("failed to mark post as posted: %v", err)
	}

	posts, err := repo.ListUnposted(ctx)
	if err != nil {
		t.Fatalf("ListUnposted: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Platform != "youtube" {
		t.Errorf("expected the unposted record, got %+v", posts[0])
	}
}

func TestUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	post := testPost("tiktok", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	id, err := repo.Create(ctx, nil, post)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	createdAt := post.CreatedAt

	post.Caption = "updated caption"
	if err := repo.Update(ctx, nil, post); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Caption != "updated caption" {
		t.Errorf("expected updated caption, got %q", got.Caption)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("created_at changed: %v -> %v", createdAt, got.CreatedAt)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("expected updated_at > created_at, got %v and %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestRemove(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, nil, testPost("threads", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Remove(ctx, id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Errorf("expected post to be gone, got %+v", got)
	}
}

func TestCountByPlatform(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewPostRepository(db)
	ctx := context.Background()

	for _, platform := range []string{"tiktok", "tiktok", "youtube"} {
		if _, err := repo.Create(ctx, nil, testPost(platform, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	count, err := repo.CountByPlatform(ctx, "tiktok", false)
	if err != nil {
		t.Fatalf("CountByPlatform: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 tiktok posts, got %d", count)
	}

	count, err = repo.CountByPlatform(ctx, "linkedin", false)
	if err != nil {
		t.Fatalf("CountByPlatform: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 linkedin posts, got %d", count)
	}
}
