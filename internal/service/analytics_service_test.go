package service_test

import (
	"context"
	"testing"

	"github.com/domcreator/dashboard/internal/models"
	"github.com/domcreator/dashboard/internal/repository"
	"github.com/domcreator/dashboard/internal/service"
	"github.com/domcreator/dashboard/internal/transfer"
)

func TestSummaryCoversAllPlatforms(t *testing.T) {
	_, db := newTestService(t)
	svc := service.NewAnalyticsService(repository.NewPostRepository(db))

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if len(summary) != len(models.Platforms) {
		t.Fatalf("expected %d platforms, got %d", len(models.Platforms), len(summary))
	}
	for _, platform := range models.Platforms {
		entry, ok := summary[platform]
		if !ok {
			t.Errorf("missing platform %q", platform)
			continue
		}
		if entry.Name == "" || entry.Color == "" {
			t.Errorf("platform %q missing display metadata: %+v", platform, entry)
		}
		if len(entry.TopPosts) != 3 {
			t.Errorf("platform %q: expected 3 top posts, got %d", platform, len(entry.TopPosts))
		}
	}

	if summary["tiktok"].Name != "TikTok" || summary["tiktok"].Color != "#000000" {
		t.Errorf("unexpected tiktok metadata: %+v", summary["tiktok"])
	}
}

func TestSummaryCountsScheduledPosts(t *testing.T) {
	posts, db := newTestService(t)
	svc := service.NewAnalyticsService(repository.NewPostRepository(db))
	ctx := context.Background()

	for _, pc := range []transfer.PostCreation{
		{Platform: "tiktok", Caption: "one", ScheduledDatetime: "2024-06-01T10:00"},
		{Platform: "tiktok", Caption: "two", ScheduledDatetime: "2024-06-02T10:00"},
		{Platform: "youtube", Caption: "three", ScheduledDatetime: "2024-06-03T10:00"},
	} {
		if _, err := posts.Create(ctx, &pc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if got := summary["tiktok"].PostsScheduled; got != 2 {
		t.Errorf("expected 2 scheduled tiktok posts, got %d", got)
	}
	if got := summary["youtube"].PostsScheduled; got != 1 {
		t.Errorf("expected 1 scheduled youtube post, got %d", got)
	}
	if got := summary["threads"].PostsScheduled; got != 0 {
		t.Errorf("expected 0 scheduled threads posts, got %d", got)
	}
}
