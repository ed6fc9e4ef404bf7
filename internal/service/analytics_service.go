package service

import (
	"context"
	"fmt"

	"github.com/domcreator/dashboard/internal/models"
	"github.com/domcreator/dashboard/internal/repository"
	"github.com/domcreator/dashboard/internal/transfer"
)

type AnalyticsService interface {
	Summary(ctx context.Context) (map[string]*transfer.PlatformAnalytics, error)
}

type analyticsService struct {
	pr repository.PostRepository
}

func NewAnalyticsService(pr repository.PostRepository) AnalyticsService {
	return &analyticsService{
		pr: pr,
	}
}

// Placeholder figures until the per-platform APIs are wired up.
// TODO: replace with real TikTok/YouTube/Instagram/Facebook/LinkedIn/Threads
// API calls once credentials are configured.
var (
	mockFollowers = map[string]int{
		models.PlatformTiktok:    15000,
		models.PlatformYoutube:   8500,
		models.PlatformInstagram: 12000,
		models.PlatformFacebook:  5000,
		models.PlatformLinkedin:  3200,
		models.PlatformThreads:   2100,
	}
	mockViews7d = map[string]int{
		models.PlatformTiktok:    125000,
		models.PlatformYoutube:   45000,
		models.PlatformInstagram: 38000,
		models.PlatformFacebook:  12000,
		models.PlatformLinkedin:  5600,
		models.PlatformThreads:   8900,
	}
	mockEngagement = []int{450, 380, 290}
)

// Summary assembles the per-platform dashboard data: static placeholder
// metrics plus a live count of unposted scheduled posts.
func (s *analyticsService) Summary(ctx context.Context) (map[string]*transfer.PlatformAnalytics, error) {
	summary := make(map[string]*transfer.PlatformAnalytics, len(models.Platforms))

	for _, platform := range models.Platforms {
		scheduled, err := s.pr.CountByPlatform(ctx, platform, false)
		if err != nil {
			return nil, fmt.Errorf("error counting scheduled posts for %s: %w", platform, err)
		}

		info := models.PlatformDetails[platform]

		topPosts := make([]transfer.TopPost, 0, len(mockEngagement))
		for i, engagement := range mockEngagement {
			topPosts = append(topPosts, transfer.TopPost{
				Title:      fmt.Sprintf("Top post #%d", i+1),
				Engagement: engagement,
				Date:       "2024-01-20",
			})
		}

		summary[platform] = &transfer.PlatformAnalytics{
			Name:           info.Name,
			Color:          info.Color,
			Followers:      mockFollowers[platform],
			Views7d:        mockViews7d[platform],
			PostsScheduled: scheduled,
			TopPosts:       topPosts,
		}
	}

	return summary, nil
}
