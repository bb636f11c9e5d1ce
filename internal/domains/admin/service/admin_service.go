package service

import (
	"context"
	"time"

	"virtualbiblio-backend/internal/domains/admin/model"
	"virtualbiblio-backend/internal/domains/admin/repository"
	"virtualbiblio-backend/pkg/cache"
	"virtualbiblio-backend/pkg/logger"
)

const (
	dashboardCacheKey = "admin:dashboard"
	dashboardCacheTTL = 5 * time.Minute
)

// Service serves the admin dashboard. The aggregate is cached briefly since
// it fans out into several table scans.
type Service interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type adminService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewAdminService(repo repository.Repository, cache cache.Cache) Service {
	return &adminService{repo: repo, cache: cache}
}

func (s *adminService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var cached model.DashboardStats
	if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return &cached, nil
	} else if err != nil {
		logger.Warn("dashboard cache read failed", err)
	}

	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, dashboardCacheKey, stats, dashboardCacheTTL); err != nil {
		logger.Warn("dashboard cache write failed", err)
	}
	return stats, nil
}
