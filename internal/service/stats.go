package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

type statsService struct {
	repo   EmergencyRepository
	window time.Duration
	now    func() time.Time
	logger *logrus.Logger
}

// NewStatsService создает сервис статистики. window задает окно для счетчика недавних запросов.
func NewStatsService(repo EmergencyRepository, window time.Duration, logger *logrus.Logger) StatsService {
	return &statsService{
		repo:   repo,
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

func (s *statsService) GetStats(ctx context.Context) (*models.EmergencyStats, error) {
	since := s.now().UTC().Add(-s.window)

	stats, err := s.repo.Stats(ctx, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "stats",
			"method":  "GetStats",
		}).WithError(err).Error("Failed to aggregate emergency stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	if math.IsNaN(stats.AverageResolutionMinutes) || math.IsInf(stats.AverageResolutionMinutes, 0) {
		stats.AverageResolutionMinutes = 0
	}
	stats.WindowMinutes = int(s.window / time.Minute)
	return stats, nil
}
