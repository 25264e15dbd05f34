package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// candidateRanker отбирает доступных врачей и сортирует их по расстоянию до пациента
type candidateRanker struct {
	repo    AvailabilityRepository
	logger  *logrus.Logger
	metrics MetricsRecorder
}

func newCandidateRanker(repo AvailabilityRepository, logger *logrus.Logger, metrics MetricsRecorder) *candidateRanker {
	return &candidateRanker{repo: repo, logger: logger, metrics: metrics}
}

// rank возвращает кандидатов по возрастанию расстояния. Пустая специализация означает "любая".
// Врачи без координат или с невалидными координатами пропускаются.
func (r *candidateRanker) rank(ctx context.Context, origin geo.Point, specialization string) ([]models.Candidate, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":        "dispatch",
		"method":         "rankCandidates",
		"specialization": specialization,
	})

	var (
		doctors []*models.DoctorAvailability
		err     error
	)
	if specialization == "" {
		doctors, err = r.repo.ListAvailable(ctx)
	} else {
		doctors, err = r.repo.ListAvailableBySpecialization(ctx, specialization)
	}
	if err != nil {
		return nil, fmt.Errorf("could not list available doctors: %w", err)
	}

	eligible := make([]*models.DoctorAvailability, 0, len(doctors))
	for _, d := range doctors {
		if !d.IsAvailable {
			continue
		}
		if specialization != "" && !strings.EqualFold(d.Specialization, specialization) {
			continue
		}
		loc, ok := d.Location()
		if !ok {
			log.WithField("doctor_id", d.DoctorID).Warn("Skipping candidate without location")
			r.metrics.CandidateSkipped("missing_location")
			continue
		}
		if err := loc.Validate(); err != nil {
			log.WithError(err).WithField("doctor_id", d.DoctorID).Warn("Skipping candidate with invalid location")
			r.metrics.CandidateSkipped("invalid_location")
			continue
		}
		eligible = append(eligible, d)
	}

	ranked := geo.Rank(origin, eligible, func(d *models.DoctorAvailability) geo.Point {
		loc, _ := d.Location()
		return loc
	})

	candidates := make([]models.Candidate, 0, len(ranked))
	for _, item := range ranked {
		loc, _ := item.Item.Location()
		candidates = append(candidates, models.Candidate{
			DoctorID:       item.Item.DoctorID,
			DoctorName:     item.Item.DoctorName,
			Specialization: item.Item.Specialization,
			Location:       loc,
			DistanceKm:     item.DistanceKm,
		})
	}

	log.WithField("count", len(candidates)).Debug("Candidates ranked")
	return candidates, nil
}
