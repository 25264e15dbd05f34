package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

type availabilityService struct {
	repo     AvailabilityRepository
	profiles ProfileRepository
	ranker   *candidateRanker
	logger   *logrus.Logger
}

func NewAvailabilityService(repo AvailabilityRepository, profiles ProfileRepository, recorder MetricsRecorder, logger *logrus.Logger) AvailabilityService {
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}
	return &availabilityService{
		repo:     repo,
		profiles: profiles,
		ranker:   newCandidateRanker(repo, logger, recorder),
		logger:   logger,
	}
}

func (s *availabilityService) ListAvailableDoctors(ctx context.Context) ([]*models.DoctorAvailability, error) {
	doctors, err := s.repo.ListAvailable(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list available doctors")
		return nil, fmt.Errorf("service: could not list available doctors: %w", err)
	}
	return doctors, nil
}

// RankAvailableDoctors возвращает доступных врачей по возрастанию расстояния до origin
func (s *availabilityService) RankAvailableDoctors(ctx context.Context, origin geo.Point, specialization string) ([]models.Candidate, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}

	candidates, err := s.ranker.rank(ctx, origin, strings.TrimSpace(specialization))
	if err != nil {
		s.logger.WithError(err).Error("Failed to rank available doctors")
		return nil, fmt.Errorf("service: could not rank available doctors: %w", err)
	}
	return candidates, nil
}

// GetAvailability возвращает флаг доступности. Врач без строки доступности считается недоступным.
func (s *availabilityService) GetAvailability(ctx context.Context, doctorID int64) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "availability",
		"method":    "GetAvailability",
		"doctor_id": doctorID,
	})

	availability, err := s.repo.GetByDoctorID(ctx, doctorID)
	if err == nil {
		return availability.IsAvailable, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		log.WithError(err).Error("Failed to get doctor availability")
		return false, fmt.Errorf("service: could not get availability: %w", err)
	}

	if _, err := s.profiles.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, ErrDoctorNotFound
		}
		log.WithError(err).Error("Failed to get doctor profile")
		return false, fmt.Errorf("service: could not get doctor: %w", err)
	}
	return false, nil
}

// UpdateAvailability переключает доступность врача. location == nil оставляет прежние координаты.
func (s *availabilityService) UpdateAvailability(ctx context.Context, doctorID int64, isAvailable bool, location *geo.Point) (*models.DoctorAvailability, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "availability",
		"method":       "UpdateAvailability",
		"doctor_id":    doctorID,
		"is_available": isAvailable,
	})
	log.Info("Updating doctor availability")

	availability := &models.DoctorAvailability{
		DoctorID:    doctorID,
		IsAvailable: isAvailable,
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			log.WithError(err).Warn("Rejected availability update with invalid location")
			return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		lat, lng := location.Lat, location.Lng
		availability.Latitude = &lat
		availability.Longitude = &lng
	}

	if err := s.repo.Upsert(ctx, availability); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Attempted to update availability of a non-existent doctor")
			return nil, ErrDoctorNotFound
		}
		log.WithError(err).Error("Failed to upsert doctor availability")
		return nil, fmt.Errorf("service: could not update availability: %w", err)
	}

	updated, err := s.repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		log.WithError(err).Error("Failed to read back doctor availability")
		return nil, fmt.Errorf("service: could not get availability: %w", err)
	}

	log.Info("Doctor availability updated")
	return updated, nil
}
