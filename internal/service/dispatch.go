package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/classifier"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/metrics"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// Dependencies - зависимости движка диспетчеризации. Cache, Publishers и Metrics опциональны.
type Dependencies struct {
	Emergencies  EmergencyRepository
	Rejections   RejectionRepository
	Availability AvailabilityRepository
	Profiles     ProfileRepository
	Cache        RequestCache
	Classifier   Classifier
	Publishers   []EventPublisher
	Metrics      MetricsRecorder
}

type dispatchService struct {
	emergencies EmergencyRepository
	rejections  RejectionRepository
	profiles    ProfileRepository
	cache       RequestCache
	classifier  Classifier
	publishers  []EventPublisher
	metrics     MetricsRecorder
	ranker      *candidateRanker
	logger      *logrus.Logger
}

func NewDispatchService(deps Dependencies, logger *logrus.Logger) DispatchService {
	rec := deps.Metrics
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	return &dispatchService{
		emergencies: deps.Emergencies,
		rejections:  deps.Rejections,
		profiles:    deps.Profiles,
		cache:       deps.Cache,
		classifier:  deps.Classifier,
		publishers:  deps.Publishers,
		metrics:     rec,
		ranker:      newCandidateRanker(deps.Availability, logger, rec),
		logger:      logger,
	}
}

// CreateAndAssign создает экстренный запрос и сразу пытается назначить ближайшего врача.
// Отсутствие свободных врачей не ошибка: запрос остается в PENDING без врача.
func (s *dispatchService) CreateAndAssign(ctx context.Context, input models.CreateEmergencyInput) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "CreateAndAssign",
		"patient_id": input.PatientID,
		"urgency":    input.UrgencyLevel,
	})
	log.Info("Attempting to create an emergency request")

	if strings.TrimSpace(input.Symptoms) == "" {
		return nil, ErrSymptomsRequired
	}
	if !input.UrgencyLevel.Valid() {
		return nil, ErrInvalidUrgency
	}

	patient, origin, err := s.patientLocation(ctx, input.PatientID)
	if err != nil {
		log.WithError(err).Warn("Patient cannot be dispatched")
		return nil, err
	}

	specialization := s.classify(ctx, log, input.Symptoms)
	log = log.WithField("specialization", specialization)

	candidates, fallback, err := s.findCandidates(ctx, log, origin, specialization)
	if err != nil {
		log.WithError(err).Error("Failed to search candidates")
		return nil, fmt.Errorf("service: could not search candidates: %w", err)
	}

	req := &models.EmergencyRequest{
		RequestID:      uuid.New(),
		PatientID:      patient.ID,
		PatientName:    patient.FullName(),
		PatientPhone:   patient.Phone,
		Symptoms:       input.Symptoms,
		UrgencyLevel:   input.UrgencyLevel,
		Location:       input.Location,
		Specialization: specialization,
		Status:         models.StatusPending,
		Notes:          input.Notes,
	}
	if err := s.emergencies.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create emergency request in repository")
		return nil, fmt.Errorf("service: could not create emergency request: %w", err)
	}

	log = log.WithField("request_id", req.RequestID)
	log.Info("Emergency request created")
	s.publish(ctx, log, models.NewDispatchEvent(models.EventEmergencyCreated, req))

	return s.autoAssign(ctx, log, req, candidates, fallback), nil
}

// Redispatch повторяет авто-назначение для запроса, который все еще в PENDING.
// Врачи, отказавшиеся от запроса, отсеиваются тем же условием, что и при ручном принятии.
func (s *dispatchService) Redispatch(ctx context.Context, requestID uuid.UUID) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "Redispatch",
		"request_id": requestID,
	})
	log.Info("Attempting to redispatch emergency request")

	req, err := s.emergencies.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		log.WithError(err).Error("Failed to get emergency request in repository")
		return nil, fmt.Errorf("service: could not get emergency request: %w", err)
	}
	if req.Status != models.StatusPending {
		log.WithField("status", req.Status).Warn("Redispatch of a non-pending request")
		return nil, ErrNotPending
	}

	_, origin, err := s.patientLocation(ctx, req.PatientID)
	if err != nil {
		log.WithError(err).Warn("Patient cannot be dispatched")
		return nil, err
	}

	specialization := req.Specialization
	if strings.TrimSpace(specialization) == "" {
		specialization = classifier.DefaultSpecialization
	}
	candidates, fallback, err := s.findCandidates(ctx, log, origin, specialization)
	if err != nil {
		log.WithError(err).Error("Failed to search candidates")
		return nil, fmt.Errorf("service: could not search candidates: %w", err)
	}

	return s.autoAssign(ctx, log, req, candidates, fallback), nil
}

// Accept - врач принимает запрос. Ровно один из конкурентных вызовов завершается успехом,
// остальные получают ErrNotPending.
func (s *dispatchService) Accept(ctx context.Context, doctorID int64, requestID uuid.UUID) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "Accept",
		"doctor_id":  doctorID,
		"request_id": requestID,
	})
	log.Info("Doctor attempting to accept emergency request")

	if _, err := s.profiles.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Attempted to accept by a non-existent doctor")
			return nil, ErrDoctorNotFound
		}
		log.WithError(err).Error("Failed to get doctor profile")
		return nil, fmt.Errorf("service: could not get doctor: %w", err)
	}

	updated, err := s.commitAccept(ctx, doctorID, requestID, metrics.SourceManual)
	if err != nil {
		if isGuardError(err) {
			log.WithError(err).Warn("Accept refused by state guard")
		} else {
			log.WithError(err).Error("Failed to accept emergency request")
		}
		return nil, err
	}

	log.Info("Emergency request accepted")
	return updated, nil
}

// Reject записывает отказ врача. Глобальное состояние запроса не меняется.
func (s *dispatchService) Reject(ctx context.Context, doctorID int64, requestID uuid.UUID, reason string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "Reject",
		"doctor_id":  doctorID,
		"request_id": requestID,
	})
	log.Info("Doctor attempting to reject emergency request")

	if _, err := s.profiles.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Attempted to reject by a non-existent doctor")
			return ErrDoctorNotFound
		}
		log.WithError(err).Error("Failed to get doctor profile")
		return fmt.Errorf("service: could not get doctor: %w", err)
	}

	rejection := &models.Rejection{
		RequestID: requestID,
		DoctorID:  doctorID,
		Reason:    strings.TrimSpace(reason),
		Status:    models.RejectionStatus,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rejections.RejectIfPending(ctx, rejection); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Warn("Attempted to reject a non-existent request")
			return ErrRequestNotFound
		case errors.Is(err, models.ErrStatusConflict):
			log.Warn("Attempted to reject a request that is no longer pending")
			return ErrNotPending
		case errors.Is(err, models.ErrUnknownDoctor):
			log.Warn("Doctor profile removed before rejection was saved")
			return ErrDoctorNotFound
		}
		log.WithError(err).Error("Failed to save rejection in repository")
		return fmt.Errorf("service: could not reject emergency request: %w", err)
	}

	s.metrics.Transition("reject")
	s.publish(ctx, log, models.DispatchEvent{
		EventID:   uuid.New(),
		EventType: models.EventEmergencyRejected,
		Timestamp: rejection.CreatedAt,
		RequestID: requestID,
		DoctorID:  &doctorID,
		Status:    models.StatusPending,
		Reason:    rejection.Reason,
	})

	log.Info("Emergency request rejected by doctor")
	return nil
}

// Complete переводит запрос из ACCEPTED в COMPLETED и сохраняет заметки
func (s *dispatchService) Complete(ctx context.Context, requestID uuid.UUID, notes string) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "Complete",
		"request_id": requestID,
	})
	log.Info("Attempting to complete emergency request")

	updated, err := s.emergencies.CompleteIfAccepted(ctx, requestID, notes)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Warn("Attempted to complete a non-existent request")
			return nil, ErrRequestNotFound
		case errors.Is(err, models.ErrStatusConflict):
			log.Warn("Attempted to complete a request that is not accepted")
			return nil, ErrNotAccepted
		}
		log.WithError(err).Error("Failed to complete emergency request in repository")
		return nil, fmt.Errorf("service: could not complete emergency request: %w", err)
	}

	s.metrics.Transition("complete")
	s.invalidate(ctx, log, requestID)
	s.publish(ctx, log, models.NewDispatchEvent(models.EventEmergencyCompleted, updated))

	log.Info("Emergency request completed")
	return updated, nil
}

// Cancel удаляет запрос, пока он в PENDING. Запрос в работе или завершенный отменить нельзя.
func (s *dispatchService) Cancel(ctx context.Context, requestID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "Cancel",
		"request_id": requestID,
	})
	log.Info("Attempting to cancel emergency request")

	deleted, err := s.emergencies.DeleteIfPending(ctx, requestID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Warn("Attempted to cancel a non-existent request")
			return ErrRequestNotFound
		case errors.Is(err, models.ErrStatusConflict):
			log.Warn("Attempted to cancel an in-progress or finished request")
			return ErrNotPending
		}
		log.WithError(err).Error("Failed to delete emergency request in repository")
		return fmt.Errorf("service: could not cancel emergency request: %w", err)
	}

	s.metrics.Transition("cancel")
	s.invalidate(ctx, log, requestID)
	s.publish(ctx, log, models.NewDispatchEvent(models.EventEmergencyCancelled, deleted))

	log.Info("Emergency request cancelled")
	return nil
}

// GetRequest получает запрос по ID, сначала из кеша завершенных запросов
func (s *dispatchService) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "GetRequest",
		"request_id": requestID,
	})

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, requestID)
		if err != nil {
			log.WithError(err).Warn("Failed to read emergency request from cache")
		} else if cached != nil {
			log.Debug("Emergency request served from cache")
			return cached, nil
		}
	}

	req, err := s.emergencies.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		log.WithError(err).Error("Failed to get emergency request in repository")
		return nil, fmt.Errorf("service: could not get emergency request: %w", err)
	}

	// Кешируются только завершенные запросы: переход, закоммиченный между чтением
	// из БД и записью в кеш, иначе оставил бы в кеше устаревшее состояние до TTL.
	if s.cache != nil && req.IsTerminal() {
		if err := s.cache.Set(ctx, req); err != nil {
			log.WithError(err).Warn("Failed to cache emergency request")
		}
	}
	return req, nil
}

// ListRejections возвращает журнал отказов по запросу. Для неизвестного запроса - ErrRequestNotFound.
func (s *dispatchService) ListRejections(ctx context.Context, requestID uuid.UUID) ([]*models.Rejection, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dispatch",
		"method":     "ListRejections",
		"request_id": requestID,
	})

	if _, err := s.emergencies.GetByRequestID(ctx, requestID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		log.WithError(err).Error("Failed to get emergency request in repository")
		return nil, fmt.Errorf("service: could not get emergency request: %w", err)
	}

	rejections, err := s.rejections.ListByRequest(ctx, requestID)
	if err != nil {
		log.WithError(err).Error("Failed to list rejections in repository")
		return nil, fmt.Errorf("service: could not list rejections: %w", err)
	}
	return rejections, nil
}

func (s *dispatchService) ListPatientRequests(ctx context.Context, patientID int64) ([]*models.EmergencyRequest, error) {
	requests, err := s.emergencies.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.WithError(err).WithField("patient_id", patientID).Error("Failed to list patient emergency requests")
		return nil, fmt.Errorf("service: could not list patient requests: %w", err)
	}
	return requests, nil
}

func (s *dispatchService) ListDoctorRequests(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	requests, err := s.emergencies.ListByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.WithError(err).WithField("doctor_id", doctorID).Error("Failed to list doctor emergency requests")
		return nil, fmt.Errorf("service: could not list doctor requests: %w", err)
	}
	return requests, nil
}

func (s *dispatchService) ListPending(ctx context.Context) ([]*models.EmergencyRequest, error) {
	requests, err := s.emergencies.ListPending(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list pending emergency requests")
		return nil, fmt.Errorf("service: could not list pending requests: %w", err)
	}
	return requests, nil
}

// ListPendingForDoctor - входящие врача: общий пул PENDING без запросов, от которых он отказался
func (s *dispatchService) ListPendingForDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	requests, err := s.emergencies.ListPendingForDoctor(ctx, doctorID)
	if err != nil {
		s.logger.WithError(err).WithField("doctor_id", doctorID).Error("Failed to list doctor inbox")
		return nil, fmt.Errorf("service: could not list pending requests for doctor: %w", err)
	}
	return requests, nil
}

// commitAccept - единственная точка входа в атомарный переход PENDING -> ACCEPTED.
// Используется и ручным принятием, и авто-назначением.
func (s *dispatchService) commitAccept(ctx context.Context, doctorID int64, requestID uuid.UUID, source string) (*models.EmergencyRequest, error) {
	updated, err := s.emergencies.AcceptIfPending(ctx, requestID, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			s.metrics.AcceptResult(metrics.AcceptNotFound, source)
			return nil, ErrRequestNotFound
		case errors.Is(err, models.ErrStatusConflict):
			s.metrics.AcceptResult(metrics.AcceptConflict, source)
			return nil, ErrNotPending
		case errors.Is(err, models.ErrDeclined):
			s.metrics.AcceptResult(metrics.AcceptDeclined, source)
			return nil, ErrAlreadyDeclined
		case errors.Is(err, models.ErrUnknownDoctor):
			s.metrics.AcceptResult(metrics.AcceptUnknownDoctor, source)
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("service: could not accept emergency request: %w", err)
	}

	s.metrics.AcceptResult(metrics.AcceptSucceeded, source)
	s.metrics.Transition("accept")
	s.invalidate(ctx, s.logger.WithField("request_id", requestID), requestID)
	s.publish(ctx, s.logger.WithField("request_id", requestID), models.NewDispatchEvent(models.EventEmergencyAssigned, updated))
	return updated, nil
}

// autoAssign пытается назначить кандидатов по порядку. Отказавшийся или удаленный врач
// пропускается, любой другой конфликт завершает попытку.
func (s *dispatchService) autoAssign(ctx context.Context, log *logrus.Entry, req *models.EmergencyRequest, candidates []models.Candidate, fallback bool) *models.EmergencyRequest {
	if len(candidates) == 0 {
		log.Warn("No available doctors found, emergency request left unassigned")
		s.metrics.DispatchOutcome(metrics.OutcomeUnassigned)
		s.publish(ctx, log, models.NewDispatchEvent(models.EventEmergencyUnassigned, req))
		return req
	}

	for _, c := range candidates {
		candidateLog := log.WithFields(logrus.Fields{
			"doctor_id":   c.DoctorID,
			"doctor_name": c.DoctorName,
			"distance_km": c.DistanceKm,
		})

		updated, err := s.commitAccept(ctx, c.DoctorID, req.RequestID, metrics.SourceAuto)
		switch {
		case err == nil:
			outcome := metrics.OutcomeAssigned
			if fallback {
				outcome = metrics.OutcomeAssignedFallback
			}
			s.metrics.DispatchOutcome(outcome)
			candidateLog.Info("Doctor auto-assigned to emergency request")
			return updated
		case errors.Is(err, ErrAlreadyDeclined):
			candidateLog.Debug("Candidate has declined this request, trying next")
			continue
		case errors.Is(err, ErrDoctorNotFound):
			candidateLog.Warn("Candidate profile no longer exists, trying next")
			continue
		case errors.Is(err, ErrNotPending), errors.Is(err, ErrRequestNotFound):
			candidateLog.WithError(err).Warn("Emergency request changed state during auto-assign")
			s.metrics.DispatchOutcome(metrics.OutcomePreempted)
			return s.reload(ctx, log, req)
		default:
			candidateLog.WithError(err).Error("Auto-assign failed, emergency request left pending")
			s.metrics.DispatchOutcome(metrics.OutcomeUnassigned)
			return req
		}
	}

	log.Warn("All candidates have declined, emergency request left unassigned")
	s.metrics.DispatchOutcome(metrics.OutcomeUnassigned)
	s.publish(ctx, log, models.NewDispatchEvent(models.EventEmergencyUnassigned, req))
	return req
}

// findCandidates ищет кандидатов по специализации, затем по "General"
func (s *dispatchService) findCandidates(ctx context.Context, log *logrus.Entry, origin geo.Point, specialization string) ([]models.Candidate, bool, error) {
	candidates, err := s.ranker.rank(ctx, origin, specialization)
	if err != nil {
		return nil, false, err
	}
	if len(candidates) > 0 || strings.EqualFold(specialization, classifier.DefaultSpecialization) {
		return candidates, false, nil
	}

	log.Warn("No doctors available for specialization, falling back to General")
	candidates, err = s.ranker.rank(ctx, origin, classifier.DefaultSpecialization)
	if err != nil {
		return nil, false, err
	}
	return candidates, len(candidates) > 0, nil
}

func (s *dispatchService) classify(ctx context.Context, log *logrus.Entry, symptoms string) string {
	result := s.classifier.Classify(ctx, symptoms)
	label := strings.TrimSpace(result.Specialization)
	if label == "" {
		label = classifier.DefaultSpecialization
	}
	if result.Fallback {
		log.WithField("reason", result.Reason).Warn("Classification degraded, routing as General")
	}
	return label
}

func (s *dispatchService) patientLocation(ctx context.Context, patientID int64) (*models.Patient, geo.Point, error) {
	patient, err := s.profiles.GetPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, geo.Point{}, ErrPatientNotFound
		}
		return nil, geo.Point{}, fmt.Errorf("service: could not get patient: %w", err)
	}

	origin, ok := patient.Location()
	if !ok {
		return nil, geo.Point{}, fmt.Errorf("%w: patient %d has no coordinates", ErrInvalidLocation, patientID)
	}
	if err := origin.Validate(); err != nil {
		return nil, geo.Point{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	return patient, origin, nil
}

func (s *dispatchService) reload(ctx context.Context, log *logrus.Entry, req *models.EmergencyRequest) *models.EmergencyRequest {
	current, err := s.emergencies.GetByRequestID(ctx, req.RequestID)
	if err != nil {
		log.WithError(err).Warn("Failed to reload emergency request after conflict")
		return req
	}
	return current
}

func (s *dispatchService) invalidate(ctx context.Context, log *logrus.Entry, requestID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, requestID); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency request cache")
	}
}

func (s *dispatchService) publish(ctx context.Context, log *logrus.Entry, event models.DispatchEvent) {
	for _, p := range s.publishers {
		if err := p.Publish(ctx, event); err != nil {
			log.WithError(err).WithField("event_type", event.EventType).Warn("Failed to publish dispatch event")
		}
	}
}

func isGuardError(err error) bool {
	return errors.Is(err, ErrNotPending) || errors.Is(err, ErrAlreadyDeclined) ||
		errors.Is(err, ErrRequestNotFound) || errors.Is(err, ErrDoctorNotFound)
}
