// Package memory - хранилище в памяти с теми же гарантиями атомарности переходов,
// что и Postgres-репозитории. Используется в тестах движка диспетчеризации.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"gonum.org/v1/gonum/stat"
)

type Store struct {
	mu           sync.Mutex
	requests     map[uuid.UUID]*models.EmergencyRequest
	rejections   map[uuid.UUID]map[int64]*models.Rejection
	availability map[int64]*models.DoctorAvailability
	patients     map[int64]*models.Patient
	doctors      map[int64]*models.Doctor
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		requests:     make(map[uuid.UUID]*models.EmergencyRequest),
		rejections:   make(map[uuid.UUID]map[int64]*models.Rejection),
		availability: make(map[int64]*models.DoctorAvailability),
		patients:     make(map[int64]*models.Patient),
		doctors:      make(map[int64]*models.Doctor),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SetClock подменяет источник времени
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) AddPatient(p models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = &p
}

func (s *Store) AddDoctor(d models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = &d
}

// --- профили ---

func (s *Store) GetPatient(_ context.Context, id int64) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) GetDoctor(_ context.Context, id int64) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doctors[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

// --- экстренные запросы ---

func (s *Store) Create(_ context.Context, req *models.EmergencyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	req.CreatedAt = now
	req.UpdatedAt = now
	req.Version = 1
	s.requests[req.RequestID] = cloneRequest(req)
	return nil
}

func (s *Store) GetByRequestID(_ context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cloneRequest(req), nil
}

func (s *Store) ListByPatient(_ context.Context, patientID int64) ([]*models.EmergencyRequest, error) {
	return s.list(func(r *models.EmergencyRequest) bool { return r.PatientID == patientID }), nil
}

func (s *Store) ListByDoctor(_ context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	return s.list(func(r *models.EmergencyRequest) bool {
		return r.DoctorID != nil && *r.DoctorID == doctorID
	}), nil
}

func (s *Store) ListPending(_ context.Context) ([]*models.EmergencyRequest, error) {
	return s.list(func(r *models.EmergencyRequest) bool { return r.Status == models.StatusPending }), nil
}

// ListPendingForDoctor не возвращает запросы, от которых врач отказался.
// Вызывается под s.mu через list, поэтому rejections читается без дополнительной блокировки.
func (s *Store) ListPendingForDoctor(_ context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	return s.list(func(r *models.EmergencyRequest) bool {
		if r.Status != models.StatusPending {
			return false
		}
		_, declined := s.rejections[r.RequestID][doctorID]
		return !declined
	}), nil
}

func (s *Store) AcceptIfPending(_ context.Context, id uuid.UUID, doctorID int64) (*models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if req.Status != models.StatusPending {
		return nil, models.ErrStatusConflict
	}
	if _, declined := s.rejections[id][doctorID]; declined {
		return nil, models.ErrDeclined
	}
	doctor, ok := s.doctors[doctorID]
	if !ok {
		return nil, models.ErrUnknownDoctor
	}

	req.Status = models.StatusAccepted
	req.DoctorID = &doctorID
	req.DoctorName = doctor.FullName()
	req.Version++
	req.UpdatedAt = s.now()
	return cloneRequest(req), nil
}

func (s *Store) CompleteIfAccepted(_ context.Context, id uuid.UUID, notes string) (*models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if req.Status != models.StatusAccepted {
		return nil, models.ErrStatusConflict
	}

	now := s.now()
	req.Status = models.StatusCompleted
	req.Notes = notes
	req.Version++
	req.UpdatedAt = now
	req.ResolvedAt = &now
	return cloneRequest(req), nil
}

func (s *Store) DeleteIfPending(_ context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if req.Status != models.StatusPending {
		return nil, models.ErrStatusConflict
	}
	delete(s.requests, id)
	delete(s.rejections, id)
	return cloneRequest(req), nil
}

func (s *Store) Stats(_ context.Context, since time.Time) (*models.EmergencyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.EmergencyStats{}
	var durations []float64
	for _, r := range s.requests {
		stats.TotalRequests++
		switch r.Status {
		case models.StatusPending:
			stats.PendingRequests++
		case models.StatusAccepted:
			stats.AcceptedRequests++
		case models.StatusCompleted:
			stats.CompletedRequests++
			if r.ResolvedAt != nil {
				durations = append(durations, r.ResolvedAt.Sub(r.CreatedAt).Minutes())
			}
		}
		if !r.CreatedAt.Before(since) {
			stats.RecentRequests++
		}
	}
	if len(durations) > 0 {
		stats.AverageResolutionMinutes = stat.Mean(durations, nil)
	}
	return stats, nil
}

// --- отказы ---

func (s *Store) RejectIfPending(_ context.Context, rejection *models.Rejection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[rejection.RequestID]
	if !ok {
		return models.ErrNotFound
	}
	if req.Status != models.StatusPending {
		return models.ErrStatusConflict
	}

	byDoctor, ok := s.rejections[rejection.RequestID]
	if !ok {
		byDoctor = make(map[int64]*models.Rejection)
		s.rejections[rejection.RequestID] = byDoctor
	}
	if _, exists := byDoctor[rejection.DoctorID]; exists {
		return nil
	}
	cp := *rejection
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = s.now()
	}
	byDoctor[rejection.DoctorID] = &cp
	return nil
}

func (s *Store) ListByRequest(_ context.Context, requestID uuid.UUID) ([]*models.Rejection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Rejection, 0, len(s.rejections[requestID]))
	for _, r := range s.rejections[requestID] {
		cp := *r
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *models.Rejection) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

// --- доступность ---

func (s *Store) Upsert(_ context.Context, availability *models.DoctorAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[availability.DoctorID]; !ok {
		return models.ErrNotFound
	}

	row, ok := s.availability[availability.DoctorID]
	if !ok {
		row = &models.DoctorAvailability{DoctorID: availability.DoctorID}
		s.availability[availability.DoctorID] = row
	}
	row.IsAvailable = availability.IsAvailable
	if availability.Latitude != nil && availability.Longitude != nil {
		lat, lng := *availability.Latitude, *availability.Longitude
		row.Latitude = &lat
		row.Longitude = &lng
	}
	row.LastUpdated = s.now()
	return nil
}

func (s *Store) GetByDoctorID(_ context.Context, doctorID int64) (*models.DoctorAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.availability[doctorID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return s.joinDoctor(row), nil
}

func (s *Store) ListAvailable(_ context.Context) ([]*models.DoctorAvailability, error) {
	return s.listAvailable(""), nil
}

func (s *Store) ListAvailableBySpecialization(_ context.Context, specialization string) ([]*models.DoctorAvailability, error) {
	return s.listAvailable(specialization), nil
}

func (s *Store) listAvailable(specialization string) []*models.DoctorAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.DoctorAvailability, 0)
	for _, row := range s.availability {
		if !row.IsAvailable {
			continue
		}
		joined := s.joinDoctor(row)
		if specialization != "" && !strings.EqualFold(joined.Specialization, specialization) {
			continue
		}
		out = append(out, joined)
	}
	slices.SortFunc(out, func(a, b *models.DoctorAvailability) int {
		switch {
		case a.DoctorID < b.DoctorID:
			return -1
		case a.DoctorID > b.DoctorID:
			return 1
		}
		return 0
	})
	return out
}

func (s *Store) joinDoctor(row *models.DoctorAvailability) *models.DoctorAvailability {
	cp := *row
	if row.Latitude != nil {
		lat := *row.Latitude
		cp.Latitude = &lat
	}
	if row.Longitude != nil {
		lng := *row.Longitude
		cp.Longitude = &lng
	}
	if d, ok := s.doctors[row.DoctorID]; ok {
		cp.DoctorName = d.FullName()
		cp.Specialization = d.Specialization
	}
	return &cp
}

func (s *Store) list(match func(*models.EmergencyRequest) bool) []*models.EmergencyRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.EmergencyRequest, 0)
	for _, r := range s.requests {
		if match(r) {
			out = append(out, cloneRequest(r))
		}
	}
	// новые сверху
	slices.SortFunc(out, func(a, b *models.EmergencyRequest) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func cloneRequest(r *models.EmergencyRequest) *models.EmergencyRequest {
	cp := *r
	if r.DoctorID != nil {
		id := *r.DoctorID
		cp.DoctorID = &id
	}
	if r.ResolvedAt != nil {
		t := *r.ResolvedAt
		cp.ResolvedAt = &t
	}
	return &cp
}
