package service

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/classifier"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

// EmergencyRepository определяет контракт хранилища экстренных запросов.
// Методы переходов состояния атомарны: проверка условия и запись выполняются одной операцией.
type EmergencyRepository interface {
	Create(ctx context.Context, req *models.EmergencyRequest) error
	GetByRequestID(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*models.EmergencyRequest, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error)
	ListPending(ctx context.Context) ([]*models.EmergencyRequest, error)
	ListPendingForDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error)
	// AcceptIfPending назначает врача, если запрос в PENDING и врач от него не отказывался.
	// Возвращает models.ErrNotFound, models.ErrStatusConflict, models.ErrDeclined
	// или models.ErrUnknownDoctor, если профиля врача нет.
	AcceptIfPending(ctx context.Context, id uuid.UUID, doctorID int64) (*models.EmergencyRequest, error)
	// CompleteIfAccepted завершает запрос в ACCEPTED. Возвращает models.ErrNotFound или models.ErrStatusConflict.
	CompleteIfAccepted(ctx context.Context, id uuid.UUID, notes string) (*models.EmergencyRequest, error)
	// DeleteIfPending удаляет запрос в PENDING. Возвращает models.ErrNotFound или models.ErrStatusConflict.
	DeleteIfPending(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error)
	Stats(ctx context.Context, since time.Time) (*models.EmergencyStats, error)
}

// RejectionRepository - журнал отказов врачей
type RejectionRepository interface {
	// RejectIfPending записывает отказ, если запрос в PENDING. Повторный отказ - no-op.
	// Возвращает models.ErrNotFound, models.ErrStatusConflict или models.ErrUnknownDoctor.
	RejectIfPending(ctx context.Context, rejection *models.Rejection) error
	// ListByRequest возвращает отказы в порядке записи
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*models.Rejection, error)
}

// AvailabilityRepository - справочник доступности врачей
type AvailabilityRepository interface {
	// Upsert создает или обновляет строку доступности. Nil-координаты сохраняют прежние значения.
	// Возвращает models.ErrNotFound, если врача нет в профилях.
	Upsert(ctx context.Context, availability *models.DoctorAvailability) error
	GetByDoctorID(ctx context.Context, doctorID int64) (*models.DoctorAvailability, error)
	ListAvailable(ctx context.Context) ([]*models.DoctorAvailability, error)
	// ListAvailableBySpecialization сравнивает специализацию без учета регистра
	ListAvailableBySpecialization(ctx context.Context, specialization string) ([]*models.DoctorAvailability, error)
}

// ProfileRepository - чтение профилей пациентов и врачей, которыми владеет сервис профилей
type ProfileRepository interface {
	GetPatient(ctx context.Context, id int64) (*models.Patient, error)
	GetDoctor(ctx context.Context, id int64) (*models.Doctor, error)
}

// RequestCache - кеш карточек запросов для чтения. Промах возвращает (nil, nil).
type RequestCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error)
	Set(ctx context.Context, req *models.EmergencyRequest) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// Classifier определяет специализацию по симптомам и никогда не возвращает ошибку
type Classifier interface {
	Classify(ctx context.Context, symptoms string) classifier.Result
}

// EventPublisher публикует события жизненного цикла запроса
type EventPublisher interface {
	Publish(ctx context.Context, event models.DispatchEvent) error
}

// MetricsRecorder - метрики диспетчеризации
type MetricsRecorder interface {
	DispatchOutcome(outcome string)
	AcceptResult(result, source string)
	Transition(transition string)
	CandidateSkipped(reason string)
}

// DispatchService определяет контракт движка диспетчеризации
type DispatchService interface {
	CreateAndAssign(ctx context.Context, input models.CreateEmergencyInput) (*models.EmergencyRequest, error)
	Accept(ctx context.Context, doctorID int64, requestID uuid.UUID) (*models.EmergencyRequest, error)
	Reject(ctx context.Context, doctorID int64, requestID uuid.UUID, reason string) error
	Complete(ctx context.Context, requestID uuid.UUID, notes string) (*models.EmergencyRequest, error)
	Cancel(ctx context.Context, requestID uuid.UUID) error
	Redispatch(ctx context.Context, requestID uuid.UUID) (*models.EmergencyRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.EmergencyRequest, error)
	ListRejections(ctx context.Context, requestID uuid.UUID) ([]*models.Rejection, error)
	ListPatientRequests(ctx context.Context, patientID int64) ([]*models.EmergencyRequest, error)
	ListDoctorRequests(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error)
	ListPending(ctx context.Context) ([]*models.EmergencyRequest, error)
	ListPendingForDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error)
}

// AvailabilityService определяет контракт справочника доступности
type AvailabilityService interface {
	ListAvailableDoctors(ctx context.Context) ([]*models.DoctorAvailability, error)
	RankAvailableDoctors(ctx context.Context, origin geo.Point, specialization string) ([]models.Candidate, error)
	GetAvailability(ctx context.Context, doctorID int64) (bool, error)
	UpdateAvailability(ctx context.Context, doctorID int64, isAvailable bool, location *geo.Point) (*models.DoctorAvailability, error)
}

// StatsService - агрегаты по запросам
type StatsService interface {
	GetStats(ctx context.Context) (*models.EmergencyStats, error)
}
