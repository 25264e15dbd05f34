package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEmergencyRequest DTO для создания экстренного запроса
// @Description DTO для создания экстренного запроса
type CreateEmergencyRequest struct {
	PatientID    int64  `json:"patient_id" validate:"required,gt=0"`
	Symptoms     string `json:"symptoms" validate:"required,min=2,max=2000"`
	UrgencyLevel string `json:"urgency_level" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Location     string `json:"location" validate:"max=255"`
	Notes        string `json:"notes,omitempty" validate:"max=4000"`
}

// CompleteEmergencyRequest DTO для завершения запроса
// @Description DTO для завершения запроса
type CompleteEmergencyRequest struct {
	Notes string `json:"notes" validate:"max=4000"`
}

// RejectEmergencyRequest DTO для отказа врача
// @Description DTO для отказа врача
type RejectEmergencyRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// UpdateAvailabilityRequest DTO для обновления доступности врача.
// Координаты передаются парой или не передаются вовсе.
// @Description DTO для обновления доступности врача
type UpdateAvailabilityRequest struct {
	IsAvailable *bool    `json:"is_available" validate:"required"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// EmergencyResponse DTO для ответа с экстренным запросом
// @Description DTO для ответа с экстренным запросом
type EmergencyResponse struct {
	RequestID      uuid.UUID  `json:"request_id"`
	PatientID      int64      `json:"patient_id"`
	PatientName    string     `json:"patient_name"`
	PatientPhone   string     `json:"patient_phone"`
	Symptoms       string     `json:"symptoms"`
	UrgencyLevel   string     `json:"urgency_level"`
	Location       string     `json:"location"`
	Specialization string     `json:"specialization"`
	Status         string     `json:"status"`
	DoctorID       *int64     `json:"doctor_id,omitempty"`
	DoctorName     string     `json:"doctor_name,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Version        int64      `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// DoctorAvailabilityResponse DTO для доступного врача. DistanceKm заполняется при поиске от точки.
// @Description DTO для доступного врача
type DoctorAvailabilityResponse struct {
	DoctorID       int64      `json:"doctor_id"`
	DoctorName     string     `json:"doctor_name"`
	Specialization string     `json:"specialization"`
	IsAvailable    bool       `json:"is_available"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	DistanceKm     *float64   `json:"distance_km,omitempty"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
}

// AvailabilityStatusResponse DTO для флага доступности
// @Description DTO для флага доступности
type AvailabilityStatusResponse struct {
	DoctorID    int64 `json:"doctor_id"`
	IsAvailable bool  `json:"is_available"`
}

// RejectionResponse DTO для записи журнала отказов
// @Description DTO для записи журнала отказов
type RejectionResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	DoctorID  int64     `json:"doctor_id"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalRequests            int64   `json:"total_requests"`
	PendingRequests          int64   `json:"pending_requests"`
	AcceptedRequests         int64   `json:"accepted_requests"`
	CompletedRequests        int64   `json:"completed_requests"`
	AverageResolutionMinutes float64 `json:"average_resolution_minutes"`
	RecentRequests           int64   `json:"recent_requests"`
	WindowMinutes            int     `json:"window_minutes"`
}
