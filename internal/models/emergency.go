package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyStatus - состояние экстренного запроса
type EmergencyStatus string

const (
	StatusPending   EmergencyStatus = "PENDING"
	StatusAccepted  EmergencyStatus = "ACCEPTED"
	StatusCompleted EmergencyStatus = "COMPLETED"
)

// UrgencyLevel - уровень срочности запроса. Используется для отображения, не для ранжирования.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "LOW"
	UrgencyMedium   UrgencyLevel = "MEDIUM"
	UrgencyHigh     UrgencyLevel = "HIGH"
	UrgencyCritical UrgencyLevel = "CRITICAL"
)

// Valid сообщает, является ли значение известным уровнем срочности
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// EmergencyRequest - экстренный запрос пациента
type EmergencyRequest struct {
	RequestID      uuid.UUID       `json:"request_id"`
	PatientID      int64           `json:"patient_id"`
	PatientName    string          `json:"patient_name"`
	PatientPhone   string          `json:"patient_phone"`
	Symptoms       string          `json:"symptoms"`
	UrgencyLevel   UrgencyLevel    `json:"urgency_level"`
	Location       string          `json:"location"`
	Specialization string          `json:"specialization"`
	Status         EmergencyStatus `json:"status"`
	DoctorID       *int64          `json:"doctor_id,omitempty"`
	DoctorName     string          `json:"doctor_name,omitempty"`
	Notes          string          `json:"notes"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	ResolvedAt     *time.Time      `json:"resolved_at,omitempty"`
}

// IsTerminal сообщает, что запрос больше не может изменить состояние
func (r *EmergencyRequest) IsTerminal() bool {
	return r.Status == StatusCompleted
}

// CreateEmergencyInput - входные данные для создания запроса
type CreateEmergencyInput struct {
	PatientID    int64
	Symptoms     string
	UrgencyLevel UrgencyLevel
	Location     string
	Notes        string
}
