package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий диспетчеризации, они же routing key в RabbitMQ
const (
	EventEmergencyCreated    = "emergency.created"
	EventEmergencyAssigned   = "emergency.assigned"
	EventEmergencyUnassigned = "emergency.unassigned"
	EventEmergencyRejected   = "emergency.rejected"
	EventEmergencyCompleted  = "emergency.completed"
	EventEmergencyCancelled  = "emergency.cancelled"
)

// DispatchEvent - событие жизненного цикла экстренного запроса для внешних интеграций
type DispatchEvent struct {
	EventID        uuid.UUID       `json:"event_id"`
	EventType      string          `json:"event_type"`
	Timestamp      time.Time       `json:"timestamp"`
	RequestID      uuid.UUID       `json:"request_id"`
	PatientID      int64           `json:"patient_id"`
	DoctorID       *int64          `json:"doctor_id,omitempty"`
	Status         EmergencyStatus `json:"status,omitempty"`
	UrgencyLevel   UrgencyLevel    `json:"urgency_level,omitempty"`
	Specialization string          `json:"specialization,omitempty"`
	Reason         string          `json:"reason,omitempty"`
}

// NewDispatchEvent создает событие по текущему состоянию запроса
func NewDispatchEvent(eventType string, req *EmergencyRequest) DispatchEvent {
	return DispatchEvent{
		EventID:        uuid.New(),
		EventType:      eventType,
		Timestamp:      time.Now().UTC(),
		RequestID:      req.RequestID,
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		Status:         req.Status,
		UrgencyLevel:   req.UrgencyLevel,
		Specialization: req.Specialization,
	}
}
