package models

import (
	"time"

	"github.com/google/uuid"
)

const RejectionStatus = "REJECTED"

// Rejection - отказ конкретного врача от конкретного запроса.
// Не меняет глобальное состояние запроса.
type Rejection struct {
	RequestID uuid.UUID `json:"request_id"`
	DoctorID  int64     `json:"doctor_id"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
