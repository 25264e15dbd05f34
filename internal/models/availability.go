package models

import (
	"time"

	"github.com/shenikar/emergency_dispatch/internal/geo"
)

// DoctorAvailability - доступность врача и его последнее известное местоположение.
// Имя и специализация подтягиваются из профиля врача.
type DoctorAvailability struct {
	DoctorID       int64     `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	IsAvailable    bool      `json:"is_available"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	LastUpdated    time.Time `json:"last_updated"`
}

// Location возвращает местоположение врача, если обе координаты известны
func (a *DoctorAvailability) Location() (geo.Point, bool) {
	return geo.FromNullable(a.Latitude, a.Longitude)
}

// Candidate - врач, прошедший фильтрацию и ранжирование для конкретного запроса
type Candidate struct {
	DoctorID       int64     `json:"doctor_id"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	Location       geo.Point `json:"location"`
	DistanceKm     float64   `json:"distance_km"`
}
