package models

import (
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/geo"
)

// Patient - профиль пациента, принадлежит сервису профилей (только чтение)
type Patient struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Latitude  *float64
	Longitude *float64
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Patient) Location() (geo.Point, bool) {
	return geo.FromNullable(p.Latitude, p.Longitude)
}

// Doctor - профиль врача, принадлежит сервису профилей (только чтение)
type Doctor struct {
	ID             int64
	FirstName      string
	LastName       string
	Specialization string
	Latitude       *float64
	Longitude      *float64
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
