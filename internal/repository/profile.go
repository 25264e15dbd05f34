package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

// ProfileRepository читает таблицы patients и doctors, которыми владеет сервис профилей
type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetPatient(ctx context.Context, id int64) (*models.Patient, error) {
	query := `
		SELECT id, first_name, last_name, phone, latitude, longitude
		FROM patients
		WHERE id = $1;
	`
	p := &models.Patient{}
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.Latitude, &p.Longitude)
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient by id: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) GetDoctor(ctx context.Context, id int64) (*models.Doctor, error) {
	query := `
		SELECT id, first_name, last_name, specialization, latitude, longitude
		FROM doctors
		WHERE id = $1;
	`
	d := &models.Doctor{}
	err := r.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization, &d.Latitude, &d.Longitude)
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor by id: %w", err)
	}
	return d, nil
}
