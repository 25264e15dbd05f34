package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

const availabilityColumns = `
	da.doctor_id,
	TRIM(CONCAT(d.first_name, ' ', d.last_name)) AS doctor_name,
	d.specialization,
	da.is_available,
	da.latitude,
	da.longitude,
	da.last_updated
`

type AvailabilityRepository struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) service.AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert создает или обновляет строку доступности. NULL-координаты не затирают сохраненные.
func (r *AvailabilityRepository) Upsert(ctx context.Context, availability *models.DoctorAvailability) error {
	query := `
		INSERT INTO doctor_availability (doctor_id, is_available, latitude, longitude, last_updated)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (doctor_id) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			latitude = COALESCE(EXCLUDED.latitude, doctor_availability.latitude),
			longitude = COALESCE(EXCLUDED.longitude, doctor_availability.longitude),
			last_updated = NOW()
		RETURNING last_updated;
	`
	err := r.db.QueryRow(ctx, query,
		availability.DoctorID,
		availability.IsAvailable,
		availability.Latitude,
		availability.Longitude,
	).Scan(&availability.LastUpdated)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("doctor %d: %w", availability.DoctorID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to upsert doctor availability: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) GetByDoctorID(ctx context.Context, doctorID int64) (*models.DoctorAvailability, error) {
	query := `SELECT` + availabilityColumns + `
		FROM doctor_availability da
		JOIN doctors d ON d.id = da.doctor_id
		WHERE da.doctor_id = $1;
	`
	availability, err := scanAvailability(r.db.QueryRow(ctx, query, doctorID))
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor availability: %w", err)
	}
	return availability, nil
}

func (r *AvailabilityRepository) ListAvailable(ctx context.Context) ([]*models.DoctorAvailability, error) {
	query := `SELECT` + availabilityColumns + `
		FROM doctor_availability da
		JOIN doctors d ON d.id = da.doctor_id
		WHERE da.is_available
		ORDER BY da.doctor_id;
	`
	return r.list(ctx, query)
}

// ListAvailableBySpecialization сравнивает специализацию без учета регистра
func (r *AvailabilityRepository) ListAvailableBySpecialization(ctx context.Context, specialization string) ([]*models.DoctorAvailability, error) {
	query := `SELECT` + availabilityColumns + `
		FROM doctor_availability da
		JOIN doctors d ON d.id = da.doctor_id
		WHERE da.is_available AND LOWER(d.specialization) = LOWER($1)
		ORDER BY da.doctor_id;
	`
	return r.list(ctx, query, specialization)
}

func (r *AvailabilityRepository) list(ctx context.Context, query string, args ...any) ([]*models.DoctorAvailability, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list available doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]*models.DoctorAvailability, 0)
	for rows.Next() {
		availability, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor availability row: %w", err)
		}
		doctors = append(doctors, availability)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return doctors, nil
}

func scanAvailability(row pgx.Row) (*models.DoctorAvailability, error) {
	a := &models.DoctorAvailability{}
	err := row.Scan(
		&a.DoctorID,
		&a.DoctorName,
		&a.Specialization,
		&a.IsAvailable,
		&a.Latitude,
		&a.Longitude,
		&a.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
