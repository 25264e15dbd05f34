package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

// requestColumns ожидает алиасы er (emergency_requests) и d (doctors)
const requestColumns = `
	er.request_id,
	er.patient_id,
	er.patient_name,
	er.patient_phone,
	er.symptoms,
	er.urgency_level,
	er.location,
	er.specialization,
	er.status,
	er.doctor_id,
	TRIM(CONCAT(d.first_name, ' ', d.last_name)) AS doctor_name,
	er.notes,
	er.version,
	er.created_at,
	er.updated_at,
	er.resolved_at
`

type EmergencyRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyRepository(db *pgxpool.Pool) service.EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create сохраняет новый запрос в статусе PENDING
func (r *EmergencyRepository) Create(ctx context.Context, req *models.EmergencyRequest) error {
	query := `
		INSERT INTO emergency_requests (
			request_id, patient_id, patient_name, patient_phone, symptoms,
			urgency_level, location, specialization, status, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING version, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		req.RequestID,
		req.PatientID,
		req.PatientName,
		req.PatientPhone,
		req.Symptoms,
		req.UrgencyLevel,
		req.Location,
		req.Specialization,
		models.StatusPending,
		req.Notes,
	).Scan(&req.Version, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("patient %d: %w", req.PatientID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to create emergency request: %w", err)
	}
	req.Status = models.StatusPending
	return nil
}

func (r *EmergencyRepository) GetByRequestID(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests er
		LEFT JOIN doctors d ON d.id = er.doctor_id
		WHERE er.request_id = $1;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get emergency request by id: %w", err)
	}
	return req, nil
}

func (r *EmergencyRepository) ListByPatient(ctx context.Context, patientID int64) ([]*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests er
		LEFT JOIN doctors d ON d.id = er.doctor_id
		WHERE er.patient_id = $1
		ORDER BY er.created_at DESC;
	`
	return r.list(ctx, "ListByPatient", query, patientID)
}

func (r *EmergencyRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests er
		LEFT JOIN doctors d ON d.id = er.doctor_id
		WHERE er.doctor_id = $1
		ORDER BY er.created_at DESC;
	`
	return r.list(ctx, "ListByDoctor", query, doctorID)
}

func (r *EmergencyRepository) ListPending(ctx context.Context) ([]*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests er
		LEFT JOIN doctors d ON d.id = er.doctor_id
		WHERE er.status = 'PENDING'
		ORDER BY er.created_at DESC;
	`
	return r.list(ctx, "ListPending", query)
}

// ListPendingForDoctor - общий пул PENDING без запросов, от которых врач отказался
func (r *EmergencyRepository) ListPendingForDoctor(ctx context.Context, doctorID int64) ([]*models.EmergencyRequest, error) {
	query := `SELECT` + requestColumns + `
		FROM emergency_requests er
		LEFT JOIN doctors d ON d.id = er.doctor_id
		WHERE er.status = 'PENDING'
			AND NOT EXISTS (
				SELECT 1 FROM emergency_rejections rj
				WHERE rj.request_id = er.request_id AND rj.doctor_id = $1
			)
		ORDER BY er.created_at DESC;
	`
	return r.list(ctx, "ListPendingForDoctor", query, doctorID)
}

// AcceptIfPending - атомарный переход PENDING -> ACCEPTED одним условным UPDATE.
// Конкурентные вызовы сериализуются блокировкой строки, после чего условие перепроверяется.
func (r *EmergencyRepository) AcceptIfPending(ctx context.Context, id uuid.UUID, doctorID int64) (*models.EmergencyRequest, error) {
	query := `
		WITH er AS (
			UPDATE emergency_requests req SET
				status = 'ACCEPTED',
				doctor_id = $2,
				version = req.version + 1,
				updated_at = NOW()
			WHERE req.request_id = $1
				AND req.status = 'PENDING'
				AND NOT EXISTS (
					SELECT 1 FROM emergency_rejections rj
					WHERE rj.request_id = req.request_id AND rj.doctor_id = $2
				)
			RETURNING req.*
		)
		SELECT` + requestColumns + `
		FROM er
		LEFT JOIN doctors d ON d.id = er.doctor_id;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id, doctorID))
	if err == nil {
		return req, nil
	}
	if isForeignKeyViolation(err) {
		return nil, fmt.Errorf("doctor %d: %w", doctorID, models.ErrUnknownDoctor)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to accept emergency request: %w", err)
	}
	return nil, r.explainAcceptMiss(ctx, id, doctorID)
}

// explainAcceptMiss определяет, почему условный UPDATE не затронул строк
func (r *EmergencyRepository) explainAcceptMiss(ctx context.Context, id uuid.UUID, doctorID int64) error {
	query := `
		SELECT
			er.status,
			EXISTS (
				SELECT 1 FROM emergency_rejections rj
				WHERE rj.request_id = er.request_id AND rj.doctor_id = $2
			)
		FROM emergency_requests er
		WHERE er.request_id = $1;
	`
	var (
		status   models.EmergencyStatus
		declined bool
	)
	if err := r.db.QueryRow(ctx, query, id, doctorID).Scan(&status, &declined); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to inspect emergency request: %w", err)
	}
	if status == models.StatusPending && declined {
		return models.ErrDeclined
	}
	return models.ErrStatusConflict
}

// CompleteIfAccepted - атомарный переход ACCEPTED -> COMPLETED
func (r *EmergencyRepository) CompleteIfAccepted(ctx context.Context, id uuid.UUID, notes string) (*models.EmergencyRequest, error) {
	query := `
		WITH er AS (
			UPDATE emergency_requests req SET
				status = 'COMPLETED',
				notes = $2,
				version = req.version + 1,
				updated_at = NOW(),
				resolved_at = NOW()
			WHERE req.request_id = $1 AND req.status = 'ACCEPTED'
			RETURNING req.*
		)
		SELECT` + requestColumns + `
		FROM er
		LEFT JOIN doctors d ON d.id = er.doctor_id;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id, notes))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to complete emergency request: %w", err)
	}
	return nil, r.missReason(ctx, id)
}

// DeleteIfPending удаляет запрос в PENDING, отказы удаляются каскадно
func (r *EmergencyRepository) DeleteIfPending(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	query := `
		WITH er AS (
			DELETE FROM emergency_requests req
			WHERE req.request_id = $1 AND req.status = 'PENDING'
			RETURNING req.*
		)
		SELECT` + requestColumns + `
		FROM er
		LEFT JOIN doctors d ON d.id = er.doctor_id;
	`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to delete emergency request: %w", err)
	}
	return nil, r.missReason(ctx, id)
}

// missReason различает отсутствующий запрос и запрос в неподходящем статусе
func (r *EmergencyRepository) missReason(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM emergency_requests WHERE request_id = $1);`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to inspect emergency request: %w", err)
	}
	if !exists {
		return models.ErrNotFound
	}
	return models.ErrStatusConflict
}

// Stats считает агрегаты одним запросом. Среднее время решения в минутах, 0 если завершенных нет.
func (r *EmergencyRepository) Stats(ctx context.Context, since time.Time) (*models.EmergencyStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'ACCEPTED'),
			COUNT(*) FILTER (WHERE status = 'COMPLETED'),
			COALESCE(
				AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 60.0)
					FILTER (WHERE status = 'COMPLETED' AND resolved_at IS NOT NULL),
				0
			)::float8,
			COUNT(*) FILTER (WHERE created_at >= $1)
		FROM emergency_requests;
	`
	stats := &models.EmergencyStats{}
	err := r.db.QueryRow(ctx, query, since).Scan(
		&stats.TotalRequests,
		&stats.PendingRequests,
		&stats.AcceptedRequests,
		&stats.CompletedRequests,
		&stats.AverageResolutionMinutes,
		&stats.RecentRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get emergency stats: %w", err)
	}
	return stats, nil
}

func (r *EmergencyRepository) list(ctx context.Context, method, query string, args ...any) ([]*models.EmergencyRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency requests in %s: %w", method, err)
	}
	defer rows.Close()

	requests := make([]*models.EmergencyRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency request row in %s: %w", method, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", method, err)
	}
	return requests, nil
}

func scanRequest(row pgx.Row) (*models.EmergencyRequest, error) {
	req := &models.EmergencyRequest{}
	err := row.Scan(
		&req.RequestID,
		&req.PatientID,
		&req.PatientName,
		&req.PatientPhone,
		&req.Symptoms,
		&req.UrgencyLevel,
		&req.Location,
		&req.Specialization,
		&req.Status,
		&req.DoctorID,
		&req.DoctorName,
		&req.Notes,
		&req.Version,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}
