package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

type RejectionRepository struct {
	db *pgxpool.Pool
}

func NewRejectionRepository(db *pgxpool.Pool) service.RejectionRepository {
	return &RejectionRepository{db: db}
}

// RejectIfPending вставляет отказ только пока запрос в PENDING. Повторный отказ того же врача поглощается.
// Строка запроса блокируется FOR SHARE, поэтому конкурентный Accept либо ждет вставки,
// либо уже закоммичен и отказ не пишется.
func (r *RejectionRepository) RejectIfPending(ctx context.Context, rejection *models.Rejection) error {
	if rejection.CreatedAt.IsZero() {
		rejection.CreatedAt = time.Now().UTC()
	}
	if rejection.Status == "" {
		rejection.Status = models.RejectionStatus
	}

	query := `
		WITH target AS (
			SELECT request_id FROM emergency_requests
			WHERE request_id = $1::uuid AND status = 'PENDING'
			FOR SHARE
		)
		INSERT INTO emergency_rejections (request_id, doctor_id, reason, status, created_at)
		SELECT target.request_id, $2::bigint, $3::text, $4::varchar, $5::timestamptz
		FROM target
		ON CONFLICT (request_id, doctor_id) DO NOTHING;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		rejection.RequestID,
		rejection.DoctorID,
		rejection.Reason,
		rejection.Status,
		rejection.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("doctor %d: %w", rejection.DoctorID, models.ErrUnknownDoctor)
		}
		return fmt.Errorf("failed to save rejection: %w", err)
	}
	if cmdTag.RowsAffected() == 1 {
		return nil
	}

	// Ноль строк: либо дубликат, либо запрос не в PENDING или отсутствует
	var status models.EmergencyStatus
	err = r.db.QueryRow(ctx, `SELECT status FROM emergency_requests WHERE request_id = $1;`, rejection.RequestID).Scan(&status)
	if err != nil {
		if isNoRows(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to inspect emergency request: %w", err)
	}
	if status != models.StatusPending {
		return models.ErrStatusConflict
	}
	return nil
}

func (r *RejectionRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*models.Rejection, error) {
	query := `
		SELECT request_id, doctor_id, reason, status, created_at
		FROM emergency_rejections
		WHERE request_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejections: %w", err)
	}
	defer rows.Close()

	rejections := make([]*models.Rejection, 0)
	for rows.Next() {
		rejection := &models.Rejection{}
		if err := rows.Scan(
			&rejection.RequestID,
			&rejection.DoctorID,
			&rejection.Reason,
			&rejection.Status,
			&rejection.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rejection row: %w", err)
		}
		rejections = append(rejections, rejection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return rejections, nil
}
