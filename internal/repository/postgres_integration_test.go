//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	pool, cleanup, err := startPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}
	testPool = pool

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func startPostgres(ctx context.Context) (*pgxpool.Pool, func(), error) {
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "dispatch",
			"POSTGRES_PASSWORD": "dispatch",
			"POSTGRES_DB":       "dispatch",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	cont, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		return nil, nil, fmt.Errorf("start container: %w", err)
	}
	terminate := func() { _ = cont.Terminate(context.Background()) }

	host, err := cont.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := cont.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, nil, err
	}
	dsn := fmt.Sprintf("dispatch:dispatch@%s:%s/dispatch?sslmode=disable", host, port.Port())

	m, err := migrate.New("file://"+findMigrationsDir(), "pgx5://"+dsn)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		terminate()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, "postgres://"+dsn)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, func() {
		pool.Close()
		terminate()
	}, nil
}

// findMigrationsDir находит каталог миграций относительно этого файла
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE emergency_rejections, doctor_availability, emergency_requests, doctors, patients RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

func seedPatient(t *testing.T) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO patients (first_name, last_name, phone, latitude, longitude)
		VALUES ('Ivan', 'Petrov', '+7000', 55.75, 37.61) RETURNING id;
	`).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedDoctor(t *testing.T, specialization string) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO doctors (first_name, last_name, specialization) VALUES ('Olga', 'Ivanova', $1) RETURNING id;
	`, specialization).Scan(&id)
	require.NoError(t, err)
	return id
}

func createPending(t *testing.T, repo *EmergencyRepository, patientID int64) *models.EmergencyRequest {
	t.Helper()
	req := &models.EmergencyRequest{
		RequestID:      uuid.New(),
		PatientID:      patientID,
		PatientName:    "Ivan Petrov",
		Symptoms:       "chest pain",
		UrgencyLevel:   models.UrgencyHigh,
		Specialization: "Cardiology",
	}
	require.NoError(t, repo.Create(context.Background(), req))
	return req
}

func TestEmergencyRepository_Lifecycle(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewEmergencyRepository(testPool).(*EmergencyRepository)
	patientID := seedPatient(t)
	doctorID := seedDoctor(t, "Cardiology")

	req := createPending(t, repo, patientID)
	assert.Equal(t, int64(1), req.Version)

	accepted, err := repo.AcceptIfPending(ctx, req.RequestID, doctorID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)
	assert.Equal(t, "Olga Ivanova", accepted.DoctorName)
	assert.Equal(t, int64(2), accepted.Version)

	_, err = repo.DeleteIfPending(ctx, req.RequestID)
	assert.ErrorIs(t, err, models.ErrStatusConflict)

	completed, err := repo.CompleteIfAccepted(ctx, req.RequestID, "stable")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.ResolvedAt)

	_, err = repo.CompleteIfAccepted(ctx, req.RequestID, "again")
	assert.ErrorIs(t, err, models.ErrStatusConflict)

	_, err = repo.CompleteIfAccepted(ctx, uuid.New(), "")
	assert.ErrorIs(t, err, models.ErrNotFound)

	stats, err := repo.Stats(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.CompletedRequests)
	assert.Equal(t, int64(1), stats.RecentRequests)
	assert.GreaterOrEqual(t, stats.AverageResolutionMinutes, 0.0)
}

func TestEmergencyRepository_ConcurrentAccept(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewEmergencyRepository(testPool).(*EmergencyRepository)
	patientID := seedPatient(t)
	req := createPending(t, repo, patientID)

	const doctors = 8
	ids := make([]int64, doctors)
	for i := range ids {
		ids[i] = seedDoctor(t, "Cardiology")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(doctorID int64) {
			defer wg.Done()
			_, err := repo.AcceptIfPending(ctx, req.RequestID, doctorID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, models.ErrStatusConflict):
				conflicts++
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, doctors-1, conflicts)
}

func TestRejectionRepository_GuardsAccept(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	emergencies := NewEmergencyRepository(testPool).(*EmergencyRepository)
	rejections := NewRejectionRepository(testPool)
	patientID := seedPatient(t)
	declining := seedDoctor(t, "Cardiology")
	other := seedDoctor(t, "Cardiology")
	req := createPending(t, emergencies, patientID)

	rejection := &models.Rejection{RequestID: req.RequestID, DoctorID: declining, Reason: "busy"}
	require.NoError(t, rejections.RejectIfPending(ctx, rejection))
	require.NoError(t, rejections.RejectIfPending(ctx, &models.Rejection{RequestID: req.RequestID, DoctorID: declining}))

	list, err := rejections.ListByRequest(ctx, req.RequestID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RejectionStatus, list[0].Status)

	inbox, err := emergencies.ListPendingForDoctor(ctx, declining)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	_, err = emergencies.AcceptIfPending(ctx, req.RequestID, declining)
	assert.ErrorIs(t, err, models.ErrDeclined)

	_, err = emergencies.AcceptIfPending(ctx, req.RequestID, other)
	require.NoError(t, err)

	err = rejections.RejectIfPending(ctx, &models.Rejection{RequestID: req.RequestID, DoctorID: other})
	assert.ErrorIs(t, err, models.ErrStatusConflict)

	err = rejections.RejectIfPending(ctx, &models.Rejection{RequestID: uuid.New(), DoctorID: other})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEmergencyRepository_CancelCascadesRejections(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	emergencies := NewEmergencyRepository(testPool).(*EmergencyRepository)
	rejections := NewRejectionRepository(testPool)
	patientID := seedPatient(t)
	doctorID := seedDoctor(t, "General")
	req := createPending(t, emergencies, patientID)
	require.NoError(t, rejections.RejectIfPending(ctx, &models.Rejection{RequestID: req.RequestID, DoctorID: doctorID}))

	deleted, err := emergencies.DeleteIfPending(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Equal(t, req.RequestID, deleted.RequestID)

	list, err := rejections.ListByRequest(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = emergencies.DeleteIfPending(ctx, req.RequestID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAvailabilityRepository_Upsert(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewAvailabilityRepository(testPool)
	doctorID := seedDoctor(t, "Cardiology")

	lat, lng := 55.7, 37.6
	require.NoError(t, repo.Upsert(ctx, &models.DoctorAvailability{DoctorID: doctorID, IsAvailable: true, Latitude: &lat, Longitude: &lng}))
	require.NoError(t, repo.Upsert(ctx, &models.DoctorAvailability{DoctorID: doctorID, IsAvailable: true}))

	row, err := repo.GetByDoctorID(ctx, doctorID)
	require.NoError(t, err)
	require.NotNil(t, row.Latitude)
	assert.Equal(t, 55.7, *row.Latitude)
	assert.Equal(t, "Olga Ivanova", row.DoctorName)

	matched, err := repo.ListAvailableBySpecialization(ctx, "cardiology")
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	err = repo.Upsert(ctx, &models.DoctorAvailability{DoctorID: 9999, IsAvailable: true})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByDoctorID(ctx, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProfileRepository(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewProfileRepository(testPool)
	patientID := seedPatient(t)

	patient, err := repo.GetPatient(ctx, patientID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", patient.FullName())
	_, ok := patient.Location()
	assert.True(t, ok)

	_, err = repo.GetDoctor(ctx, 4242)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEmergencyRepository_AcceptUnknownDoctor(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	repo := NewEmergencyRepository(testPool).(*EmergencyRepository)
	patientID := seedPatient(t)
	req := createPending(t, repo, patientID)

	_, err := repo.AcceptIfPending(ctx, req.RequestID, 999999)
	assert.ErrorIs(t, err, models.ErrUnknownDoctor)
	assert.NotErrorIs(t, err, models.ErrNotFound)

	current, err := repo.GetByRequestID(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, current.Status)
	assert.Nil(t, current.DoctorID)
}

func TestRejectionRepository_WaitsForConcurrentAccept(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	emergencies := NewEmergencyRepository(testPool).(*EmergencyRepository)
	rejections := NewRejectionRepository(testPool)
	patientID := seedPatient(t)
	accepting := seedDoctor(t, "Cardiology")
	declining := seedDoctor(t, "Cardiology")
	req := createPending(t, emergencies, patientID)

	// Принятие выполнено, но еще не закоммичено
	tx, err := testPool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx) //nolint:errcheck
	_, err = tx.Exec(ctx, `
		UPDATE emergency_requests SET status = 'ACCEPTED', doctor_id = $2, version = version + 1
		WHERE request_id = $1;
	`, req.RequestID, accepting)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- rejections.RejectIfPending(ctx, &models.Rejection{RequestID: req.RequestID, DoctorID: declining, Reason: "busy"})
	}()

	select {
	case err := <-done:
		t.Fatalf("rejection finished before the accept committed: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, tx.Commit(ctx))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, models.ErrStatusConflict)
	case <-time.After(5 * time.Second):
		t.Fatal("rejection did not finish after the accept committed")
	}

	list, err := rejections.ListByRequest(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
