package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/shenikar/emergency_dispatch/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

type testDeps struct {
	dispatch     *mocks.MockDispatchService
	availability *mocks.MockAvailabilityService
	stats        *mocks.MockStatsService
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testDeps, *gin.Engine) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		dispatch:     mocks.NewMockDispatchService(ctrl),
		availability: mocks.NewMockAvailabilityService(ctrl),
		stats:        mocks.NewMockStatsService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(deps.dispatch, deps.availability, deps.stats, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, deps, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router http.Handler, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func sampleRequest(status models.EmergencyStatus) *models.EmergencyRequest {
	now := time.Now().UTC()
	return &models.EmergencyRequest{
		RequestID:      uuid.New(),
		PatientID:      7,
		PatientName:    "Ivan Petrov",
		Symptoms:       "chest pain",
		UrgencyLevel:   models.UrgencyHigh,
		Specialization: "Cardiology",
		Status:         status,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateEmergency_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{
		PatientID:    7,
		Symptoms:     "chest pain",
		UrgencyLevel: "HIGH",
		Location:     "Tverskaya 1",
	}
	doctorID := int64(3)
	created := sampleRequest(models.StatusAccepted)
	created.DoctorID = &doctorID
	created.DoctorName = "Olga Ivanova"

	deps.dispatch.EXPECT().
		CreateAndAssign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input models.CreateEmergencyInput) (*models.EmergencyRequest, error) {
			assert.Equal(t, int64(7), input.PatientID)
			assert.Equal(t, models.UrgencyHigh, input.UrgencyLevel)
			assert.Equal(t, "Tverskaya 1", input.Location)
			return created, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/emergencies", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.RequestID, resp.RequestID)
	assert.Equal(t, "ACCEPTED", resp.Status)
	require.NotNil(t, resp.DoctorID)
	assert.Equal(t, doctorID, *resp.DoctorID)
}

func TestCreateEmergency_InvalidJSON(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().CreateAndAssign(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBufferString(`{"patient_id": 1`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateEmergency_ValidationError(t *testing.T) {
	_, deps, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{ // Отсутствуют симптомы
		PatientID:    7,
		UrgencyLevel: "HIGH",
	}

	deps.dispatch.EXPECT().CreateAndAssign(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergencies", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Symptoms' failed on the 'required' tag")
}

func TestCreateEmergency_InvalidUrgency(t *testing.T) {
	_, deps, router := newTestHandler(t)
	reqBody := CreateEmergencyRequest{PatientID: 7, Symptoms: "cough", UrgencyLevel: "SEVERE"}

	deps.dispatch.EXPECT().CreateAndAssign(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergencies", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'oneof' tag")
}

func TestCreateEmergency_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"patient not found", service.ErrPatientNotFound, http.StatusNotFound, "patient not found"},
		{"patient without location", service.ErrInvalidLocation, http.StatusBadRequest, "location is missing or invalid"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, deps, router := newTestHandler(t)
			reqBody := CreateEmergencyRequest{PatientID: 7, Symptoms: "cough", UrgencyLevel: "LOW"}

			deps.dispatch.EXPECT().CreateAndAssign(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/emergencies", jsonBody(t, reqBody), authHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestCreateEmergency_RequiresAPIKey(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().CreateAndAssign(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/emergencies", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetEmergency_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)
	req := sampleRequest(models.StatusPending)

	deps.dispatch.EXPECT().GetRequest(gomock.Any(), req.RequestID).Return(req, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/emergencies/%s", req.RequestID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, req.RequestID, resp.RequestID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Nil(t, resp.DoctorID)
}

func TestGetEmergency_InvalidID(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.dispatch.EXPECT().GetRequest(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/emergencies/invalid-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request ID")
}

func TestGetEmergency_NotFound(t *testing.T) {
	_, deps, router := newTestHandler(t)
	id := uuid.New()

	deps.dispatch.EXPECT().GetRequest(gomock.Any(), id).Return(nil, service.ErrRequestNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/emergencies/%s", id), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "emergency request not found")
}

func TestCancelEmergency(t *testing.T) {
	t.Run("pending request is removed", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/emergencies/%s", id), nil, authHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("accepted request conflicts", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Cancel(gomock.Any(), id).Return(service.ErrNotPending).Times(1)

		w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/emergencies/%s", id), nil, authHeader)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "not pending")
	})
}

func TestCompleteEmergency(t *testing.T) {
	t.Run("with notes", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		completed := sampleRequest(models.StatusCompleted)
		resolved := completed.CreatedAt.Add(20 * time.Minute)
		completed.ResolvedAt = &resolved
		completed.Notes = "stable"

		deps.dispatch.EXPECT().Complete(gomock.Any(), completed.RequestID, "stable").Return(completed, nil).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/emergencies/%s/complete", completed.RequestID),
			jsonBody(t, CompleteEmergencyRequest{Notes: "stable"}), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp EmergencyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "COMPLETED", resp.Status)
		assert.NotNil(t, resp.ResolvedAt)
	})

	t.Run("empty body", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		completed := sampleRequest(models.StatusCompleted)

		deps.dispatch.EXPECT().Complete(gomock.Any(), completed.RequestID, "").Return(completed, nil).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/emergencies/%s/complete", completed.RequestID), nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("chunked empty body", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		completed := sampleRequest(models.StatusCompleted)

		deps.dispatch.EXPECT().Complete(gomock.Any(), completed.RequestID, "").Return(completed, nil).Times(1)

		// io.MultiReader без Content-Length, как chunked-запрос без тела
		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/emergencies/%s/complete", completed.RequestID), io.MultiReader(), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("pending request conflicts", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()

		deps.dispatch.EXPECT().Complete(gomock.Any(), id, "").Return(nil, service.ErrNotAccepted).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/emergencies/%s/complete", id), nil, authHeader)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "must be accepted")
	})
}

func TestRedispatchEmergency(t *testing.T) {
	_, deps, router := newTestHandler(t)
	req := sampleRequest(models.StatusPending)

	deps.dispatch.EXPECT().Redispatch(gomock.Any(), req.RequestID).Return(req, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/emergencies/%s/redispatch", req.RequestID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPendingEmergencies(t *testing.T) {
	_, deps, router := newTestHandler(t)
	pending := []*models.EmergencyRequest{sampleRequest(models.StatusPending), sampleRequest(models.StatusPending)}

	deps.dispatch.EXPECT().ListPending(gomock.Any()).Return(pending, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/pending", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestGetStats_Success(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.stats.EXPECT().GetStats(gomock.Any()).Return(&models.EmergencyStats{
		TotalRequests:            5,
		PendingRequests:          2,
		CompletedRequests:        3,
		AverageResolutionMinutes: 12.5,
		RecentRequests:           4,
		WindowMinutes:            60,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/stats", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.TotalRequests)
	assert.Equal(t, 12.5, resp.AverageResolutionMinutes)
	assert.Equal(t, 60, resp.WindowMinutes)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, deps, router := newTestHandler(t)

	deps.stats.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("failed to get stats")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/emergencies/stats", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListPatientEmergencies(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.dispatch.EXPECT().ListPatientRequests(gomock.Any(), int64(7)).
			Return([]*models.EmergencyRequest{sampleRequest(models.StatusPending)}, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/patients/7/emergencies", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.dispatch.EXPECT().ListPatientRequests(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "GET", "/api/v1/patients/abc/emergencies", nil, authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid patient ID")
	})
}

func TestListAvailableDoctors(t *testing.T) {
	t.Run("without origin", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		lat, lng := 55.75, 37.61
		deps.availability.EXPECT().ListAvailableDoctors(gomock.Any()).Return([]*models.DoctorAvailability{
			{DoctorID: 1, DoctorName: "Olga Ivanova", Specialization: "Cardiology", IsAvailable: true, Latitude: &lat, Longitude: &lng},
		}, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/doctors/available", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []DoctorAvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Nil(t, resp[0].DistanceKm)
	})

	t.Run("ranked from origin", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().
			RankAvailableDoctors(gomock.Any(), geo.Point{Lat: 55.75, Lng: 37.61}, "cardiology").
			Return([]models.Candidate{
				{DoctorID: 2, Specialization: "Cardiology", Location: geo.Point{Lat: 55.76, Lng: 37.61}, DistanceKm: 1.1},
				{DoctorID: 1, Specialization: "Cardiology", Location: geo.Point{Lat: 55.80, Lng: 37.61}, DistanceKm: 5.6},
			}, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/doctors/available?lat=55.75&lng=37.61&specialization=cardiology", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []DoctorAvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(2), resp[0].DoctorID)
		require.NotNil(t, resp[0].DistanceKm)
		assert.Equal(t, 1.1, *resp[0].DistanceKm)
	})

	t.Run("only one coordinate", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().RankAvailableDoctors(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "GET", "/api/v1/doctors/available?lat=55.75", nil, authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("origin out of range", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().RankAvailableDoctors(gomock.Any(), gomock.Any(), "").
			Return(nil, service.ErrInvalidLocation).Times(1)

		w := makeRequest(router, "GET", "/api/v1/doctors/available?lat=95&lng=0", nil, authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().GetAvailability(gomock.Any(), int64(3)).Return(true, nil).Times(1)

		w := makeRequest(router, "GET", "/api/v1/doctors/3/availability", nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp AvailabilityStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.DoctorID)
		assert.True(t, resp.IsAvailable)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().GetAvailability(gomock.Any(), int64(3)).Return(false, service.ErrDoctorNotFound).Times(1)

		w := makeRequest(router, "GET", "/api/v1/doctors/3/availability", nil, authHeader)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateAvailability(t *testing.T) {
	t.Run("with location", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		lat, lng := 59.93, 30.31
		deps.availability.EXPECT().
			UpdateAvailability(gomock.Any(), int64(3), true, &geo.Point{Lat: lat, Lng: lng}).
			Return(&models.DoctorAvailability{DoctorID: 3, IsAvailable: true, Latitude: &lat, Longitude: &lng, LastUpdated: time.Now()}, nil).
			Times(1)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability",
			bytes.NewBufferString(`{"is_available": true, "latitude": 59.93, "longitude": 30.31}`), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp DoctorAvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsAvailable)
		assert.NotNil(t, resp.LastUpdated)
	})

	t.Run("toggle only", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().
			UpdateAvailability(gomock.Any(), int64(3), false, (*geo.Point)(nil)).
			Return(&models.DoctorAvailability{DoctorID: 3}, nil).
			Times(1)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability", bytes.NewBufferString(`{"is_available": false}`), authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().UpdateAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability", bytes.NewBufferString(`{"latitude": 1, "longitude": 1}`), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'IsAvailable' failed on the 'required' tag")
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().UpdateAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability", bytes.NewBufferString(`{"is_available": true, "latitude": 1}`), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be provided together")
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().UpdateAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability",
			bytes.NewBufferString(`{"is_available": true, "latitude": 120, "longitude": 1}`), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "'latitude' tag")
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.availability.EXPECT().UpdateAvailability(gomock.Any(), int64(3), true, (*geo.Point)(nil)).
			Return(nil, service.ErrDoctorNotFound).Times(1)

		w := makeRequest(router, "PUT", "/api/v1/doctors/3/availability", bytes.NewBufferString(`{"is_available": true}`), authHeader)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListDoctorEmergencies(t *testing.T) {
	_, deps, router := newTestHandler(t)
	deps.dispatch.EXPECT().ListDoctorRequests(gomock.Any(), int64(3)).Return([]*models.EmergencyRequest{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/doctors/3/emergencies", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListDoctorInbox(t *testing.T) {
	_, deps, router := newTestHandler(t)
	deps.dispatch.EXPECT().ListPendingForDoctor(gomock.Any(), int64(3)).
		Return([]*models.EmergencyRequest{sampleRequest(models.StatusPending)}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/doctors/3/emergencies/pending", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EmergencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestAcceptEmergency(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"accepted", nil, http.StatusOK},
		{"already taken", service.ErrNotPending, http.StatusConflict},
		{"declined earlier", service.ErrAlreadyDeclined, http.StatusConflict},
		{"unknown request", service.ErrRequestNotFound, http.StatusNotFound},
		{"unknown doctor", service.ErrDoctorNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, deps, router := newTestHandler(t)
			id := uuid.New()
			var result *models.EmergencyRequest
			if tt.err == nil {
				result = sampleRequest(models.StatusAccepted)
				result.RequestID = id
			}
			deps.dispatch.EXPECT().Accept(gomock.Any(), int64(3), id).Return(result, tt.err).Times(1)

			w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/3/emergencies/%s/accept", id), nil, authHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAcceptEmergency_InvalidDoctorID(t *testing.T) {
	_, deps, router := newTestHandler(t)
	deps.dispatch.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/0/emergencies/%s/accept", uuid.New()), nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid doctor ID")
}

func TestRejectEmergency(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Reject(gomock.Any(), int64(3), id, "in surgery").Return(nil).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/3/emergencies/%s/reject", id),
			jsonBody(t, RejectEmergencyRequest{Reason: "in surgery"}), authHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not pending", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Reject(gomock.Any(), int64(3), id, "").Return(service.ErrNotPending).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/3/emergencies/%s/reject", id), nil, authHeader)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("chunked empty body", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Reject(gomock.Any(), int64(3), id, "").Return(nil).Times(1)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/3/emergencies/%s/reject", id), io.MultiReader(), authHeader)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("chunked truncated body", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/doctors/3/emergencies/%s/reject", id),
			io.MultiReader(strings.NewReader(`{"reason":`)), authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestListEmergencyRejections(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		declinedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		deps.dispatch.EXPECT().ListRejections(gomock.Any(), id).Return([]*models.Rejection{
			{RequestID: id, DoctorID: 3, Reason: "in surgery", Status: models.RejectionStatus, CreatedAt: declinedAt},
			{RequestID: id, DoctorID: 5, Status: models.RejectionStatus, CreatedAt: declinedAt.Add(time.Minute)},
		}, nil).Times(1)

		w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/emergencies/%s/rejections", id), nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []RejectionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, int64(3), resp[0].DoctorID)
		assert.Equal(t, "in surgery", resp[0].Reason)
		assert.Equal(t, "REJECTED", resp[0].Status)
		assert.Equal(t, int64(5), resp[1].DoctorID)
	})

	t.Run("empty ledger", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().ListRejections(gomock.Any(), id).Return([]*models.Rejection{}, nil).Times(1)

		w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/emergencies/%s/rejections", id), nil, authHeader)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("unknown request", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		id := uuid.New()
		deps.dispatch.EXPECT().ListRejections(gomock.Any(), id).Return(nil, service.ErrRequestNotFound).Times(1)

		w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/emergencies/%s/rejections", id), nil, authHeader)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid ID", func(t *testing.T) {
		_, deps, router := newTestHandler(t)
		deps.dispatch.EXPECT().ListRejections(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "GET", "/api/v1/emergencies/not-a-uuid/rejections", nil, authHeader)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestNewRouter_MetricsAndCORS(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	handler.cfg.CORSAllowedOrigins = []string{"https://dispatch.example.com"}

	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("dispatch_outcomes_total 1"))
	})
	router := NewRouter(handler, metricsHandler)

	w := makeRequest(router, "GET", "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dispatch_outcomes_total")

	w = makeRequest(router, "GET", "/api/v1/system/health", nil, map[string]string{"Origin": "https://dispatch.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://dispatch.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
