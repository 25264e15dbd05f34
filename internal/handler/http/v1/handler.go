package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dispatchService     service.DispatchService
	availabilityService service.AvailabilityService
	statsService        service.StatsService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	dispatchService service.DispatchService,
	availabilityService service.AvailabilityService,
	statsService service.StatsService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		dispatchService:     dispatchService,
		availabilityService: availabilityService,
		statsService:        statsService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Create an emergency request
// @Description Classifies symptoms, ranks available doctors by distance and auto-assigns the nearest one. A request with no available doctor is returned with status PENDING. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body CreateEmergencyRequest true "Emergency request"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or patient location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Patient not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.dispatchService.CreateAndAssign(c.Request.Context(), DTOToCreateInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(req))
}

// @Summary Get emergency request by ID
// @Description Get a single emergency request. Requires API key.
// @Tags Emergencies
// @Produce json
// @Security ApiKeyAuth
// @Param requestId path string true "Request ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{requestId} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEmergency").WithField("request_id", id)

	req, err := h.dispatchService.GetRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(req))
}

// @Summary List rejections of an emergency request
// @Description Doctors who declined the request, in the order they declined. Requires API key.
// @Tags Emergencies
// @Produce json
// @Security ApiKeyAuth
// @Param requestId path string true "Request ID"
// @Success 200 {array} RejectionResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{requestId}/rejections [get]
func (h *Handler) listEmergencyRejections(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listEmergencyRejections").WithField("request_id", id)

	rejections, err := h.dispatchService.ListRejections(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRejectionResponses(rejections))
}

// @Summary Cancel a pending emergency request
// @Description Removes a request that has not been accepted yet. Requires API key.
// @Tags Emergencies
// @Security ApiKeyAuth
// @Param requestId path string true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{requestId} [delete]
func (h *Handler) cancelEmergency(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancelEmergency").WithField("request_id", id)

	if err := h.dispatchService.Cancel(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete an accepted emergency request
// @Description Marks an accepted request as completed and stores resolution notes. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param requestId path string true "Request ID"
// @Param body body CompleteEmergencyRequest false "Resolution notes"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request ID or body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Request is not accepted"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{requestId}/complete [patch]
func (h *Handler) completeEmergency(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "completeEmergency").WithField("request_id", id)

	var input CompleteEmergencyRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	req, err := h.dispatchService.Complete(c.Request.Context(), id, input.Notes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(req))
}

// @Summary Redispatch a pending emergency request
// @Description Re-runs auto-assignment for a request that is still pending. Doctors who declined the request are skipped. Requires API key.
// @Tags Emergencies
// @Produce json
// @Security ApiKeyAuth
// @Param requestId path string true "Request ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request or patient not found"
// @Failure 409 {object} map[string]string "Request is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{requestId}/redispatch [post]
func (h *Handler) redispatchEmergency(c *gin.Context) {
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "redispatchEmergency").WithField("request_id", id)

	req, err := h.dispatchService.Redispatch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(req))
}

// @Summary List pending emergency requests
// @Description Global pool of unassigned requests, newest first. Requires API key.
// @Tags Emergencies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/pending [get]
func (h *Handler) listPendingEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "listPendingEmergencies")

	requests, err := h.dispatchService.ListPending(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(requests))
}

// @Summary Get emergency statistics
// @Description Counts by status, mean resolution time and the number of requests in the recent window. Requires API key.
// @Tags Emergencies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary List patient emergency requests
// @Description Requests submitted by the patient, newest first. Requires API key.
// @Tags Patients
// @Produce json
// @Security ApiKeyAuth
// @Param patientId path int true "Patient ID"
// @Success 200 {array} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid patient ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /patients/{patientId}/emergencies [get]
func (h *Handler) listPatientEmergencies(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listPatientEmergencies").WithField("patient_id", patientID)

	requests, err := h.dispatchService.ListPatientRequests(c.Request.Context(), patientID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(requests))
}

// @Summary List available doctors
// @Description Without coordinates returns all available doctors. With lat and lng returns them ranked by distance, optionally filtered by specialization. Requires API key.
// @Tags Doctors
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude of the search origin"
// @Param lng query number false "Longitude of the search origin"
// @Param specialization query string false "Specialization filter (case-insensitive)"
// @Success 200 {array} DoctorAvailabilityResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/available [get]
func (h *Handler) listAvailableDoctors(c *gin.Context) {
	log := h.logger.WithField("method", "listAvailableDoctors")

	rawLat, hasLat := c.GetQuery("lat")
	rawLng, hasLng := c.GetQuery("lng")
	if !hasLat && !hasLng {
		doctors, err := h.availabilityService.ListAvailableDoctors(c.Request.Context())
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelsToAvailabilityResponses(doctors))
		return
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lng, lngErr := strconv.ParseFloat(rawLng, 64)
	if !hasLat || !hasLng || latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must both be valid numbers"})
		return
	}

	origin := geo.Point{Lat: lat, Lng: lng}
	candidates, err := h.availabilityService.RankAvailableDoctors(c.Request.Context(), origin, c.Query("specialization"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CandidatesToAvailabilityResponses(candidates))
}

// @Summary Get doctor availability
// @Description Returns the availability flag. A doctor who never reported availability is unavailable. Requires API key.
// @Tags Doctors
// @Produce json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Success 200 {object} AvailabilityStatusResponse
// @Failure 400 {object} map[string]string "Invalid doctor ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Doctor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/availability [get]
func (h *Handler) getAvailability(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAvailability").WithField("doctor_id", doctorID)

	available, err := h.availabilityService.GetAvailability(c.Request.Context(), doctorID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityStatusResponse{DoctorID: doctorID, IsAvailable: available})
}

// @Summary Update doctor availability
// @Description Toggles availability and optionally updates the doctor's location. Requires API key.
// @Tags Doctors
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Param availability body UpdateAvailabilityRequest true "Availability update"
// @Success 200 {object} DoctorAvailabilityResponse
// @Failure 400 {object} map[string]string "Invalid doctor ID, body or location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Doctor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/availability [put]
func (h *Handler) updateAvailability(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAvailability").WithField("doctor_id", doctorID)

	var input UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	updated, err := h.availabilityService.UpdateAvailability(c.Request.Context(), doctorID, *input.IsAvailable, DTOToLocation(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAvailabilityResponse(updated))
}

// @Summary List requests assigned to a doctor
// @Description Accepted and completed requests of the doctor, newest first. Requires API key.
// @Tags Doctors
// @Produce json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Success 200 {array} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid doctor ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/emergencies [get]
func (h *Handler) listDoctorEmergencies(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listDoctorEmergencies").WithField("doctor_id", doctorID)

	requests, err := h.dispatchService.ListDoctorRequests(c.Request.Context(), doctorID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(requests))
}

// @Summary Doctor's pending inbox
// @Description Pending requests except the ones this doctor has declined. Requires API key.
// @Tags Doctors
// @Produce json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Success 200 {array} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid doctor ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/emergencies/pending [get]
func (h *Handler) listDoctorInbox(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listDoctorInbox").WithField("doctor_id", doctorID)

	requests, err := h.dispatchService.ListPendingForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(requests))
}

// @Summary Accept an emergency request
// @Description Assigns the request to the doctor. Exactly one of several concurrent accepts succeeds, the rest receive 409. Requires API key.
// @Tags Doctors
// @Produce json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Param requestId path string true "Request ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid doctor or request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request or doctor not found"
// @Failure 409 {object} map[string]string "Request is not pending or was declined by this doctor"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/emergencies/{requestId}/accept [patch]
func (h *Handler) acceptEmergency(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "acceptEmergency", "doctor_id": doctorID, "request_id": id})

	req, err := h.dispatchService.Accept(c.Request.Context(), doctorID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(req))
}

// @Summary Reject an emergency request
// @Description Records that the doctor declined the request. The request stays pending for other doctors. Requires API key.
// @Tags Doctors
// @Accept json
// @Security ApiKeyAuth
// @Param doctorId path int true "Doctor ID"
// @Param requestId path string true "Request ID"
// @Param body body RejectEmergencyRequest false "Rejection reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid doctor or request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request or doctor not found"
// @Failure 409 {object} map[string]string "Request is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /doctors/{doctorId}/emergencies/{requestId}/reject [patch]
func (h *Handler) rejectEmergency(c *gin.Context) {
	doctorID, ok := parseIDParam(c, "doctorId")
	if !ok {
		return
	}
	id, ok := parseRequestID(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "rejectEmergency", "doctor_id": doctorID, "request_id": id})

	var input RejectEmergencyRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	if err := h.dispatchService.Reject(c.Request.Context(), doctorID, id, input.Reason); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибки сервиса в HTTP-коды
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrPatientNotFound),
		errors.Is(err, service.ErrDoctorNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrNotAccepted),
		errors.Is(err, service.ErrAlreadyDeclined):
		log.WithError(err).Warn("State conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidUrgency),
		errors.Is(err, service.ErrSymptomsRequired):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindOptionalJSON разбирает тело, если оно есть. Пустое тело допустимо,
// в том числе chunked без Content-Length.
func (h *Handler) bindOptionalJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseRequestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return uuid.Nil, false
	}
	return id, true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		label := strings.TrimSuffix(name, "Id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label + " ID"})
		return 0, false
	}
	return id, true
}
