package v1

import (
	"github.com/shenikar/emergency_dispatch/internal/geo"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

// DTOToCreateInput преобразует DTO создания в входные данные сервиса
func DTOToCreateInput(dto CreateEmergencyRequest) models.CreateEmergencyInput {
	return models.CreateEmergencyInput{
		PatientID:    dto.PatientID,
		Symptoms:     dto.Symptoms,
		UrgencyLevel: models.UrgencyLevel(dto.UrgencyLevel),
		Location:     dto.Location,
		Notes:        dto.Notes,
	}
}

// DTOToLocation возвращает nil, если координаты не переданы
func DTOToLocation(dto UpdateAvailabilityRequest) *geo.Point {
	if dto.Latitude == nil || dto.Longitude == nil {
		return nil
	}
	return &geo.Point{Lat: *dto.Latitude, Lng: *dto.Longitude}
}

func ModelToEmergencyResponse(model *models.EmergencyRequest) *EmergencyResponse {
	return &EmergencyResponse{
		RequestID:      model.RequestID,
		PatientID:      model.PatientID,
		PatientName:    model.PatientName,
		PatientPhone:   model.PatientPhone,
		Symptoms:       model.Symptoms,
		UrgencyLevel:   string(model.UrgencyLevel),
		Location:       model.Location,
		Specialization: model.Specialization,
		Status:         string(model.Status),
		DoctorID:       model.DoctorID,
		DoctorName:     model.DoctorName,
		Notes:          model.Notes,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		ResolvedAt:     model.ResolvedAt,
	}
}

// ModelsToEmergencyResponses преобразует слайс моделей в слайс DTO
func ModelsToEmergencyResponses(models []*models.EmergencyRequest) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToEmergencyResponse(model)
	}
	return responses
}

func ModelToAvailabilityResponse(model *models.DoctorAvailability) *DoctorAvailabilityResponse {
	lastUpdated := model.LastUpdated
	return &DoctorAvailabilityResponse{
		DoctorID:       model.DoctorID,
		DoctorName:     model.DoctorName,
		Specialization: model.Specialization,
		IsAvailable:    model.IsAvailable,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		LastUpdated:    &lastUpdated,
	}
}

func ModelsToAvailabilityResponses(models []*models.DoctorAvailability) []*DoctorAvailabilityResponse {
	responses := make([]*DoctorAvailabilityResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAvailabilityResponse(model)
	}
	return responses
}

// CandidatesToAvailabilityResponses - ранжированные кандидаты с расстоянием до точки поиска
func CandidatesToAvailabilityResponses(candidates []models.Candidate) []*DoctorAvailabilityResponse {
	responses := make([]*DoctorAvailabilityResponse, len(candidates))
	for i, c := range candidates {
		lat, lng, distance := c.Location.Lat, c.Location.Lng, c.DistanceKm
		responses[i] = &DoctorAvailabilityResponse{
			DoctorID:       c.DoctorID,
			DoctorName:     c.DoctorName,
			Specialization: c.Specialization,
			IsAvailable:    true,
			Latitude:       &lat,
			Longitude:      &lng,
			DistanceKm:     &distance,
		}
	}
	return responses
}

func ModelsToRejectionResponses(models []*models.Rejection) []*RejectionResponse {
	responses := make([]*RejectionResponse, len(models))
	for i, model := range models {
		responses[i] = &RejectionResponse{
			RequestID: model.RequestID,
			DoctorID:  model.DoctorID,
			Reason:    model.Reason,
			Status:    model.Status,
			CreatedAt: model.CreatedAt,
		}
	}
	return responses
}

func ModelToStatsResponse(model *models.EmergencyStats) StatsResponse {
	return StatsResponse{
		TotalRequests:            model.TotalRequests,
		PendingRequests:          model.PendingRequests,
		AcceptedRequests:         model.AcceptedRequests,
		CompletedRequests:        model.CompletedRequests,
		AverageResolutionMinutes: model.AverageResolutionMinutes,
		RecentRequests:           model.RecentRequests,
		WindowMinutes:            model.WindowMinutes,
	}
}
