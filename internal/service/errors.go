package service

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrRequestNotFound  = errors.New("emergency request not found")
	ErrInvalidLocation  = errors.New("location is missing or invalid")
	ErrNotPending       = errors.New("emergency request is not pending")
	ErrNotAccepted      = errors.New("emergency request must be accepted before completion")
	ErrAlreadyDeclined  = errors.New("doctor has already declined this request")
	ErrInvalidUrgency   = errors.New("invalid urgency level")
	ErrSymptomsRequired = errors.New("symptoms are required")
)
