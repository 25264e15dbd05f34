package models

import "errors"

// Ошибки уровня хранилища, общие для всех реализаций репозиториев
var (
	ErrNotFound       = errors.New("record not found")
	ErrStatusConflict = errors.New("status does not allow this transition")
	ErrDeclined       = errors.New("doctor has declined this request")
	ErrUnknownDoctor  = errors.New("doctor does not exist")
)
