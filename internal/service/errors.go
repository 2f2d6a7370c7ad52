package service

import "errors"

// Ошибки сервисов, которые не покрываются общими ошибками apperrors
var (
	// ErrInvalidCredentials неверное имя пользователя или пароль
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)
