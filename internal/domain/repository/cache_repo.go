package repository

import (
	"time"
)

// CacheRepository хранит закешированные списки справочников и счетчики лимитов.
// Отсутствующий ключ возвращается как apperrors.ErrNotFound.
type CacheRepository interface {
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	Delete(keys ...string) error
	// IncrWindow увеличивает счетчик и при первом увеличении задает окно жизни.
	// Возвращает новое значение счетчика и оставшееся время окна.
	IncrWindow(key string, window time.Duration) (int64, time.Duration, error)
}
