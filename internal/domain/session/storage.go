package session

// Storage - именованное key-value хранилище токенов и профилей.
// Отсутствующий ключ - это ("", false, nil), а не ошибка.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(keys ...string) error
}
