package client

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"murojaat/internal/app/client/crypto"
	"murojaat/internal/infrastructure/migration"
)

const saltMetaKey = "salt"

var ErrSealedValue = errors.New("value is encrypted, storage_passphrase is required")

// SQLiteStorage хранит ключи сессии (токены и профили ролей) в файле состояния.
// С паролем значения шифруются перед записью.
type SQLiteStorage struct {
	db     *sql.DB
	sealer *crypto.Sealer
}

func NewSQLiteStorage(path, passphrase string) (*SQLiteStorage, error) {
	if err := migration.NewMigration(path, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы состояния: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if passphrase != "" {
		salt, err := storage.salt()
		if err != nil {
			db.Close()
			return nil, err
		}
		sealer, err := crypto.NewSealer(passphrase, salt, crypto.DefaultKeyParams())
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("ошибка инициализации шифрования: %w", err)
		}
		storage.sealer = sealer
	}

	return storage, nil
}

// salt читает соль из meta или создаёт новую при первом запуске
func (s *SQLiteStorage) salt() ([]byte, error) {
	var salt []byte
	err := s.db.QueryRow(`SELECT value FROM meta WHERE name = ?`, saltMetaKey).Scan(&salt)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ошибка чтения соли: %w", err)
	}

	salt, err = crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	if _, err := s.db.Exec(`INSERT INTO meta (name, value) VALUES (?, ?)`, saltMetaKey, salt); err != nil {
		return nil, fmt.Errorf("ошибка сохранения соли: %w", err)
	}
	return salt, nil
}

func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}

	if !crypto.IsSealed(value) {
		return value, true, nil
	}
	if s.sealer == nil {
		return "", false, fmt.Errorf("%s: %w", key, ErrSealedValue)
	}

	plain, err := s.sealer.Open(value)
	if err != nil {
		return "", false, fmt.Errorf("ошибка расшифровки ключа %s: %w", key, err)
	}
	return plain, true, nil
}

func (s *SQLiteStorage) Set(key, value string) error {
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(value)
		if err != nil {
			return fmt.Errorf("ошибка шифрования ключа %s: %w", key, err)
		}
		value = sealed
	}

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("ошибка сохранения ключа %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, key := range keys {
		if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("ошибка удаления ключа %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Keys возвращает сохранённые ключи по алфавиту
func (s *SQLiteStorage) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ключей: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	if s.sealer != nil {
		s.sealer.Wipe()
	}
	return s.db.Close()
}
