package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	SaltLength = 16
	keyLength  = 32 // AES-256

	// префикс отличает зашифрованное значение от открытого
	sealedPrefix = "sealed:v1:"
)

var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted value")

// KeyParams - параметры Argon2id
type KeyParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

func DefaultKeyParams() KeyParams {
	return KeyParams{
		Time:    1,
		Memory:  64 * 1024, // 64 MB
		Threads: 4,
	}
}

// Sealer шифрует значения сессии перед записью на диск (AES-GCM, ключ из пароля через Argon2id)
type Sealer struct {
	key []byte
}

// NewSealer выводит ключ из пароля и соли
func NewSealer(passphrase string, salt []byte, params KeyParams) (*Sealer, error) {
	if passphrase == "" {
		return nil, errors.New("empty passphrase")
	}
	if len(salt) < SaltLength {
		return nil, fmt.Errorf("salt must be at least %d bytes", SaltLength)
	}

	key := argon2.IDKey([]byte(passphrase), salt, params.Time, params.Memory, params.Threads, keyLength)
	return &Sealer{key: key}, nil
}

// Seal шифрует строку и возвращает её в текстовом виде
func (s *Sealer) Seal(plaintext string) (string, error) {
	ct, err := encryptWithKey(s.key, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return sealedPrefix + base64.StdEncoding.EncodeToString(ct), nil
}

// Open расшифровывает значение, полученное из Seal
func (s *Sealer) Open(sealed string) (string, error) {
	if !IsSealed(sealed) {
		return "", fmt.Errorf("%w: missing prefix", ErrWrongPassphrase)
	}

	ct, err := base64.StdEncoding.DecodeString(sealed[len(sealedPrefix):])
	if err != nil {
		return "", fmt.Errorf("decode sealed value: %w", err)
	}

	pt, err := decryptWithKey(s.key, ct)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}
	return string(pt), nil
}

// Wipe затирает ключ в памяти
func (s *Sealer) Wipe() {
	for i := range s.key {
		s.key[i] = 0
	}
}

func IsSealed(v string) bool {
	return len(v) > len(sealedPrefix) && v[:len(sealedPrefix)] == sealedPrefix
}

// GenerateSalt генерирует криптографически безопасную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// encryptWithKey шифрует данные с использованием AES-GCM
func encryptWithKey(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decryptWithKey расшифровывает данные с использованием AES-GCM
func decryptWithKey(key, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}
