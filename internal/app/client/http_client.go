package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	userAgent       = "Murojaat-Client/1.0"
	requestIDHeader = "X-Request-ID"
)

// Transport выполняет JSON-запросы к API и раскладывает ответы по таксономии ошибок
type Transport struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewTransport(baseURL string, timeout time.Duration, log *slog.Logger) *Transport {
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}
	return NewTransportWithClient(baseURL, client, log)
}

// NewTransportWithClient - для тестов с httptest.Server.Client()
func NewTransportWithClient(baseURL string, client *http.Client, log *slog.Logger) *Transport {
	return &Transport{
		client:    client,
		log:       log.With(slog.String("component", "transport")),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// CloseIdle закрывает простаивающие соединения
func (t *Transport) CloseIdle() {
	t.client.CloseIdleConnections()
}

// Do отправляет запрос. body и out могут быть nil. token пустой для входа.
func (t *Transport) Do(ctx context.Context, op Op, method, path, token string, body, out any) error {
	resp, reqID, err := t.doRequest(ctx, method, path, token, body)
	if err != nil {
		return &APIError{Op: op, Kind: ErrNetworkFailure, Err: err}
	}
	return t.parseResponse(op, reqID, resp, out)
}

func (t *Transport) doRequest(ctx context.Context, method, path, token string, body any) (*http.Response, string, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	reqID := uuid.NewString()

	// Добавляем заголовки
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	t.log.Debug("sending request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", reqID),
	)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, reqID, fmt.Errorf("do request: %w", err)
	}

	return resp, reqID, nil
}

func (t *Transport) parseResponse(op Op, reqID string, resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op, Kind: ErrNetworkFailure, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	t.log.Debug("response received",
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Op:      op,
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: serverMessage(body),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Op: op, Kind: ErrNetworkFailure, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

// serverMessage достаёт текст ошибки из тела ответа: {"error"}, {"message"} или {"detail"}
func serverMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	switch {
	case errResp.Error != "":
		return errResp.Error
	case errResp.Message != "":
		return errResp.Message
	default:
		return errResp.Detail
	}
}
