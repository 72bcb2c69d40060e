package delineation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPOracle вызывает внешний сервис делинеации по HTTP
type HTTPOracle struct {
	serviceURL string
	httpClient *http.Client
}

// NewHTTPOracle создает клиента сервиса делинеации
func NewHTTPOracle(serviceURL string, timeout time.Duration) *HTTPOracle {
	return &HTTPOracle{
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// delineateRequest структура запроса к сервису делинеации
type delineateRequest struct {
	Signal []float64 `json:"signal"`
	FsHz   float64   `json:"fs_hz"`
}

// Delineate отправляет сигнал внешнему сервису и возвращает индексы волн
func (o *HTTPOracle) Delineate(ctx context.Context, signal []float64, fs float64) (*Result, error) {
	// Сериализовать запрос
	requestBody, err := json.Marshal(delineateRequest{Signal: signal, FsHz: fs})
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := fmt.Sprintf("%s/delineate", o.serviceURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	// Выполнить запрос
	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("сервис делинеации вернул ошибку %d: %s", resp.StatusCode, string(body))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var result Result
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("ошибка десериализации ответа: %w", err)
	}

	return &result, nil
}
