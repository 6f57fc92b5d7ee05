package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sharadc16/volunteer-attendance-tracker-sub001/pkg/api"
)

// TokenProvider returns the current access token for gateway calls.
// Implemented by the auth service.
type TokenProvider func(ctx context.Context) (string, error)

// HTTPClient представляет HTTP клиент для взаимодействия со шлюзом таблиц
type HTTPClient struct {
	httpClient *http.Client
	token      TokenProvider
	baseURL    string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient создает новый клиент шлюза
// token может быть nil для вызовов, не требующих аутентификации
func NewHTTPClient(baseURL string, token TokenProvider) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Ping checks gateway reachability
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

// ReadChangeIndicator reads the cheap staleness probe for one sheet
func (c *HTTPClient) ReadChangeIndicator(ctx context.Context, entityType string) (*api.ChangeIndicator, error) {
	var resp api.ChangeIndicator
	path := fmt.Sprintf("/api/v1/sheets/%s/indicator", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("read change indicator failed: %w", err)
	}
	return &resp, nil
}

// ReadAll returns every row of the sheet for one entity type
func (c *HTTPClient) ReadAll(ctx context.Context, entityType string) ([]api.Row, error) {
	var resp api.ReadAllResponse
	path := fmt.Sprintf("/api/v1/sheets/%s/rows", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("read all rows failed: %w", err)
	}
	return resp.Rows, nil
}

// AppendRows appends rows to the end of the sheet
func (c *HTTPClient) AppendRows(ctx context.Context, entityType string, rows []api.Row) ([]api.Row, error) {
	var resp api.AppendResponse
	path := fmt.Sprintf("/api/v1/sheets/%s/rows", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodPost, path, api.AppendRequest{Rows: rows}, &resp); err != nil {
		return nil, fmt.Errorf("append rows failed: %w", err)
	}
	return resp.Rows, nil
}

// WriteRange overwrites a contiguous range of rows
func (c *HTTPClient) WriteRange(ctx context.Context, entityType string, rows []api.Row, rangeRef string) error {
	path := fmt.Sprintf("/api/v1/sheets/%s/rows/range", url.PathEscape(entityType))
	req := api.WriteRangeRequest{RangeRef: rangeRef, Rows: rows}
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("write range failed: %w", err)
	}
	return nil
}

// DeleteRows removes rows by record ID
func (c *HTTPClient) DeleteRows(ctx context.Context, entityType string, ids []string) (int, error) {
	var resp api.DeleteRowsResponse
	path := fmt.Sprintf("/api/v1/sheets/%s/rows/delete", url.PathEscape(entityType))
	if err := c.doRequest(ctx, http.MethodPost, path, api.DeleteRowsRequest{IDs: ids}, &resp); err != nil {
		return 0, fmt.Errorf("delete rows failed: %w", err)
	}
	return resp.Deleted, nil
}

// Login выполняет аутентификацию и возвращает пару токенов
func (c *HTTPClient) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обновляет пару токенов по refresh token
func (c *HTTPClient) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			gwErr.Code = errResp.Error
			gwErr.Message = errResp.Message
		}
		return gwErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
