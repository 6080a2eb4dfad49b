package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	addEmployeePath   = "/add-employee"
	readEmployeesPath = "/read-employees"
)

// Employee is the wire shape shared by both endpoints.
type Employee struct {
	EmpID         string `json:"empId"`
	EmpName       string `json:"empName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	EmpRole       string `json:"empRole"`
}

type envelope struct {
	Ok      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.Status)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("apiclient")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("apiclient")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     l,
	}
}

// AddEmployee posts e and returns the outcome message chosen by the API.
// Duplicate id/email outcomes are messages, not errors.
func (c *Client) AddEmployee(ctx context.Context, e Employee) (string, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return "", err
	}

	env, err := c.do(ctx, http.MethodPost, addEmployeePath, body)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// ReadEmployees returns every employee known to the API.
func (c *Client) ReadEmployees(ctx context.Context) ([]Employee, error) {
	env, err := c.do(ctx, http.MethodGet, readEmployeesPath, nil)
	if err != nil {
		return nil, err
	}

	employees := make([]Employee, 0)
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return employees, nil
	}
	if err := json.Unmarshal(env.Data, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("api responded with error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return envelope{}, &StatusError{Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("decode api response: %w", decodeErr)
	}

	return env, nil
}
