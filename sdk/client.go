package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marover/webpilot/internals/conf"
	"github.com/marover/webpilot/internals/env"
	"github.com/marover/webpilot/internals/schemas"
)

// Client talks to the automation backend over plain JSON/HTTP. The base
// address comes from configuration, never from a hardcoded constant.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is a transport-level failure: the backend answered with a non-2xx
// status code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// BackendError is a logical failure the backend reports inside an HTTP 200
// body, the reference backend's convention for things like a missing task.
type BackendError struct {
	Status  string
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend reported %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend reported %s", e.Status)
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(opts ...Option) *Client {
	baseURL := conf.GetConfig().Backend.BaseURL
	if baseURL == "" {
		baseURL = env.Get().BASE_URL
	}
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// VideoURL builds the playable address for a recorded execution.
func (c *Client) VideoURL(filename string) string {
	return c.baseURL + "/videos/" + url.PathEscape(filename)
}

func (c *Client) ListTasks(ctx context.Context) (*schemas.ListTasksResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/list-tasks", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var payload schemas.ListTasksResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (c *Client) GenerateTask(ctx context.Context, instruction string) (*schemas.Plan, error) {
	body, err := json.Marshal(schemas.GenerateRequest{Instruction: instruction})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/generate-task", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodePlan(resp)
}

func (c *Client) ModifyTask(ctx context.Context, task string, modification string) (*schemas.Plan, error) {
	body, err := json.Marshal(schemas.ModifyRequest{Task: task, Modification: modification})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/modify-task", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodePlan(resp)
}

func (c *Client) ExecuteTask(ctx context.Context, task string) (schemas.ExecuteResult, error) {
	body, err := json.Marshal(schemas.ExecuteRequest{Task: task})
	if err != nil {
		return schemas.ExecuteResult{}, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/execute-task", bytes.NewReader(body))
	if err != nil {
		return schemas.ExecuteResult{}, err
	}
	defer resp.Body.Close()

	return decodeResult(resp)
}

func (c *Client) ExecuteTaskWithVideo(ctx context.Context, task string) (*schemas.VideoResult, error) {
	body, err := json.Marshal(schemas.ExecuteRequest{Task: task})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/execute-task-with-video", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var payload schemas.VideoResult
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (c *Client) DeveloperTask(ctx context.Context, name string) (*schemas.DeveloperTaskResponse, error) {
	path := "/developer-task/" + url.PathEscape(name)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if backendErr := decodeBackendError(data); backendErr != nil {
		return nil, backendErr
	}

	var payload schemas.DeveloperTaskResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (c *Client) ExecuteJSON(ctx context.Context, plan schemas.Plan) (schemas.ExecuteResult, error) {
	body, err := json.Marshal(plan)
	if err != nil {
		return schemas.ExecuteResult{}, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/execute-json", bytes.NewReader(body))
	if err != nil {
		return schemas.ExecuteResult{}, err
	}
	defer resp.Body.Close()

	return decodeResult(resp)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

// decodePlan reads a plan-shaped response. The backend answers 200 for
// logical failures, so the body shape decides success.
func decodePlan(resp *http.Response) (*schemas.Plan, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if backendErr := decodeBackendError(data); backendErr != nil {
		return nil, backendErr
	}

	var plan schemas.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func decodeResult(resp *http.Response) (schemas.ExecuteResult, error) {
	if resp.StatusCode != http.StatusOK {
		return schemas.ExecuteResult{}, responseError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return schemas.ExecuteResult{}, err
	}
	result := schemas.ExecuteResult{Raw: json.RawMessage(data)}
	if backendErr := decodeBackendError(data); backendErr != nil {
		return result, backendErr
	}
	return result, nil
}

func decodeBackendError(data []byte) *BackendError {
	var probe struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Task    string `json:"task"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil
	}
	if probe.Task != "" {
		return nil
	}
	if probe.Status == schemas.ResultStatusError || probe.Status == schemas.ResultStatusFailed {
		return &BackendError{Status: probe.Status, Message: probe.Message}
	}
	return nil
}

func responseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var payload ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && (payload.Message != "" || payload.Code != "") {
		return &APIError{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Message}
	}

	return fmt.Errorf("unexpected status: %s", resp.Status)
}
