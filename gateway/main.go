package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/genieiq/cli/configs"
	clierrors "github.com/genieiq/cli/errors"
)

const (
	CLI_SOURCE_HEADER = "cli"
)

type Gateway struct {
	cfg        *configs.Configs
	httpClient *http.Client
}

func New() *Gateway {
	httpClient := &http.Client{
		Timeout: time.Second * 30,
	}
	return &Gateway{
		cfg:        configs.New(),
		httpClient: httpClient,
	}
}

// apiError is a non-2xx response from the workspace API.
type apiError struct {
	StatusCode int
	Code       string `json:"error_code"`
	Message    string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("workspace returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("workspace returned status %d", e.StatusCode)
}

func (g *Gateway) authorize(header http.Header) error {
	header.Add("x-source", CLI_SOURCE_HEADER)

	user, err := g.cfg.GetUserConfigs()
	if err != nil {
		return err
	}
	if user.Token == "" {
		return clierrors.UserConfigNotFound
	}
	header.Add("authorization", fmt.Sprintf("Bearer %s", user.Token))

	return nil
}

func (g *Gateway) host() (string, error) {
	user, err := g.cfg.GetUserConfigs()
	if err != nil {
		return "", err
	}
	return user.Host, nil
}

func (g *Gateway) get(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *Gateway) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

func (g *Gateway) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	host, err := g.host()
	if err != nil {
		return err
	}

	var requestBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&requestBody).Encode(body); err != nil {
			return errors.Wrap(err, "encode body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", host, path), &requestBody)
	if err != nil {
		return err
	}

	if err := g.authorize(req.Header); err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json; charset=utf-8")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return clierrors.Transport(err)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return clierrors.Transport(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &apiError{StatusCode: res.StatusCode}
		// Best effort: the body may not be the structured error shape
		json.NewDecoder(&buf).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(&buf).Decode(out); err != nil {
			return errors.Wrap(err, "decoding response")
		}
	}

	return nil
}

func statusOf(err error) (int, string) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Message
	}
	return 0, ""
}
