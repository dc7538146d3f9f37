package mt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nordweb/internal/domain"
	"nordweb/internal/ports/output"
)

var _ output.MachineTranslator = (*Client)(nil)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 512
)

// Client talks to a DeepL-compatible translation endpoint
// (form-encoded text/source_lang/target_lang, JSON response).
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient returns nil when endpoint is empty so callers can treat machine
// translation as disabled.
func NewClient(endpoint, apiKey string, httpClient *http.Client) *Client {
	if strings.TrimSpace(endpoint) == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{endpoint: endpoint, apiKey: apiKey, http: httpClient}
}

type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

func (c *Client) Translate(ctx context.Context, text string, source, target domain.Language) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", strings.ToUpper(source.String()))
	form.Set("target_lang", strings.ToUpper(target.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("mt: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("mt: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("mt: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("mt: decode response: %w", err)
	}
	if len(out.Translations) == 0 {
		return "", fmt.Errorf("mt: empty response")
	}
	return out.Translations[0].Text, nil
}
