// Package vision talks to the Google Cloud Vision images:annotate endpoint.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
)

const (
	DefaultEndpoint         = "https://vision.googleapis.com/v1/images:annotate"
	DefaultLabelMaxResults  = 10
	DefaultObjectMaxResults = 10

	// maxErrorBody bounds how much of an upstream error body is kept.
	maxErrorBody = 64 << 10
)

// APIKeyFunc returns the annotation service API key. It is called on every
// request so that a rotated key is picked up without a restart.
type APIKeyFunc func() string

type Config struct {
	Endpoint         string
	LabelMaxResults  int
	ObjectMaxResults int
}

type Client struct {
	conf       Config
	apiKey     APIKeyFunc
	httpClient *http.Client
}

func NewClient(conf Config, apiKey APIKeyFunc, httpClient *http.Client) *Client {
	if conf.Endpoint == "" {
		conf.Endpoint = DefaultEndpoint
	}
	if conf.LabelMaxResults <= 0 {
		conf.LabelMaxResults = DefaultLabelMaxResults
	}
	if conf.ObjectMaxResults <= 0 {
		conf.ObjectMaxResults = DefaultObjectMaxResults
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		conf:       conf,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Annotate sends img to the annotation service once and normalizes the
// answer. Fields missing from a successful response become empty values.
func (c *Client) Annotate(ctx context.Context, img []byte) (domain.VisionResult, error) {
	if len(img) == 0 {
		return domain.VisionResult{}, ErrInvalidInput
	}

	key := ""
	if c.apiKey != nil {
		key = strings.TrimSpace(c.apiKey())
	}
	if key == "" {
		return domain.VisionResult{}, &UpstreamError{Message: ErrMissingAPIKey.Error(), Err: ErrMissingAPIKey}
	}

	body, err := json.Marshal(c.buildRequest(img))
	if err != nil {
		return domain.VisionResult{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	endpoint, err := url.Parse(c.conf.Endpoint)
	if err != nil {
		return domain.VisionResult{}, fmt.Errorf("url.Parse -> %w", err)
	}
	query := endpoint.Query()
	query.Set("key", key)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return domain.VisionResult{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.VisionResult{}, &UpstreamError{Message: "request failed", Err: redactKey(err, key)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.VisionResult{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	var decoded annotateResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.VisionResult{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "undecodable response body",
			Err:        err,
		}
	}

	return normalize(decoded), nil
}

func (c *Client) buildRequest(img []byte) annotateRequest {
	return annotateRequest{
		Requests: []imageRequest{
			{
				Image: image{Content: base64.StdEncoding.EncodeToString(img)},
				Features: []feature{
					{Type: featureLabelDetection, MaxResults: c.conf.LabelMaxResults},
					{Type: featureObjectLocalization, MaxResults: c.conf.ObjectMaxResults},
					{Type: featureTextDetection},
				},
			},
		},
	}
}

func normalize(resp annotateResponse) domain.VisionResult {
	result := domain.VisionResult{
		Labels:  []domain.Label{},
		Objects: []domain.LocalizedObject{},
	}

	if len(resp.Responses) == 0 {
		zap.L().Warn("annotation service returned no image responses")
		return result
	}

	first := resp.Responses[0]
	if first.Error != nil {
		zap.L().Warn("annotation service reported an image error",
			zap.Int("code", first.Error.Code),
			zap.String("message", first.Error.Message),
		)
	}

	if first.LabelAnnotations != nil {
		result.Labels = first.LabelAnnotations
	}
	if first.LocalizedObjectAnnotations != nil {
		result.Objects = first.LocalizedObjectAnnotations
	}
	if len(first.TextAnnotations) > 0 {
		result.Text = first.TextAnnotations[0].Description
	}

	return result
}

// redactKey keeps the API key out of transport errors, which embed the URL.
func redactKey(err error, key string) error {
	msg := err.Error()
	if !strings.Contains(msg, key) {
		return err
	}

	return fmt.Errorf("%s", strings.ReplaceAll(msg, key, "REDACTED"))
}
