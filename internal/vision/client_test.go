package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func staticKey(key string) APIKeyFunc {
	return func() string { return key }
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(func() {
		srv.Client().CloseIdleConnections()
		srv.Close()
	})

	client := NewClient(Config{Endpoint: srv.URL + "/v1/images:annotate"}, staticKey("test-key"), srv.Client())
	return client, &calls
}

func TestAnnotate_SendsFeatureRequest(t *testing.T) {
	img := []byte("fake-jpeg-bytes")

	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images:annotate", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req annotateRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) || !assert.Len(t, req.Requests, 1) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, base64.StdEncoding.EncodeToString(img), req.Requests[0].Image.Content)
		assert.Equal(t, []feature{
			{Type: "LABEL_DETECTION", MaxResults: 10},
			{Type: "OBJECT_LOCALIZATION", MaxResults: 10},
			{Type: "TEXT_DETECTION"},
		}, req.Requests[0].Features)

		_, _ = w.Write([]byte(`{"responses":[{}]}`))
	})

	_, err := client.Annotate(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestAnnotate_NormalizesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"responses": [{
				"labelAnnotations": [
					{"mid": "/m/01", "description": "Fire extinguisher", "score": 0.93, "topicality": 0.93},
					{"description": "Red", "score": 0.71}
				],
				"localizedObjectAnnotations": [
					{"mid": "/m/02", "name": "Axe", "score": 0.8,
					 "boundingPoly": {"normalizedVertices": [{"x": 0.1, "y": 0.2}, {"x": 0.5, "y": 0.6}]}}
				],
				"textAnnotations": [
					{"locale": "en", "description": "AXE\nFIRST AID KIT"},
					{"description": "AXE"}
				]
			}]
		}`))
	})

	result, err := client.Annotate(context.Background(), []byte{0xff, 0xd8})
	require.NoError(t, err)

	require.Len(t, result.Labels, 2)
	assert.Equal(t, "Fire extinguisher", result.Labels[0].Description)
	assert.InDelta(t, 0.93, result.Labels[0].Score, 1e-9)
	assert.Equal(t, "/m/01", result.Labels[0].MID)

	require.Len(t, result.Objects, 1)
	assert.Equal(t, "Axe", result.Objects[0].Name)
	require.Len(t, result.Objects[0].BoundingPoly.NormalizedVertices, 2)

	assert.Equal(t, "AXE\nFIRST AID KIT", result.Text)
}

func TestAnnotate_MissingFieldsAreEmpty(t *testing.T) {
	bodies := map[string]string{
		"empty response object": `{"responses":[{}]}`,
		"no responses":          `{"responses":[]}`,
		"no responses key":      `{}`,
		"image level error":     `{"responses":[{"error":{"code":3,"message":"Bad image data."}}]}`,
		"empty text list":       `{"responses":[{"textAnnotations":[]}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			result, err := client.Annotate(context.Background(), []byte("img"))
			require.NoError(t, err)
			assert.NotNil(t, result.Labels)
			assert.Empty(t, result.Labels)
			assert.NotNil(t, result.Objects)
			assert.Empty(t, result.Objects)
			assert.Equal(t, "", result.Text)
		})
	}
}

func TestAnnotate_EmptyImage(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("annotation service must not be called")
	})

	_, err := client.Annotate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestAnnotate_UpstreamStatusError(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid."}}`))
	})

	_, err := client.Annotate(context.Background(), []byte("img"))
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Message, "API key not valid.")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retry")
}

func TestAnnotate_UndecodableBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Annotate(context.Background(), []byte("img"))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusOK, upstreamErr.StatusCode)
}

func TestAnnotate_MissingAPIKey(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL}, staticKey("  "), srv.Client())

	_, err := client.Annotate(context.Background(), []byte("img"))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestAnnotate_KeyReadPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"responses":[{}]}`))
	}))
	defer srv.Close()

	key := "first"
	client := NewClient(Config{Endpoint: srv.URL}, func() string { return key }, srv.Client())

	_, err := client.Annotate(context.Background(), []byte("img"))
	require.NoError(t, err)
	key = "second"
	_, err = client.Annotate(context.Background(), []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, seen)
	srv.Client().CloseIdleConnections()
}

func TestAnnotate_TransportErrorRedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	client := NewClient(Config{Endpoint: endpoint}, staticKey("super-secret"), nil)

	_, err := client.Annotate(context.Background(), []byte("img"))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Zero(t, upstreamErr.StatusCode)
	assert.NotContains(t, err.Error(), "super-secret")
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{}, nil, nil)

	assert.Equal(t, DefaultEndpoint, client.conf.Endpoint)
	assert.Equal(t, DefaultLabelMaxResults, client.conf.LabelMaxResults)
	assert.Equal(t, DefaultObjectMaxResults, client.conf.ObjectMaxResults)
	assert.Equal(t, http.DefaultClient, client.httpClient)
}
