package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, cfg Config) (*Client, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	cfg.Logger = logging.New(&logs, logging.LevelDebug, false)
	client, err := New(cfg)
	require.NoError(t, err)
	return client, &logs
}

func TestClient_JSONReturnsBodyAndSetsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `{"matches":[{"match_id":"1"}]}`)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, Config{})

	raw := client.JSON(context.Background(), srv.URL)
	require.NotNil(t, raw)
	assert.JSONEq(t, `{"matches":[{"match_id":"1"}]}`, string(raw))
	assert.Equal(t, DefaultUserAgent, gotUA.Load())
}

func TestClient_WithoutProxiesSkipsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, Config{})

	require.NotNil(t, client.JSON(context.Background(), srv.URL, WithProxies(false)))
	assert.NotEqual(t, DefaultUserAgent, gotUA.Load())
}

func TestClient_StatusErrorIsLoggedAndAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		code  int
		cause string
	}{
		{name: "client error", code: http.StatusNotFound, cause: "local client error"},
		{name: "server error", code: http.StatusBadGateway, cause: "remote server error"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = io.WriteString(w, `{"error":"nope"}`)
			}))
			defer srv.Close()

			client, logs := newTestClient(t, Config{})

			assert.Nil(t, client.JSON(context.Background(), srv.URL))
			assert.Contains(t, logs.String(), "request raised HTTP error")
			assert.Contains(t, logs.String(), tc.cause)

			_, err := client.Fetch(context.Background(), srv.URL)
			var statusErr *StatusError
			require.True(t, crerr.As(err, &statusErr))
			assert.Equal(t, tc.code, statusErr.Code)
		})
	}
}

func TestClient_WhitelistAndAutoRaise(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":"missing"}`)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, Config{})

	resp := client.Do(context.Background(), srv.URL, WithWhitelist(http.StatusNotFound))
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Nil(t, client.Do(context.Background(), srv.URL, WithWhitelist(http.StatusGone)))

	resp = client.Do(context.Background(), srv.URL, WithAutoRaise(false))
	require.NotNil(t, resp)
	assert.Equal(t, `{"status":"missing"}`, string(resp.Body))
}

func TestClient_InvalidJSONIsAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	client, logs := newTestClient(t, Config{})

	assert.Nil(t, client.JSON(context.Background(), srv.URL))
	assert.Contains(t, logs.String(), "response could not be decoded")

	var target map[string]any
	assert.False(t, client.Decode(context.Background(), srv.URL, &target))
}

func TestClient_ValidatorRejectsDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"matches":[]}`)
	}))
	defer srv.Close()

	client, logs := newTestClient(t, Config{})

	hasMatches := func(doc any) bool {
		obj, ok := doc.(map[string]any)
		if !ok {
			return false
		}
		items, ok := obj["matches"].([]any)
		return ok && len(items) > 0
	}

	assert.Nil(t, client.JSON(context.Background(), srv.URL, WithValidator(hasMatches)))
	assert.Contains(t, logs.String(), "JSON validation result failed")
}

func TestClient_PostSendsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, Config{})

	raw := client.JSON(context.Background(), srv.URL,
		WithMethod("post"),
		WithBody("application/json", []byte(`{"ping":true}`)),
	)
	assert.JSONEq(t, `{"ping":true}`, string(raw))
}

func TestClient_DocumentAndContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html><body><div class="score">IND 245/3</div></body></html>`)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, Config{})

	doc := client.Document(context.Background(), srv.URL)
	require.NotNil(t, doc)
	assert.Equal(t, "IND 245/3", strings.TrimSpace(doc.Find("div.score").Text()))

	content := client.Content(context.Background(), srv.URL)
	assert.True(t, bytes.HasPrefix(content, []byte("<html>")))
}

func TestClient_TimeoutIsLoggedAndAbsent(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client, logs := newTestClient(t, Config{Timeout: 50 * time.Millisecond})

	assert.Nil(t, client.JSON(context.Background(), srv.URL))
	assert.Contains(t, logs.String(), "request timed out")
}

func TestClient_ConnectionRefusedIsLoggedAndAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client, logs := newTestClient(t, Config{})

	assert.Nil(t, client.JSON(context.Background(), addr))
	assert.Contains(t, logs.String(), "unable to connect to remote host")
}

func TestClient_RoutesThroughConfiguredProxy(t *testing.T) {
	t.Parallel()

	var proxiedHost atomic.Value
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxiedHost.Store(r.Host)
		_, _ = io.WriteString(w, `{"via":"proxy"}`)
	}))
	defer proxy.Close()

	client, _ := newTestClient(t, Config{ProxyURL: proxy.URL})

	raw := client.JSON(context.Background(), "http://mapps.cricbuzz.test/cbzios/match/livematches")
	assert.JSONEq(t, `{"via":"proxy"}`, string(raw))
	assert.Equal(t, "mapps.cricbuzz.test", proxiedHost.Load())
}

func TestNew_RejectsMalformedProxy(t *testing.T) {
	t.Parallel()

	_, err := New(Config{ProxyURL: "not a proxy"})
	require.Error(t, err)
}

func TestStatusError_Cause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "remote server error", (&StatusError{Code: 503}).Cause())
	assert.Equal(t, "local client error", (&StatusError{Code: 401}).Cause())
	assert.Equal(t, "unknown", (&StatusError{Code: 302}).Cause())
}
