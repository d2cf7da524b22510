package actionkit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Value string `json:"value"`
}

func newEchoAdapter(t *testing.T, registry *Registry, perms ...Permission) *HTTPAdapter {
	t.Helper()
	return NewHTTPAdapter(func(r *http.Request) (*Service, error) {
		return NewService(registry, Config{
			Name:               "test",
			DefaultPermissions: perms,
		}), nil
	})
}

func TestHTTPAdapterInvokesAction(t *testing.T) {
	registry := NewRegistry()
	registry.Register("echo", echoHandler)

	adapter := newEchoAdapter(t, registry)
	handler := adapter.Action("echo",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"value":"hello"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got echoPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hello", got.Value)
}

func TestHTTPAdapterPermissionDenied(t *testing.T) {
	registry := NewRegistry()
	registry.Register("guarded", echoHandler)

	adapter := newEchoAdapter(t, registry, denyFunc("no"))
	handler := adapter.Action("guarded",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTPAdapterValidationFailure(t *testing.T) {
	registry := NewRegistry()
	registry.Register("orders", echoHandler).
		Validate(ValidatorFunc(func(ctx context.Context, vctx any, data any) error {
			return NewValidationError("order requires order items")
		}))

	adapter := newEchoAdapter(t, registry)
	handler := adapter.Action("orders",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "order requires order items")
}

func TestHTTPAdapterUnknownAction(t *testing.T) {
	registry := NewRegistry()

	adapter := newEchoAdapter(t, registry)
	handler := adapter.Action("missing",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/missing", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPAdapterBadRequestBody(t *testing.T) {
	registry := NewRegistry()
	registry.Register("echo", echoHandler)

	adapter := newEchoAdapter(t, registry)
	handler := adapter.Action("echo",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPAdapterHandlerErrorIs500(t *testing.T) {
	registry := NewRegistry()
	registry.Register("boom", func(ctx context.Context, svc *Service, data any) (any, error) {
		return nil, assert.AnError
	})

	adapter := newEchoAdapter(t, registry)
	handler := adapter.Action("boom",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/boom", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHTTPAdapterCustomErrorHandler(t *testing.T) {
	registry := NewRegistry()
	registry.Register("guarded", echoHandler).Permissions(denyFunc("no"))

	var gotErr error
	adapter := NewHTTPAdapter(
		func(r *http.Request) (*Service, error) {
			return NewService(registry, Config{Name: "test"}), nil
		},
		WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			gotErr = err
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	handler := adapter.Action("guarded",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, IsPermissionDenied(gotErr))
}

// TestHTTPAdapterRequestMetadata verifies client IP, user agent, and request
// ID flow from the request into the audit trail.
func TestHTTPAdapterRequestMetadata(t *testing.T) {
	registry := NewRegistry()
	registry.Register("echo", echoHandler)

	audit := &capturingAuditLogger{}
	dispatcher := NewDispatcher(WithAuditLogger(audit))

	adapter := NewHTTPAdapter(func(r *http.Request) (*Service, error) {
		return NewService(registry, Config{Name: "test"}, WithDispatcher(dispatcher)), nil
	})

	handler := adapter.Action("echo",
		JSONDecoder(func() any { return &echoPayload{} }), JSONEncoder)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.RemoteAddr = "10.1.2.3:51234"
	req.Header.Set("User-Agent", "curl/8.0")
	req.Header.Set("X-Request-ID", "req-42")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "10.1.2.3", audit.entries[0].IPAddress)
	assert.Equal(t, "curl/8.0", audit.entries[0].UserAgent)
	assert.Equal(t, "req-42", audit.entries[0].RequestID)
}

func TestWithRequestMetadataBareRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3"

	ctx := WithRequestMetadata(context.Background(), req)
	assert.Equal(t, "10.1.2.3", GetIPAddress(ctx))
}
