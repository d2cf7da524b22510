package actionkit

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
)

// ServiceFactory builds the per-request Service an HTTP invocation runs
// against. A service is one unit of work, so the adapter asks for a fresh
// one on every request.
type ServiceFactory func(*http.Request) (*Service, error)

// Decoder extracts the action's call data from an HTTP request.
type Decoder func(*http.Request) (any, error)

// Encoder writes the handler's result to the HTTP response.
type Encoder func(http.ResponseWriter, any) error

// HTTPAdapter exposes registered actions as HTTP handlers. It is a
// convenience front-end over the pipeline, not part of it: the adapter only
// decodes the request, invokes the action, and maps the error taxonomy to
// status codes. It works with chi, gorilla/mux, and the standard library
// alike.
type HTTPAdapter struct {
	newService   ServiceFactory
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// HTTPAdapterOption configures the HTTPAdapter.
type HTTPAdapterOption func(*HTTPAdapter)

// WithErrorHandler sets a custom error handler for the adapter.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) HTTPAdapterOption {
	return func(a *HTTPAdapter) {
		a.errorHandler = fn
	}
}

// NewHTTPAdapter creates an adapter building one service per request through
// newService.
//
// Example:
//
//	adapter := actionkit.NewHTTPAdapter(func(r *http.Request) (*actionkit.Service, error) {
//	    return actionkit.NewService(registry, actionkit.Config{
//	        Name:    "orders",
//	        Context: contextFromRequest(r),
//	    }), nil
//	})
//
//	mux.Handle("POST /orders",
//	    adapter.Action("create_order", actionkit.JSONDecoder(func() any { return &Order{} }), actionkit.JSONEncoder))
func NewHTTPAdapter(newService ServiceFactory, opts ...HTTPAdapterOption) *HTTPAdapter {
	a := &HTTPAdapter{
		newService:   newService,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Action returns an http.Handler invoking the named action. The request's
// client IP, user agent, and X-Request-ID header are placed on the context
// so the audit trail picks them up.
func (a *HTTPAdapter) Action(name string, decode Decoder, encode Encoder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithRequestMetadata(r.Context(), r)

		svc, err := a.newService(r)
		if err != nil {
			a.errorHandler(w, r, err)
			return
		}

		data, err := decode(r)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		result, err := svc.Invoke(ctx, name, data)
		if err != nil {
			a.errorHandler(w, r, err)
			return
		}

		if err := encode(w, result); err != nil {
			a.errorHandler(w, r, err)
		}
	})
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if IsPermissionDenied(err) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if IsUnknownAction(err) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if IsValidationError(err) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// WithRequestMetadata copies the request's audit metadata (client IP, user
// agent, X-Request-ID) onto the context.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return WithInvocationMetadata(ctx, InvocationMetadata{
		IPAddress: host,
		UserAgent: r.UserAgent(),
		RequestID: r.Header.Get("X-Request-ID"),
	})
}

// JSONDecoder returns a Decoder unmarshalling the request body into a fresh
// value from factory.
//
// Example:
//
//	actionkit.JSONDecoder(func() any { return &Order{} })
func JSONDecoder(factory func() any) Decoder {
	return func(r *http.Request) (any, error) {
		target := factory()
		if err := json.NewDecoder(r.Body).Decode(target); err != nil {
			return nil, err
		}
		return target, nil
	}
}

// JSONEncoder writes the handler result as a JSON response.
func JSONEncoder(w http.ResponseWriter, result any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(result)
}
