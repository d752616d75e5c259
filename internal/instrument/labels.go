package instrument

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedHandler labels requests that matched no chi route.
const unmatchedHandler = "unmatched"

// Labeler derives the handler label of a request. It runs after the response
// was produced, so routing information is available.
type Labeler func(r *http.Request) string

// Constant labels every request with name.
func Constant(name string) Labeler {
	return func(*http.Request) string { return name }
}

// RoutePattern labels requests with the chi route pattern they matched
// (e.g. "/users/{id}") instead of the raw path, keeping label cardinality bounded.
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedHandler
}
