package instrument

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	assert.Equal(t, "app", Constant("app")(req))
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var got string
	router := chi.NewRouter()
	router.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = RoutePattern(r)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))
	assert.Equal(t, "/users/{id}", got)
}

func TestRoutePattern_NoRouteContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	assert.Equal(t, unmatchedHandler, RoutePattern(req))
}
