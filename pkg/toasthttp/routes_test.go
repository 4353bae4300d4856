package toasthttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestDismissHandler(t *testing.T) {
	m := toast.NewManager()

	id, err := m.Emit(context.Background(), toast.KindInfo, "Saved")
	require.NoError(t, err)

	form := url.Values{"id": {id}}
	r := httptest.NewRequest(http.MethodPost, "/toasts/dismiss", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	DismissHandler(m)(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, m.List(""))
}

func TestDismissHandler_UnknownID(t *testing.T) {
	m := toast.NewManager()

	form := url.Values{"id": {"never-existed"}}
	r := httptest.NewRequest(http.MethodPost, "/toasts/dismiss", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	DismissHandler(m)(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code, "dismissing an unknown id is a no-op, not an error")
}

func TestDismissHandler_MissingID(t *testing.T) {
	m := toast.NewManager()

	r := httptest.NewRequest(http.MethodPost, "/toasts/dismiss", nil)
	w := httptest.NewRecorder()

	DismissHandler(m)(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMount(t *testing.T) {
	m := toast.NewManager()

	id, err := m.Emit(context.Background(), toast.KindInfo, "Saved")
	require.NoError(t, err)

	router := chi.NewRouter()
	Mount(router, m, DefaultRenderer)

	form := url.Values{"id": {id}}
	r := httptest.NewRequest(http.MethodPost, "/toasts/dismiss", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, m.List(""))
}
