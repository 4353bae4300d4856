package toasthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestStaticHandler(t *testing.T) {
	src := flash.StaticSource{
		"info":  "Welcome back",
		"error": "Payment failed",
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	StaticHandler(src, nil, "")(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, ContainerID(toast.CornerTopRight))
	assert.Contains(t, body, "Welcome back")
	assert.Contains(t, body, "Payment failed")
}

func TestStaticHandler_EmptySource(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	StaticHandler(flash.StaticSource{}, nil, toast.CornerBottomRight)(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ContainerID(toast.CornerBottomRight),
		"the empty container still renders so live upgrades have a patch target")
}
