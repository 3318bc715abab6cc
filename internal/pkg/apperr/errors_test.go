// internal/pkg/apperr/errors_test.go
package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindIllegalTransition.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, KindConflict.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, KindUpstreamUnavailable.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Kind(0).HTTPStatus())
}

func TestKindStatusText(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", KindIllegalTransition.StatusText())
	assert.Equal(t, "NOT_FOUND", KindNotFound.StatusText())
	assert.Equal(t, "CONFLICT", KindConflict.StatusText())
	assert.Equal(t, "SERVICE_UNAVAILABLE", KindUpstreamUnavailable.StatusText())
	assert.Equal(t, "INTERNAL_SERVER_ERROR", Kind(0).StatusText())
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	base := NotFound("order with id %d not found", 7)
	wrapped := errors.Wrap(base, "while enriching payment")

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Contains(t, wrapped.Error(), "order with id 7 not found")
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUpstreamUnavailable, cause, "call GET %s", "http://localhost:8300/api/orders/1")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}
