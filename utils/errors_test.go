package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflictf("taken")))
	assert.Equal(t, KindInvalidState, KindOf(InvalidStatef("wrong state")))
	assert.Equal(t, KindUnsupported, KindOf(Unsupportedf("not offered")))
	assert.Equal(t, KindInsufficientStock, KindOf(InsufficientStockError(2, 5)))

	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("registering consumption: %w", InsufficientStockError(4, 5))
	assert.True(t, IsKind(wrapped, KindInsufficientStock))

	var typed *Error
	require.True(t, errors.As(wrapped, &typed))
	assert.Equal(t, 4, typed.Available)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validationf("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundf("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflictf("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(InsufficientStockError(0, 1)))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(InvalidStatef("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(Unsupportedf("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
