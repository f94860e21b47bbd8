package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dungeon-api/internal/errors"
)

func TestErrorMessage(t *testing.T) {
	err := errors.NotFound("layout not found")
	assert.Equal(t, "NOT_FOUND: layout not found", err.Error())

	wrapped := errors.Wrap(stderrors.New("dial tcp: refused"), "failed to load layout")
	assert.Equal(t, "INTERNAL: failed to load layout: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFoundf("layout %s not found", "lay_1")
	outer := errors.Wrap(inner, "failed to load layout")

	assert.Equal(t, errors.CodeNotFound, outer.Code)
	assert.True(t, errors.IsNotFound(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeUnavailable, "ignored"))
}

func TestWrapWithCode(t *testing.T) {
	inner := errors.Internal("boom").WithMeta("attempt", 3)
	outer := errors.WrapWithCode(inner, errors.CodeUnavailable, "backend down")

	assert.Equal(t, errors.CodeUnavailable, outer.Code)
	assert.Equal(t, 3, outer.Meta["attempt"], "inner metadata carries forward")
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "bad", errors.GetMessage(errors.InvalidArgument("bad")))
	assert.Equal(t, "plain", errors.GetMessage(stderrors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, errors.CodeAlreadyExists.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.NotFound("a")
	b := errors.NotFound("b")
	c := errors.Internal("c")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
