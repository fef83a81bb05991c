package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixself/pixself-api/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("order not found")
	wrapped := errors.Wrap(base, "failed to load order")

	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(wrapped))
	assert.True(t, errors.IsCode(wrapped, errors.CodeNotFound))
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapForeignError(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("disk full"), "failed to save")
	assert.Equal(t, errors.CodeInternal, errors.CodeOf(wrapped))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	err := errors.WrapWithCode(stderrors.New("connection refused"), errors.CodeUnavailable, "redis down")
	assert.True(t, errors.IsCode(err, errors.CodeUnavailable))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.CodeOf(nil))
	assert.Equal(t, errors.CodeInternal, errors.CodeOf(stderrors.New("plain")))
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(errors.InvalidArgument("bad")))
}

func TestValidationBuilder(t *testing.T) {
	t.Run("empty builder yields nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("recorded fields yield invalid argument", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("Name").
			InvalidField("Size", "must be positive").
			Build()
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
		assert.Contains(t, err.Error(), "Name")
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, errors.HTTPStatus(nil))
	assert.Equal(t, http.StatusNotFound, errors.HTTPStatus(errors.NotFound("gone")))
	assert.Equal(t, http.StatusBadRequest, errors.HTTPStatus(errors.InvalidArgument("bad")))
	assert.Equal(t, http.StatusConflict, errors.HTTPStatus(errors.Newf(errors.CodeAlreadyExists, "dup")))
	assert.Equal(t, http.StatusInternalServerError, errors.HTTPStatus(stderrors.New("plain")))
}

func TestWriteHTTP(t *testing.T) {
	t.Run("client error keeps its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		errors.WriteHTTP(rec, errors.InvalidArgument("part is required"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "part is required")
	})

	t.Run("internal causes are masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		errors.WriteHTTP(rec, errors.Wrap(stderrors.New("dsn=root:hunter2"), "query failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})
}
