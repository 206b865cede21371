package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, " xml ": FormatXML, "text": FormatText} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusCreated, StatusCode(successResponse(t)))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(errorResponse(t)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(Response{}))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Write(rec, errorResponse(t), FormatJSON, Compact()))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":422,"title":"422 Unprocessable Entity","status":"error","data":{},"type":"validation_errors","message":"Please correct highlighted errors below.","validation_errors":{"validation":"messages"},"notify":{"status":"error","message":"Record not added due to error."},"extra":{"something":"extra"}}`, rec.Body.String())
}

func TestWriteXML(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Write(rec, successResponse(t), FormatXML, Compact()))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<response><code>201</code><title>201 Created</title><status>success</status><data><simple>data</simple></data><notify></notify><extra></extra></response>`, rec.Body.String())
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Write(rec, successResponse(t), FormatText))

	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "201 Created", rec.Body.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	err := Write(rec, successResponse(t), Format("csv"))
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSendResetsBuilder(t *testing.T) {
	b, err := New().Success(202, map[string]any{"job": "queued"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, Send(rec, b, FormatJSON))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"job": "queued"`)
	assert.Equal(t, StatusNone, b.Status())
}

func TestSendEmptyBuilder(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, Send(rec, New(), FormatJSON, Compact()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `{}`, rec.Body.String())
}
