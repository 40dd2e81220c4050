package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJson(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteJson(recorder, 201, map[string]int{"index": 3})

	assert.Equal(t, 201, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"index": 3}`, recorder.Body.String())
}

func TestReadJson(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "value"}`))
	dest := payload{}

	require.NoError(t, ReadJson(request, &dest))
	assert.Equal(t, "value", dest.Name)
}

func TestReadJsonRejectsUnknownFields(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest("POST", "/", strings.NewReader(`{"nmae": "typo"}`))
	dest := payload{}

	assert.Error(t, ReadJson(request, &dest))
}

func TestWriteError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, 400, "bad input")

	assert.Equal(t, 400, recorder.Code)
	assert.JSONEq(t, `{"message": "bad input"}`, recorder.Body.String())
}
