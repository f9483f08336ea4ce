//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks a {"detail": "..."} body. An empty expectedDetail skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse struct {
		Detail string `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedDetail != "" {
		assert.Equal(t, expectedDetail, errorResponse.Detail)
	}
}

// AssertFieldErrors checks a 400 field-error map and returns it.
func AssertFieldErrors(t *testing.T, w *httptest.ResponseRecorder, fields ...string) map[string][]string {
	t.Helper()

	assert.Equal(t, 400, w.Code, fmt.Sprintf("Expected status 400, got %d. Response: %s", w.Code, w.Body.String()))

	var fieldErrors map[string][]string
	err := json.Unmarshal(w.Body.Bytes(), &fieldErrors)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode field errors: %s", w.Body.String()))

	for _, f := range fields {
		assert.NotEmpty(t, fieldErrors[f], "expected an error for field %q in %s", f, w.Body.String())
	}
	return fieldErrors
}
