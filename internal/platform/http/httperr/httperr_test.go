package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"loomspace_backend/internal/platform/apperr"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("bad"), http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("no token"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("no"), http.StatusForbidden},
		{"not found", fmt.Errorf("wrap: %w", apperr.NotFound("missing")), http.StatusNotFound},
		{"conflict", apperr.Conflict("dup"), http.StatusConflict},
		{"internal", apperr.Internal("oops"), http.StatusInternalServerError},
		{"plain", errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found keeps its message",
			err:          apperr.NotFound("product not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"product not found"}`,
		},
		{
			name:         "wrapped conflict keeps sentinel message",
			err:          fmt.Errorf("delete: %w", apperr.Conflict("category is in use").Wrap(errors.New("3 products"))),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"category is in use"}`,
		},
		{
			name:         "plain error is hidden",
			err:          errors.New("dial tcp 10.0.0.1:3306: connection refused"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
		{
			name:         "internal apperr is hidden",
			err:          apperr.Internal("failed to sign token"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) {
				Respond(c, tt.err)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRespond_AbortsChain(t *testing.T) {
	called := false
	router := gin.New()
	router.GET("/x",
		func(c *gin.Context) { Respond(c, apperr.Forbidden("admin access required")) },
		func(c *gin.Context) { called = true },
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called, "next handler must not run after Respond")
}

func TestInvalidRequest(t *testing.T) {
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		InvalidRequest(c, errors.New("Key: 'Req.Name' Error:Field validation for 'Name' failed on the 'required' tag"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'required' tag")
}
