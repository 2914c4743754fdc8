package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, map[string]string{"answer": "hola"})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	if got, want := w.Body.String(), `{"answer":"hola"}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		write    func(c *gin.Context)
		wantCode int
		wantBody string
	}{
		{
			name:     "bad request",
			write:    func(c *gin.Context) { BadRequest(c, "Missing question") },
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Missing question"}`,
		},
		{
			name:     "not found",
			write:    func(c *gin.Context) { NotFound(c, "Car not found") },
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Car not found"}`,
		},
		{
			name:     "internal error hides details",
			write:    InternalError,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.write)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
			if w.Body.String() != tt.wantBody {
				t.Errorf("body = %s, want %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}
