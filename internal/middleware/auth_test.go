package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protegida", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"profile_id": c.GetString("profileId")})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", "clave-de-prueba")
	defer os.Unsetenv("JWT_SECRET")

	router := newAuthTestRouter()

	token, err := GenerateToken("profile-1")
	if err != nil {
		t.Fatalf("error al generar el token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, se esperaba 200", recorder.Code)
	}
	if body := recorder.Body.String(); body != `{"profile_id":"profile-1"}` {
		t.Errorf("cuerpo inesperado: %s", body)
	}
}

func TestAuthMiddlewareWithoutToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "clave-de-prueba")
	defer os.Unsetenv("JWT_SECRET")

	router := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, se esperaba 401", recorder.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "clave-de-prueba")
	defer os.Unsetenv("JWT_SECRET")

	router := newAuthTestRouter()

	// Token firmado con otra clave
	os.Setenv("JWT_SECRET", "otra-clave")
	token, err := GenerateToken("profile-1")
	if err != nil {
		t.Fatalf("error al generar el token: %v", err)
	}
	os.Setenv("JWT_SECRET", "clave-de-prueba")

	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, se esperaba 401", recorder.Code)
	}
}
