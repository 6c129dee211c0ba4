package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"messageboard/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalAuthMiddleware(secret))
	router.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SubjectKey))
	})
	router.POST("/reload", RequireToken(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func call(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOptionalAuthMiddleware(t *testing.T) {
	req := require.New(t)
	router := newRouter()
	token, err := jwt.NewSigner(secret, "operator", time.Minute).GenerateToken()
	req.NoError(err)

	w := call(router, http.MethodGet, "/open", token)
	req.Equal(http.StatusOK, w.Code)
	req.Equal("operator", w.Body.String())

	w = call(router, http.MethodGet, "/open", "garbage")
	req.Equal(http.StatusOK, w.Code)
	req.Empty(w.Body.String())
}

func TestRequireToken(t *testing.T) {
	req := require.New(t)
	router := newRouter()

	req.Equal(http.StatusUnauthorized, call(router, http.MethodPost, "/reload", "").Code)

	other, err := jwt.NewSigner("other-secret", "operator", time.Minute).GenerateToken()
	req.NoError(err)
	req.Equal(http.StatusUnauthorized, call(router, http.MethodPost, "/reload", other).Code)

	token, err := jwt.NewSigner(secret, "operator", time.Minute).GenerateToken()
	req.NoError(err)
	req.Equal(http.StatusNoContent, call(router, http.MethodPost, "/reload", token).Code)
}
