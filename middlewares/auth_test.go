package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeVerifier map[string]*utils.Claims

func (f fakeVerifier) Verify(token string) (*utils.Claims, error) {
	if c, ok := f[token]; ok {
		return c, nil
	}
	return nil, errors.New("unknown token")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := fakeVerifier{
		"buyer":  {UserID: 1, Role: "CLIENTE"},
		"seller": {UserID: 2, Role: "PROVEEDOR"},
	}

	r := gin.New()
	r.GET("/any", AuthMiddleware(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": utils.CurrentUserID(c)})
	})
	r.GET("/sellers", AuthMiddleware(verifier, "PROVEEDOR"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	do := func(path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	message := func(w *httptest.ResponseRecorder) string {
		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body.Message
	}

	t.Run("missing header", func(t *testing.T) {
		w := do("/any", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, AuthFailedMessage, message(w))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := do("/any", "Basic buyer")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token gets the generic message", func(t *testing.T) {
		w := do("/any", "Bearer forged")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, AuthFailedMessage, message(w))
	})

	t.Run("valid token exposes the user id", func(t *testing.T) {
		w := do("/any", "Bearer buyer")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"uid":1}`, w.Body.String())
	})

	t.Run("role gate", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, do("/sellers", "Bearer buyer").Code)
		require.Equal(t, http.StatusNoContent, do("/sellers", "Bearer seller").Code)
	})
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
