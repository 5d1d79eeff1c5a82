package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/quillforge/creator-api/pkg/creator_api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return str
}

func runAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, models.Identity, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	var got models.Identity
	var reached bool

	r := gin.New()
	r.GET("/ping", RequireAuth(), func(c *gin.Context) {
		got = Identity(c)
		reached = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w, got, reached
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	w, _, reached := runAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	w, _, reached := runAuth(t, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestRequireAuth_ExtractsIdentity(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-42", "plan": "premium"})
	w, got, reached := runAuth(t, "Bearer "+token)
	require.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", got.UserId)
	assert.True(t, got.Premium())
}

func TestRequireAuth_DefaultsToFreePlan(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-7"})
	_, got, reached := runAuth(t, "Bearer "+token)
	require.True(t, reached)
	assert.Equal(t, models.PlanFree, got.Plan)
	assert.False(t, got.Premium())
}

func TestRequireAuth_EmptySubjectRejected(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "  "})
	w, _, reached := runAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}
