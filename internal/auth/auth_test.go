package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestVerifierRoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")

	token, err := v.Issue(Principal{ID: "user-1", Role: RoleAdmin}, time.Hour)
	assert.NoError(t, err)

	p, err := v.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", p.ID)
	assert.Equal(t, RoleAdmin, p.Role)
	assert.True(t, p.IsAdmin())
}

func TestVerifierRejects(t *testing.T) {
	v := NewVerifier("test-secret")

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage token",
			token: func() string { return "not.a.token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewVerifier("other-secret")
				tok, _ := other.Issue(Principal{ID: "user-1", Role: RoleUser}, time.Hour)
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				tok, _ := v.Issue(Principal{ID: "user-1", Role: RoleUser}, -time.Minute)
				return tok
			},
		},
		{
			name: "unknown role",
			token: func() string {
				tok, _ := v.Issue(Principal{ID: "user-1", Role: Role("root")}, time.Hour)
				return tok
			},
		},
		{
			name: "missing subject",
			token: func() string {
				tok, _ := v.Issue(Principal{Role: RoleUser}, time.Hour)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token())
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := NewVerifier("test-secret")

	r := gin.New()
	r.GET("/protected", Middleware(v), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": p.ID})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := v.Issue(Principal{ID: "user-1", Role: RoleUser}, time.Hour)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})
}
