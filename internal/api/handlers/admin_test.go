package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vismify/internal/api/dto"
	"vismify/internal/api/services"
	"vismify/internal/domain"
)

const testJWTKey = "test-secret"

func setupAdminHandlerTest(t *testing.T, password string) (*AdminHandler, *memSubscriberStore) {
	t.Helper()

	hash := ""
	if password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(b)
	}

	store := &memSubscriberStore{}
	handler := NewAdminHandler(
		services.NewAdminAuthService(hash, testJWTKey),
		services.NewNewsletterService(store),
		newTestCatalog(t),
		nil,
	)
	return handler, store
}

func TestAdminHandler_IssueToken(t *testing.T) {
	handler, _ := setupAdminHandlerTest(t, "correct horse")
	e := newTestEcho()

	t.Run("missing password returns 400", func(t *testing.T) {
		c, rec := postJSON(e, "/api/admin/token", `{}`)
		require.NoError(t, handler.IssueToken(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		c, rec := postJSON(e, "/api/admin/token", `{"password":"battery staple"}`)
		require.NoError(t, handler.IssueToken(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct password returns a signed admin token", func(t *testing.T) {
		c, rec := postJSON(e, "/api/admin/token", `{"password":"correct horse"}`)
		require.NoError(t, handler.IssueToken(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.ExpiresAt.IsZero())

		token, err := jwtv5.Parse(resp.Token, func(*jwtv5.Token) (interface{}, error) {
			return []byte(testJWTKey), nil
		})
		require.NoError(t, err)
		sub, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, services.AdminSubject, sub)
	})

	t.Run("no configured hash returns 503", func(t *testing.T) {
		disabled, _ := setupAdminHandlerTest(t, "")
		c, rec := postJSON(e, "/api/admin/token", `{"password":"anything"}`)
		require.NoError(t, disabled.IssueToken(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestAdminHandler_ListSubscribers(t *testing.T) {
	handler, store := setupAdminHandlerTest(t, "pw")
	require.NoError(t, store.Create(context.Background(), &domain.Subscriber{Email: "a@example.com", Language: "en"}))
	require.NoError(t, store.Create(context.Background(), &domain.Subscriber{Email: "b@example.com", Language: "tr"}))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/subscribers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListSubscribers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.Subscriber
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "a@example.com", resp[0].Email)
	assert.Equal(t, "tr", resp[1].Language)
}

func TestAdminHandler_RefreshCatalog(t *testing.T) {
	e := newTestEcho()

	t.Run("reports the reloaded tool count", func(t *testing.T) {
		handler, _ := setupAdminHandlerTest(t, "pw")
		c, rec := postJSON(e, "/api/admin/catalog/refresh", "")
		require.NoError(t, handler.RefreshCatalog(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RefreshResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 8, resp.Tools)
	})

	t.Run("unavailable source returns 503", func(t *testing.T) {
		handler := NewAdminHandler(nil, nil, services.NewCatalogService(failingSource{}, nil), nil)
		c, rec := postJSON(e, "/api/admin/catalog/refresh", "")
		require.NoError(t, handler.RefreshCatalog(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
