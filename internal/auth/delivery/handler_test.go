package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "journal-backend/internal/auth/domain"
	authdto "journal-backend/internal/auth/dto"
	"journal-backend/internal/auth/repository"
	"journal-backend/internal/auth/usecase"
	"journal-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))

	cfg := &config.Config{BcryptCost: 4, SessionValidity: 30 * 24 * time.Hour}
	authUc := usecase.NewAuthUsecase(repository.NewUserRepository(db), cfg)
	h := NewAuthHandler(authUc)

	r := gin.New()
	r.POST("/register/", h.Register)
	r.POST("/login/", h.Login)
	r.POST("/session/", h.RenewSession)
	r.POST("/logout/", AuthMiddleware(authUc), h.Logout)
	r.GET("/me/", AuthMiddleware(authUc), h.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine) authdto.SessionResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/register/", `{"email":"a@x.com","password":"password"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session authdto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotEmpty(t, session.SessionToken)
	require.NotEmpty(t, session.UpdateToken)
	return session
}

func TestRegisterReturnsTokenTriple(t *testing.T) {
	r := newTestServer(t)
	session := registerUser(t, r)

	assert.NotEqual(t, session.SessionToken, session.UpdateToken)
	assert.True(t, session.SessionExpiration.After(time.Now()))
}

func TestRegisterDuplicate(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, r)

	w := doJSON(r, http.MethodPost, "/register/", `{"email":"a@x.com","password":"other"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestLoginBadCredentials(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, r)

	w := doJSON(r, http.MethodPost, "/login/", `{"email":"a@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login/", `{"email":"b@x.com","password":"password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionRenewalScenario(t *testing.T) {
	r := newTestServer(t)
	session := registerUser(t, r)

	// Renew with the update token in the bearer header.
	w := doJSON(r, http.MethodPost, "/session/", "", session.UpdateToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var renewed authdto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &renewed))
	assert.NotEqual(t, session.UpdateToken, renewed.UpdateToken)
	assert.NotEqual(t, session.SessionToken, renewed.SessionToken)

	// The original update token has been consumed.
	w = doJSON(r, http.MethodPost, "/session/", "", session.UpdateToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The renewed session token authenticates.
	w = doJSON(r, http.MethodGet, "/me/", "", renewed.SessionToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutScenario(t *testing.T) {
	r := newTestServer(t)
	session := registerUser(t, r)

	w := doJSON(r, http.MethodPost, "/logout/", "", session.SessionToken)
	require.Equal(t, http.StatusOK, w.Code)

	// The old session token no longer authenticates anywhere.
	w = doJSON(r, http.MethodGet, "/me/", "", session.SessionToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid session token"}`, w.Body.String())

	// Neither does the old update token.
	w = doJSON(r, http.MethodPost, "/session/", "", session.UpdateToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedEndpointHeaderErrors(t *testing.T) {
	r := newTestServer(t)
	registerUser(t, r)

	// No Authorization header at all.
	w := doJSON(r, http.MethodGet, "/me/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong scheme.
	req := httptest.NewRequest(http.MethodGet, "/me/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bearer with nothing behind it.
	req = httptest.NewRequest(http.MethodGet, "/me/", nil)
	req.Header.Set("Authorization", "Bearer   ")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header string
		token  string
		err    error
	}{
		{"valid", "Bearer abc", "abc", nil},
		{"surrounding whitespace", "Bearer  abc ", "abc", nil},
		{"missing", "", "", authdomain.ErrMissingAuthHeader},
		{"no scheme", "abc", "", authdomain.ErrMalformedAuthHeader},
		{"wrong scheme", "Basic abc", "", authdomain.ErrMalformedAuthHeader},
		{"empty token", "Bearer  ", "", authdomain.ErrMalformedAuthHeader},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}

			token, err := ExtractBearerToken(c)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.token, token)
		})
	}
}
