package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "github.com/mkuznecov/shopify_ecom/internal/middleware/auth"
	"github.com/mkuznecov/shopify_ecom/internal/models"
	"github.com/mkuznecov/shopify_ecom/internal/mykafka"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/service"
	"github.com/mkuznecov/shopify_ecom/internal/service/search"
	"github.com/mkuznecov/shopify_ecom/internal/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *tokens.Service
}

// newTestEnv wires the full router against an in-memory database, so requests
// pass through routing, the token middleware and the handlers exactly like in
// production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))

	store := &repo.GormRepo{DB: db}
	tokenSvc := &tokens.Service{Secret: []byte("test-jwt-secret"), TTL: time.Hour}
	producer := &mykafka.Producer{}

	authSvc := &service.AuthService{Repo: store, Tokens: tokenSvc, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: store, Producer: producer}
	searchSvc := &search.Service{Repo: store}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		ProductHandler: &CatalogHTTP{Svc: catalogSvc, Search: searchSvc},
		TokenMW:        authmw.NewTokenMiddleware(tokenSvc),
	})

	return &testEnv{T: t, E: e, DB: db, Tokens: tokenSvc}
}

func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) registerAndLogin(name, email, password string) string {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/login", map[string]string{
		"email": email, "password": password,
	}, "")
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.Token)
	return resp.Token
}
