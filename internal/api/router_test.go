package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arundaon/blog-api/internal/api"
	apimw "github.com/arundaon/blog-api/internal/api/middleware"
	"github.com/arundaon/blog-api/internal/config"
	"github.com/arundaon/blog-api/internal/mocks"
	"github.com/arundaon/blog-api/internal/service"
	"github.com/arundaon/blog-api/internal/service/auth"
)

// envelope mirrors the response body shape: both keys are always present
// and exactly one is populated.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// testEnv wires the handlers against the in-memory stores with real
// password hashing and real token signing, routed the same way the server
// binary routes them.
type testEnv struct {
	router    http.Handler
	userStore *mocks.MemoryUserStore
	postStore *mocks.MemoryPostStore
	tokens    auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userStore, postStore := mocks.NewMemoryStores()

	tokens, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            "test-secret-string-that-is-32-chars!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher()
	txRunner := mocks.PassthroughTxRunner{}

	userService := service.NewUserService(userStore, hasher, hasher, tokens, txRunner, nil)
	postService := service.NewPostService(postStore, service.NewOwnerPolicy(), txRunner, nil)

	userHandler := api.NewUserHandler(userService, nil)
	postHandler := api.NewPostHandler(postService, nil)
	authMiddleware := apimw.NewAuthMiddleware(tokens, userStore)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Get("/posts", postHandler.List)
		r.Get("/posts/{postId}", postHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/posts", postHandler.Create)
			r.Put("/posts/{postId}", postHandler.Update)
			r.Delete("/posts/{postId}", postHandler.Delete)
		})
	})

	return &testEnv{
		router:    r,
		userStore: userStore,
		postStore: postStore,
		tokens:    tokens,
	}
}

// do performs a request against the test router. A non-empty token is sent
// as a bearer credential; a non-nil body is JSON-encoded.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses the response body and asserts the envelope
// invariant: both keys present, exactly one populated.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "data")
	require.Contains(t, raw, "errors")

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	dataSet := string(env.Data) != "null"
	errorsSet := string(env.Errors) != "null"
	require.NotEqual(t, dataSet, errorsSet,
		"exactly one of data and errors must be populated, body: %s", rec.Body.String())
	return env
}

// errorMessage returns the errors field as a string.
func errorMessage(t *testing.T, env envelope) string {
	t.Helper()

	var msg string
	require.NoError(t, json.Unmarshal(env.Errors, &msg))
	return msg
}

// register creates an account through the API.
func (e *testEnv) register(t *testing.T, name, email, password string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "register failed: %s", rec.Body.String())
}

// login authenticates through the API and returns the issued token.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	env := decodeEnvelope(t, rec)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// registerAndLogin is the common setup for authenticated requests.
func (e *testEnv) registerAndLogin(t *testing.T, name, email string) string {
	t.Helper()

	e.register(t, name, email, "password123")
	return e.login(t, email, "password123")
}

// createPost creates a post through the API and returns its id, read back
// from the listing.
func (e *testEnv) createPost(t *testing.T, token, content string) int64 {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/posts", token, map[string]string{"content": content})
	require.Equal(t, http.StatusOK, rec.Code, "create post failed: %s", rec.Body.String())

	listRec := e.do(t, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, listRec.Code)

	env := decodeEnvelope(t, listRec)
	var posts []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.NotEmpty(t, posts)
	return posts[len(posts)-1].ID
}

// assertError decodes the envelope and checks status and message in one go.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()

	assert.Equal(t, wantStatus, rec.Code, "body: %s", rec.Body.String())
	env := decodeEnvelope(t, rec)
	assert.Equal(t, wantMessage, errorMessage(t, env))
}
