package waitlist

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonu/portfolio-api/pkg/clientip"
)

func newTestRouter(repo Repository, sender *fakeSender, dev bool) http.Handler {
	svc, _ := newTestService(repo, sender)
	r := chi.NewRouter()
	r.Use(clientip.Middleware)
	r.Route("/api", func(api chi.Router) {
		NewHandler(svc, dev).Register(api)
	})
	return r
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:54321"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestJoinEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("new signup returns 201", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		sender := &fakeSender{}
		h := newTestRouter(repo, sender, false)

		rec := postJSON(t, h, "/api/waitlist", `{"email":"jane@example.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Success   bool   `json:"success"`
			Message   string `json:"message"`
			Timestamp string `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Successfully added to waitlist", body.Message)
		assert.NotEmpty(t, body.Timestamp)

		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "203.0.113.7", repo.inserted[0].IPAddress)
		assert.Len(t, sender.sent, 1)
	})

	t.Run("duplicate signup returns 200", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		repo.records["jane@example.com"] = &Record{Email: "jane@example.com", Status: StatusActive}
		sender := &fakeSender{}
		h := newTestRouter(repo, sender, false)

		rec := postJSON(t, h, "/api/waitlist", `{"email":"jane@example.com"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success       bool   `json:"success"`
			Message       string `json:"message"`
			AlreadyExists bool   `json:"alreadyExists"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.True(t, body.AlreadyExists)
		assert.Equal(t, "You are already on our waitlist!", body.Message)
		assert.Empty(t, sender.sent)
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		t.Parallel()

		h := newTestRouter(newFakeRepo(), &fakeSender{}, false)

		rec := postJSON(t, h, "/api/waitlist", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Email is required"}`, rec.Body.String())
	})

	t.Run("utm parameters fall back to the query string", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		h := newTestRouter(repo, &fakeSender{}, false)

		rec := postJSON(t, h,
			"/api/waitlist?utm_source=twitter&utm_medium=social&utm_campaign=teaser",
			`{"email":"jane@example.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "twitter", repo.inserted[0].UTMSource)
		assert.Equal(t, "social", repo.inserted[0].UTMMedium)
		assert.Equal(t, "teaser", repo.inserted[0].UTMCampaign)
	})

	t.Run("body utm values win over query", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		h := newTestRouter(repo, &fakeSender{}, false)

		rec := postJSON(t, h, "/api/waitlist?utm_source=twitter",
			`{"email":"jane@example.com","utm_source":"newsletter"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "newsletter", repo.inserted[0].UTMSource)
	})
}

func TestWaitlistHealthEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("operational", func(t *testing.T) {
		t.Parallel()

		h := newTestRouter(newFakeRepo(), &fakeSender{}, false)

		req := httptest.NewRequest(http.MethodGet, "/api/waitlist/health", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body healthBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Waitlist system is operational", body.Message)
		assert.Equal(t, "MongoDB", body.Storage)
		assert.NotEmpty(t, body.Timestamp)
	})

	t.Run("storage down", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		repo.pingErr = assert.AnError
		h := newTestRouter(repo, &fakeSender{}, false)

		req := httptest.NewRequest(http.MethodGet, "/api/waitlist/health", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body healthBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Waitlist system health check failed", body.Message)
		assert.Empty(t, body.Error)
	})
}
