package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crewlabs/crewlog/internal/tracker/push"
	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/internal/tracker/store/drivers/sqlite"
	"github.com/crewlabs/crewlog/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "crewlog_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec([]byte("test-session-secret"), "crewlog")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(codec, "test", st, logger)
	hub := push.NewHub()
	stats := &service.StatsService{Store: st}

	r.UserService = &service.UserService{Store: st}
	r.ProjectService = &service.ProjectService{Store: st}
	r.TaskService = &service.TaskService{Store: st}
	r.StatsService = stats
	r.Hub = hub
	r.Publisher = &StatsPublisher{Hub: hub, StatsService: stats}
	r.ApplyRoutes()
	return r
}

func postForm(h http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

// registerUser signs up a fresh user and returns their session cookie.
func registerUser(t *testing.T, h http.Handler, email string) *http.Cookie {
	t.Helper()

	rec := postForm(h, "/register", url.Values{
		"name":     {"Test User"},
		"email":    {email},
		"password": {"a-long-enough-password"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}

func TestRegisterFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("successful signup sets an http-only session", func(t *testing.T) {
		cookie := registerUser(t, router, "alice@example.com")
		require.True(t, cookie.HttpOnly)
		require.NotEmpty(t, cookie.Value)
	})

	t.Run("missing fields re-render the form inline", func(t *testing.T) {
		rec := postForm(router, "/register", url.Values{
			"name":  {"No Password"},
			"email": {"nopass@example.com"},
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "All fields are required.")
	})

	t.Run("duplicate email re-renders with the inline message", func(t *testing.T) {
		rec := postForm(router, "/register", url.Values{
			"name":     {"Alice Again"},
			"email":    {"alice@example.com"},
			"password": {"another-password"},
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "That email is already registered.")
	})
}

func TestLoginFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	registerUser(t, router, "bob@example.com")

	t.Run("valid credentials set a session and go home", func(t *testing.T) {
		rec := postForm(router, "/login", url.Values{
			"email":    {"bob@example.com"},
			"password": {"a-long-enough-password"},
		}, nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
		cookie := sessionCookie(t, rec)
		require.True(t, cookie.HttpOnly)
	})

	t.Run("wrong password shows one generic message", func(t *testing.T) {
		rec := postForm(router, "/login", url.Values{
			"email":    {"bob@example.com"},
			"password": {"wrong"},
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid email or password.")
	})

	t.Run("unknown email shows the same message", func(t *testing.T) {
		rec := postForm(router, "/login", url.Values{
			"email":    {"stranger@example.com"},
			"password": {"whatever"},
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid email or password.")
	})
}

func TestAuthGuards(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	cookie := registerUser(t, router, "carol@example.com")

	t.Run("anonymous callers are sent to login", func(t *testing.T) {
		for _, path := range []string{"/", "/projects", "/projects/new", "/tasks"} {
			rec := get(router, path, nil)
			require.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
			require.Equal(t, "/login", rec.Header().Get("Location"), "path %s", path)
		}
	})

	t.Run("a tampered session stays anonymous", func(t *testing.T) {
		rec := get(router, "/", &http.Cookie{Name: SessionCookieName, Value: "garbage-token"})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated callers skip the login page", func(t *testing.T) {
		for _, path := range []string{"/login", "/register"} {
			rec := get(router, path, cookie)
			require.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
			require.Equal(t, "/", rec.Header().Get("Location"), "path %s", path)
		}
	})

	t.Run("authenticated callers reach the dashboard", func(t *testing.T) {
		rec := get(router, "/", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Dashboard")
	})

	t.Run("logout clears the session", func(t *testing.T) {
		rec := postForm(router, "/logout", url.Values{}, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
		cleared := sessionCookie(t, rec)
		require.Empty(t, cleared.Value)
		require.Negative(t, cleared.MaxAge)
	})
}

func TestProjectPages(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	cookie := registerUser(t, router, "dave@example.com")

	t.Run("create then list", func(t *testing.T) {
		rec := postForm(router, "/projects", url.Values{
			"title":       {"Migration"},
			"description": {"move the fleet"},
		}, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/projects", rec.Header().Get("Location"))

		rec = get(router, "/projects", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Migration")
	})

	t.Run("blank title re-renders the form", func(t *testing.T) {
		rec := postForm(router, "/projects", url.Values{
			"title": {"   "},
		}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Title is required.")
	})

	t.Run("unknown project id renders the error view", func(t *testing.T) {
		rec := get(router, "/projects/01ARZ3NDEKTSV4RRFFQ69G5FAV", cookie)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestTaskPages(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	cookie := registerUser(t, router, "erin@example.com")

	rec := postForm(router, "/projects", url.Values{"title": {"Board"}}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// Pull the project id back out through the JSON API.
	listRec := get(router, "/api/projects", cookie)
	require.Equal(t, http.StatusOK, listRec.Code)
	body := listRec.Body.String()
	require.Contains(t, body, "Board")
	start := strings.Index(body, `"id":"`) + len(`"id":"`)
	projectID := body[start : start+26]

	t.Run("create a task from the detail page", func(t *testing.T) {
		rec := postForm(router, "/projects/"+projectID+"/tasks", url.Values{
			"title": {"paint the fence"},
		}, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/projects/"+projectID, rec.Header().Get("Location"))

		detail := get(router, "/projects/"+projectID, cookie)
		require.Equal(t, http.StatusOK, detail.Code)
		require.Contains(t, detail.Body.String(), "paint the fence")
	})

	t.Run("task list shows the owning project title", func(t *testing.T) {
		rec := get(router, "/tasks", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "paint the fence")
		require.Contains(t, rec.Body.String(), "Board")
	})

	t.Run("blank task title re-renders the detail page", func(t *testing.T) {
		rec := postForm(router, "/projects/"+projectID+"/tasks", url.Values{
			"title": {""},
		}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Task title is required.")
	})

	t.Run("toggling an absent task renders the error view", func(t *testing.T) {
		rec := postForm(router, "/tasks/01ARZ3NDEKTSV4RRFFQ69G5FAV/toggle", url.Values{}, cookie)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLivez(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := get(router, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
