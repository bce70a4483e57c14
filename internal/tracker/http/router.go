package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/crewlabs/crewlog/internal/tracker/push"
	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/internal/tracker/store"
	"github.com/crewlabs/crewlog/pkg/httpx"
	"github.com/crewlabs/crewlog/pkg/jwtx"
	"github.com/crewlabs/crewlog/pkg/slogx"
)

// SessionCookieName carries the signed session credential. The cookie is
// opaque to the client, http-only, and valid for the codec's TTL.
const SessionCookieName = "crewlog_session"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService    *service.UserService
	ProjectService *service.ProjectService
	TaskService    *service.TaskService
	StatsService   *service.StatsService
	Publisher      *StatsPublisher
	Hub            *push.Hub
}

func NewRouter(
	codec *jwtx.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// The session middleware runs on every request; it attaches identity or
	// leaves the request anonymous. Route guards decide what to do with
	// anonymous callers.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionMiddleware(codec, SessionCookieName),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDashboard()
	r.registerProjects()
	r.registerTasks()
	r.registerAPI()
	r.registerPush()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService: r.UserService,
		Codec:       r.codec,
	}

	// Entry points are inverted for authenticated callers: they go home
	// instead of re-authenticating.
	r.Mux.Handle("GET /register",
		httpx.Chain(http.HandlerFunc(h.ShowRegister),
			httpx.RedirectIfAuthed("/"),
		),
	)
	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.ShowLogin),
			httpx.RedirectIfAuthed("/"),
		),
	)

	// Credential submissions get the strict profile to slow brute force.
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /logout", http.HandlerFunc(h.HandleLogout))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /{$}",
		httpx.Chain(h,
			httpx.RequireAuth("/login"),
		),
	)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{
		ProjectService: r.ProjectService,
		TaskService:    r.TaskService,
		Publisher:      r.Publisher,
	}

	guard := httpx.RequireAuth("/login")

	r.Mux.Handle("GET /projects", httpx.Chain(http.HandlerFunc(h.HandleList), guard))
	r.Mux.Handle("GET /projects/new", httpx.Chain(http.HandlerFunc(h.ShowNew), guard))
	r.Mux.Handle("POST /projects", httpx.Chain(http.HandlerFunc(h.HandleCreate), guard))
	r.Mux.Handle("GET /projects/{id}", httpx.Chain(http.HandlerFunc(h.HandleDetail), guard))
	r.Mux.Handle("POST /projects/{id}/tasks", httpx.Chain(http.HandlerFunc(h.HandleCreateTask), guard))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{
		TaskService: r.TaskService,
		Publisher:   r.Publisher,
	}

	guard := httpx.RequireAuth("/login")

	r.Mux.Handle("GET /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), guard))
	r.Mux.Handle("POST /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), guard))
	r.Mux.Handle("POST /tasks/{id}/toggle", httpx.Chain(http.HandlerFunc(h.HandleToggle), guard))
}

func (r *Router) registerAPI() {
	h := &ProjectAPIHandler{
		ProjectService: r.ProjectService,
		TaskService:    r.TaskService,
		Publisher:      r.Publisher,
	}

	guard := httpx.RequireAuthJSON()

	r.Mux.Handle("GET /api/projects", httpx.Chain(http.HandlerFunc(h.HandleList), guard))
	r.Mux.Handle("POST /api/projects", httpx.Chain(http.HandlerFunc(h.HandleCreate), guard))
	r.Mux.Handle("GET /api/projects/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), guard))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion, r.store))
}
