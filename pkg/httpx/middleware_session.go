package httpx

import (
	"net/http"

	"github.com/crewlabs/crewlog/pkg/jwtx"
	"github.com/crewlabs/crewlog/pkg/slogx"
)

// SessionMiddleware resolves the caller's identity from the session cookie.
// It runs on every request: on a valid token it attaches the identity to the
// request context; on any failure the request simply stays anonymous.
// Rejecting anonymous callers is the route guard's job, not this one's.
func SessionMiddleware(codec *jwtx.Codec, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				slogx.FromContext(ctx).Debug("session verify failed", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = ContextWithIdentity(ctx, Identity{
				UserID: claims.UserID(),
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects anonymous callers to the login entry point.
func RequireAuth(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectIfAuthed sends already-authenticated callers to the home entry
// point. Login and registration pages use this so they never re-authenticate
// a resolved identity.
func RedirectIfAuthed(homePath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); ok {
				http.Redirect(w, r, homePath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthJSON is the API flavor of RequireAuth: a 401 body instead of a
// redirect.
func RequireAuthJSON() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); !ok {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "authentication_required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
