package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/crewlabs/crewlog/internal/tracker/service"
	"github.com/crewlabs/crewlog/pkg/jwtx"
	"github.com/crewlabs/crewlog/pkg/slogx"
)

type AuthHandler struct {
	UserService *service.UserService
	Codec       *jwtx.Codec
}

type registerView struct {
	Name  string
	Email string
	Error string
}

type loginView struct {
	Email string
	Error string
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register.html", registerView{})
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "login.html", loginView{})
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	view := registerView{Name: name, Email: email}
	if name == "" || email == "" || password == "" {
		view.Error = "All fields are required."
		render(w, r, http.StatusOK, "register.html", view)
		return
	}

	user, err := h.UserService.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			view.Error = "That email is already registered."
			render(w, r, http.StatusOK, "register.html", view)
			return
		}
		renderError(w, r, err)
		return
	}

	if err := h.issueSession(w, user.ID, user.Email); err != nil {
		renderError(w, r, err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	view := loginView{Email: email}
	if email == "" || password == "" {
		view.Error = "Email and password are required."
		render(w, r, http.StatusOK, "login.html", view)
		return
	}

	user, err := h.UserService.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message for unknown email and wrong password.
			view.Error = "Invalid email or password."
			render(w, r, http.StatusOK, "login.html", view)
			return
		}
		renderError(w, r, err)
		return
	}

	if err := h.issueSession(w, user.ID, user.Email); err != nil {
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, userID, email string) error {
	token, err := h.Codec.Issue(userID, email)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(jwtx.DefaultSessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
