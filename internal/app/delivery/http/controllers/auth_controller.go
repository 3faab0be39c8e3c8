package controllers

import (
	"net/http"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	*PageSupport
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(support *PageSupport, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		PageSupport: support,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	page := pages.NewLoginPage(navOf(r), ctrl.Deps)
	page.Next = utils.SafeRedirectTarget(r.URL.Query().Get("next"), "")
	if r.URL.Query().Get("registered") != "" {
		page.Registered()
	}
	ctrl.render(w, r, constvars.RouteLogin, constvars.PageLogin, page)
}

// Login signs the browser in under a fresh session id, so an id handed out
// before login never carries a signed-in session.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	request := new(requests.LoginUser)
	if !ctrl.bindForm(w, r, request) {
		return
	}
	next := utils.SafeRedirectTarget(r.PostForm.Get("next"), constvars.RouteHome)

	sessionID := utils.GenerateSessionID()
	session, err := ctrl.AuthUsecase.Login(r.Context(), sessionID, request)
	if err != nil {
		page := pages.NewLoginPage(nav, ctrl.Deps)
		page.Next = utils.SafeRedirectTarget(r.PostForm.Get("next"), "")
		page.Fail(request, err)
		ctrl.render(w, r, constvars.RouteLogin, constvars.PageLogin, page)
		return
	}

	if nav.SignedIn() {
		if err := ctrl.Middlewares.SessionStore.Clear(r.Context(), nav.SessionID); err != nil {
			ctrl.Log.Warn("AuthController.Login error clearing previous session",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
				zap.Error(err),
			)
		}
	}
	ctrl.Registry.Unmount(nav.SessionID)
	http.SetCookie(w, ctrl.Middlewares.SessionCookie(sessionID))

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
		zap.String(constvars.LoggingRoleKey, session.User.Role),
	)
	middlewares.RedirectSeeOther(w, r, next)
}

func (ctrl *AuthController) SignupPage(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, r, constvars.RouteSignup, constvars.PageSignup, pages.NewSignupPage(navOf(r), ctrl.Deps))
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	if !ctrl.bindForm(w, r, request) {
		return
	}

	err := ctrl.AuthUsecase.Register(r.Context(), request)
	if err != nil {
		page := pages.NewSignupPage(navOf(r), ctrl.Deps)
		page.Fail(request, err)
		ctrl.render(w, r, constvars.RouteSignup, constvars.PageSignup, page)
		return
	}

	middlewares.RedirectSeeOther(w, r, constvars.RouteLogin+"?registered=1")
}

// Logout always ends on the login page, even when the Session Store could
// not be cleared.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)

	err := ctrl.AuthUsecase.Logout(r.Context(), nav.SessionID, nav.Session)
	if err != nil {
		ctrl.Log.Error("AuthController.Logout error calling authUsecase.Logout",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}

	ctrl.Registry.Unmount(nav.SessionID)
	http.SetCookie(w, ctrl.Middlewares.ExpiredSessionCookie())
	middlewares.RedirectSeeOther(w, r, constvars.RouteLogin)
}
