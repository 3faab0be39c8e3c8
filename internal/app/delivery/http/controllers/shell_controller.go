package controllers

import (
	"context"
	"net/http"
	"time"

	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/pages"
	"clinic-portal/internal/app/services/roles"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60

// ShellController serves what surrounds the pages: the entry redirect, the
// home grid, the theme toggle and the health check.
type ShellController struct {
	*PageSupport
	Redis *redis.Client
}

func NewShellController(support *PageSupport, redisClient *redis.Client) *ShellController {
	return &ShellController{
		PageSupport: support,
		Redis:       redisClient,
	}
}

func (ctrl *ShellController) Root(w http.ResponseWriter, r *http.Request) {
	if roles.IsKnown(navOf(r).Session) {
		middlewares.RedirectSeeOther(w, r, constvars.RouteHome)
		return
	}
	middlewares.RedirectSeeOther(w, r, constvars.RouteLogin)
}

func (ctrl *ShellController) Home(w http.ResponseWriter, r *http.Request) {
	nav := navOf(r)
	pages.Mount(r.Context(), ctrl.Registry, nav.SessionID, pages.NewHomePage(nav, ctrl.Deps), func(page *pages.HomePage) {
		ctrl.render(w, r, constvars.RouteHome, constvars.PageHome, page)
	})
}

// Theme flips between light and dark and goes back where the form was.
func (ctrl *ShellController) Theme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ctrl.Middlewares.RenderError(w, r, exceptions.ErrCannotParseForm(err))
		return
	}

	theme := constvars.ThemeDark
	if middlewares.ThemeOf(r) == constvars.ThemeDark {
		theme = constvars.ThemeLight
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.ThemeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middlewares.RedirectSeeOther(w, r, utils.SafeRedirectTarget(r.PostForm.Get("next"), constvars.RouteRoot))
}

func (ctrl *ShellController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if ctrl.Redis != nil {
		if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRedisGet(err))
			return
		}
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", nil)
}

func (ctrl *ShellController) NotFound(w http.ResponseWriter, r *http.Request) {
	ctrl.Middlewares.RenderNotFound(w, r)
}
