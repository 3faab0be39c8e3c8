package navigation

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/roles"
	"clinic-portal/internal/pkg/constvars"
)

// Context is resolved once per request from the session cookie and handed to
// every page and template explicitly.
type Context struct {
	SessionID string
	Session   *models.Session
	Role      models.Role
	Theme     string
}

func NewContext(sessionID string, session *models.Session, theme string) *Context {
	return &Context{
		SessionID: sessionID,
		Session:   session,
		Role:      roles.Resolve(session),
		Theme:     theme,
	}
}

func (c *Context) Token() string {
	if c == nil || c.Session == nil {
		return ""
	}
	return c.Session.Token
}

func (c *Context) SignedIn() bool {
	return c != nil && c.Session != nil
}

func (c *Context) IsPatient() bool {
	return c != nil && c.Role == models.RolePatient
}

func (c *Context) IsDoctor() bool {
	return c != nil && c.Role == models.RoleDoctor
}

func WithContext(ctx context.Context, nav *Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_NAVIGATION_KEY, nav)
}

// FromContext returns the navigation context of the request, or an anonymous
// one when none was attached.
func FromContext(ctx context.Context) *Context {
	if nav, ok := ctx.Value(constvars.CONTEXT_NAVIGATION_KEY).(*Context); ok && nav != nil {
		return nav
	}
	return NewContext("", nil, constvars.ThemeLight)
}
