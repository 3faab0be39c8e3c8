package pages

import (
	"context"

	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
)

// LoginPage is built per request; it only remembers the typed username.
type LoginPage struct {
	base
	Username string
	Next     string
}

func NewLoginPage(nav *navigation.Context, deps Deps) *LoginPage {
	return &LoginPage{base: newBase(nav, deps)}
}

func (p *LoginPage) Name() string { return constvars.PageLogin }

func (p *LoginPage) Mount(ctx context.Context) {}

// Fail shows the backend's reason when it gave one.
func (p *LoginPage) Fail(request *requests.LoginUser, err error) {
	p.Username = request.Username
	p.notifyError(exceptions.ClientMessageOr(err, constvars.MsgLoginFailed))
}

func (p *LoginPage) Registered() {
	p.notifySuccess(constvars.MsgRegistrationSucceeded)
}

type SignupPage struct {
	base
	Username string
	Email    string
	Role     string
}

func NewSignupPage(nav *navigation.Context, deps Deps) *SignupPage {
	return &SignupPage{base: newBase(nav, deps), Role: "PATIENT"}
}

func (p *SignupPage) Name() string { return constvars.PageSignup }

func (p *SignupPage) Mount(ctx context.Context) {}

// Fail keeps everything typed except the password.
func (p *SignupPage) Fail(request *requests.RegisterUser, err error) {
	p.Username = request.Username
	p.Email = request.Email
	if request.Role != "" {
		p.Role = request.Role
	}
	p.notifyError(exceptions.ClientMessageOr(err, constvars.MsgRegistrationFailed))
}
