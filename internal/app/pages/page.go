// Package pages holds the per-session state of every portal page: what was
// fetched, what is being edited and which notice to show next.
//
// A page is never shared between browser sessions and is only touched while
// the Registry holds its slot, so page methods need no locking of their own.
package pages

import (
	"context"
	"time"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type Page interface {
	Name() string
	Mount(ctx context.Context)
	TakeNotice() *Notice
}

// Saver is a page with a write action that must not run twice at once for
// the same session.
type Saver interface {
	Page
	// RejectSave shows the page's save failure without calling the backend.
	RejectSave()
}

// Deps are the collaborators pages reach the backend through.
type Deps struct {
	Patients     contracts.PatientClient
	Doctors      contracts.DoctorClient
	Appointments contracts.AppointmentClient
	Events       contracts.EventPublisher
	Log          *zap.Logger
	Now          func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// base carries what every page needs besides its own data.
type base struct {
	noticeBoard
	nav  *navigation.Context
	deps Deps
}

func newBase(nav *navigation.Context, deps Deps) base {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	return base{nav: nav, deps: deps}
}

func (b *base) token() string {
	return b.nav.Token()
}

func (b *base) logError(ctx context.Context, msg string, err error) {
	b.deps.Log.Error(msg,
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, b.nav.Role.String()),
		zap.Error(err),
	)
}
