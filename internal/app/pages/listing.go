package pages

import (
	"context"
	"strings"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
)

type searchable interface {
	SearchFields() []string
}

// Listing is a fetched list narrowed by a search query. Filtering never
// fetches again.
type Listing[T searchable] struct {
	Resource[[]T]
	Query string
}

func (l *Listing[T]) Filter(query string) {
	l.Query = strings.TrimSpace(query)
}

func (l *Listing[T]) Visible() []T {
	if !l.IsReady() {
		return nil
	}
	visible := make([]T, 0, len(l.Data))
	for _, item := range l.Data {
		if utils.MatchesQuery(l.Query, item.SearchFields()...) {
			visible = append(visible, item)
		}
	}
	return visible
}

func (l *Listing[T]) emptyMessage(none, noMatch string) string {
	if !l.IsReady() {
		return ""
	}
	if len(l.Data) == 0 {
		return none
	}
	if len(l.Visible()) == 0 {
		return noMatch
	}
	return ""
}

type AppointmentsPage struct {
	base
	Listing[models.Appointment]
}

func NewAppointmentsPage(nav *navigation.Context, deps Deps) *AppointmentsPage {
	return &AppointmentsPage{base: newBase(nav, deps)}
}

func (p *AppointmentsPage) Name() string { return constvars.PageAppointments }

func (p *AppointmentsPage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadAppointmentsFailed, func(ctx context.Context) ([]models.Appointment, error) {
		return p.deps.Appointments.ListMyAppointments(ctx, p.token())
	})
	if err != nil {
		p.logError(ctx, "AppointmentsPage.Mount error calling appointmentClient.ListMyAppointments", err)
	}
}

func (p *AppointmentsPage) EmptyMessage() string {
	return p.emptyMessage(constvars.MsgNoAppointments, constvars.MsgNoMatchingAppointments)
}

// DoctorsPage lists every doctor, or the doctors of one specialty when the
// page was mounted with one.
type DoctorsPage struct {
	base
	Listing[models.Doctor]
	Specialty string
}

func NewDoctorsPage(nav *navigation.Context, deps Deps, specialty string) *DoctorsPage {
	return &DoctorsPage{base: newBase(nav, deps), Specialty: strings.TrimSpace(specialty)}
}

func (p *DoctorsPage) Name() string { return constvars.PageDoctors }

func (p *DoctorsPage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadDoctorsFailed, func(ctx context.Context) ([]models.Doctor, error) {
		if p.Specialty != "" {
			return p.deps.Doctors.ListDoctorsBySpecialty(ctx, p.token(), p.Specialty)
		}
		return p.deps.Doctors.ListDoctors(ctx, p.token())
	})
	if err != nil {
		p.logError(ctx, "DoctorsPage.Mount error listing doctors", err)
	}
}

func (p *DoctorsPage) EmptyMessage() string {
	return p.emptyMessage(constvars.MsgNoDoctors, constvars.MsgNoDoctors)
}

type PatientsPage struct {
	base
	Listing[models.PatientProfile]
}

func NewPatientsPage(nav *navigation.Context, deps Deps) *PatientsPage {
	return &PatientsPage{base: newBase(nav, deps)}
}

func (p *PatientsPage) Name() string { return constvars.PagePatients }

func (p *PatientsPage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadPatientsFailed, func(ctx context.Context) ([]models.PatientProfile, error) {
		return p.deps.Patients.ListPatients(ctx, p.token())
	})
	if err != nil {
		p.logError(ctx, "PatientsPage.Mount error calling patientClient.ListPatients", err)
	}
}

func (p *PatientsPage) EmptyMessage() string {
	return p.emptyMessage(constvars.MsgNoPatients, constvars.MsgNoPatients)
}
