package pages

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
)

type Feature struct {
	Title       string
	Description string
	Path        string
}

var patientFeatures = []Feature{
	{Title: "My Profile", Description: "View and update your profile information.", Path: constvars.RouteProfile},
	{Title: "My Appointments", Description: "See all your upcoming and past appointments.", Path: constvars.RouteAppointments},
	{Title: "Book Appointment", Description: "Book a new appointment with a doctor.", Path: constvars.RouteBookAppointment},
	{Title: "Doctors Directory", Description: "Browse and search for doctors by specialty.", Path: constvars.RouteDoctors},
	{Title: "Medical History", Description: "View and add your medical history.", Path: constvars.RouteMedicalHistory},
	{Title: "Emergency Contact", Description: "Update your emergency contact details.", Path: constvars.RouteEmergencyContact},
}

var doctorFeatures = []Feature{
	{Title: "My Profile", Description: "View and update your doctor profile.", Path: constvars.RouteProfile},
	{Title: "My Appointments", Description: "View and manage your appointments.", Path: constvars.RouteAppointments},
	{Title: "Patient with medical history", Description: "Browse and search for patients with medical history.", Path: constvars.RoutePatients},
	{Title: "Doctors Directory", Description: "Browse and search for other doctors.", Path: constvars.RouteDoctors},
}

// HomeFeatures is the feature grid for role. Unknown roles get none.
func HomeFeatures(role models.Role) []Feature {
	var features []Feature
	switch role {
	case models.RolePatient:
		features = patientFeatures
	case models.RoleDoctor:
		features = doctorFeatures
	}
	return append([]Feature(nil), features...)
}

type HomePage struct {
	base
	Features []Feature
	Greeting string
}

func NewHomePage(nav *navigation.Context, deps Deps) *HomePage {
	return &HomePage{base: newBase(nav, deps)}
}

func (p *HomePage) Name() string { return constvars.PageHome }

func (p *HomePage) Mount(ctx context.Context) {
	p.Features = HomeFeatures(p.nav.Role)
	if p.nav.Session != nil {
		p.Greeting = p.nav.Session.User.FullName()
	}
}

func (p *HomePage) IsDashboard() bool {
	return p.nav.IsDoctor()
}
