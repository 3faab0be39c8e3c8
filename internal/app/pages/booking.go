package pages

import (
	"context"
	"time"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// appointmentTimeLayout is what a datetime-local input submits.
const appointmentTimeLayout = "2006-01-02T15:04"

type BookingPage struct {
	base
	Resource[[]models.Doctor]
	Form   requests.BookAppointment
	Booked *models.Appointment
}

func NewBookingPage(nav *navigation.Context, deps Deps) *BookingPage {
	return &BookingPage{base: newBase(nav, deps)}
}

func (p *BookingPage) Name() string { return constvars.PageBookAppointment }

func (p *BookingPage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadDoctorsFailed, func(ctx context.Context) ([]models.Doctor, error) {
		return p.deps.Doctors.ListDoctors(ctx, p.token())
	})
	if err != nil {
		p.logError(ctx, "BookingPage.Mount error calling doctorClient.ListDoctors", err)
	}
}

// MinAppointmentTime is the earliest value the time input accepts.
func (p *BookingPage) MinAppointmentTime() string {
	return p.deps.now().Format(appointmentTimeLayout)
}

// Book checks the form before anything is sent. On success the form is
// cleared; on failure it is kept as typed.
func (p *BookingPage) Book(ctx context.Context, request *requests.BookAppointment) error {
	utils.SanitizeBookAppointmentRequest(request)
	p.Form = *request
	p.Booked = nil

	if err := utils.ValidateStruct(request); err != nil {
		p.notifyError(exceptions.FormatFirstValidationError(err))
		return exceptions.ErrInputValidation(err)
	}
	if p.inPast(request.AppointmentTime) {
		p.notifyError(constvars.MsgAppointmentInPast)
		return exceptions.ErrAppointmentInPast()
	}

	createRequest, err := utils.BuildCreateAppointmentRequest(request)
	if err != nil {
		p.notifyError(constvars.MsgBookAppointmentFailed)
		return exceptions.ErrInputValidation(err)
	}

	appointment, err := p.deps.Appointments.BookAppointment(ctx, p.token(), createRequest)
	if err != nil {
		p.logError(ctx, "BookingPage.Book error calling appointmentClient.BookAppointment", err)
		p.notifyError(exceptions.ClientMessageOr(err, constvars.MsgBookAppointmentFailed))
		return err
	}

	p.Form = requests.BookAppointment{}
	p.Booked = appointment
	p.notifySuccess(constvars.MsgAppointmentBooked)
	p.publishBooked(ctx, createRequest, appointment)
	return nil
}

func (p *BookingPage) RejectSave() {
	p.notifyError(constvars.MsgBookAppointmentFailed)
}

// inPast accepts times it cannot parse; the backend has the final word on
// those.
func (p *BookingPage) inPast(value string) bool {
	now := p.deps.now()
	at, err := time.ParseInLocation(appointmentTimeLayout, value, now.Location())
	if err != nil {
		return false
	}
	return at.Before(now.Truncate(time.Minute))
}

func (p *BookingPage) publishBooked(ctx context.Context, request *requests.CreateAppointment, appointment *models.Appointment) {
	if p.deps.Events == nil {
		return
	}

	data := map[string]interface{}{
		"doctorId":        request.DoctorID,
		"appointmentTime": request.AppointmentTime,
	}
	if appointment != nil && appointment.ID != 0 {
		data["appointmentId"] = appointment.ID
	}
	event := &models.PortalEvent{
		Type: constvars.EventAppointmentBooked,
		Role: p.nav.Role.String(),
		Data: data,
	}
	if p.nav.Session != nil {
		event.Subject = utils.TokenSubject(p.nav.Session.Token)
	}

	if err := p.deps.Events.Publish(ctx, event); err != nil {
		p.deps.Log.Warn("BookingPage.Book error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}
