package appointments

import (
	"context"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentClient struct {
	client *httpclient.Client
	Log    *zap.Logger
}

func NewAppointmentClient(baseUrl string, logger *zap.Logger, opts httpclient.Options) contracts.AppointmentClient {
	return &appointmentClient{
		client: httpclient.New(constvars.ServiceAppointment, baseUrl, logger, opts),
		Log:    logger,
	}
}

func (c *appointmentClient) ListMyAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentClient.ListMyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []models.Appointment
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   constvars.PathAppointmentsMe,
		Token:  token,
	}, &appointments)
	if err != nil {
		c.Log.Error("appointmentClient.ListMyAppointments error calling appointment service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.ListMyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentClient) BookAppointment(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentClient.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("doctor_id", request.DoctorID),
	)

	appointment := new(models.Appointment)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.PathAppointments,
		Token:  token,
		Body:   request,
	}, appointment)
	if err != nil {
		c.Log.Error("appointmentClient.BookAppointment error calling appointment service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("appointment_id", appointment.ID),
	)
	return appointment, nil
}
