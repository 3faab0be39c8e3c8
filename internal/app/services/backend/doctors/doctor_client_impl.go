package doctors

import (
	"context"
	"net/url"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorClient struct {
	client *httpclient.Client
	Log    *zap.Logger
}

func NewDoctorClient(baseUrl string, logger *zap.Logger, opts httpclient.Options) contracts.DoctorClient {
	return &doctorClient{
		client: httpclient.New(constvars.ServiceDoctor, baseUrl, logger, opts),
		Log:    logger,
	}
}

func (c *doctorClient) GetProfile(ctx context.Context, token string) (*models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor := new(models.Doctor)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   constvars.PathDoctorsMe,
		Token:  token,
	}, doctor)
	if err != nil {
		c.Log.Error("doctorClient.GetProfile error calling doctor service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("doctorClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return doctor, nil
}

func (c *doctorClient) UpdateProfile(ctx context.Context, token string, profile *models.Doctor) (*models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	updated := new(models.Doctor)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodPut,
		Path:   constvars.PathDoctorsMe,
		Token:  token,
		Body:   profile,
	}, updated)
	if err != nil {
		c.Log.Error("doctorClient.UpdateProfile error calling doctor service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("doctorClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return updated, nil
}

func (c *doctorClient) ListDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	return c.list(ctx, "doctorClient.ListDoctors", constvars.PathDoctors, token)
}

func (c *doctorClient) ListDoctorsBySpecialty(ctx context.Context, token, specialty string) ([]models.Doctor, error) {
	return c.list(ctx, "doctorClient.ListDoctorsBySpecialty", constvars.PathDoctorsSpecialty+url.PathEscape(specialty), token)
}

func (c *doctorClient) list(ctx context.Context, operation, path, token string) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors []models.Doctor
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   path,
		Token:  token,
	}, &doctors)
	if err != nil {
		c.Log.Error(operation+" error calling doctor service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, nil
}
