package patients

import (
	"context"
	"net/url"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/services/backend/httpclient"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientClient struct {
	client *httpclient.Client
	Log    *zap.Logger
}

func NewPatientClient(baseUrl string, logger *zap.Logger, opts httpclient.Options) contracts.PatientClient {
	return &patientClient{
		client: httpclient.New(constvars.ServicePatient, baseUrl, logger, opts),
		Log:    logger,
	}
}

func (c *patientClient) GetProfile(ctx context.Context, token string) (*models.PatientProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := new(models.PatientProfile)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   constvars.PathPatientsMe,
		Token:  token,
	}, profile)
	if err != nil {
		c.Log.Error("patientClient.GetProfile error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return profile, nil
}

func (c *patientClient) UpdateProfile(ctx context.Context, token string, profile *models.PatientProfile) (*models.PatientProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	updated := new(models.PatientProfile)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodPut,
		Path:   constvars.PathPatientsMe,
		Token:  token,
		Body:   profile,
	}, updated)
	if err != nil {
		c.Log.Error("patientClient.UpdateProfile error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return updated, nil
}

func (c *patientClient) GetMedicalHistory(ctx context.Context, token string) ([]models.MedicalHistoryEntry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.GetMedicalHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var entries []models.MedicalHistoryEntry
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   constvars.PathPatientsMedicalHistory,
		Token:  token,
	}, &entries)
	if err != nil {
		c.Log.Error("patientClient.GetMedicalHistory error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.GetMedicalHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(entries)),
	)
	return entries, nil
}

func (c *patientClient) AddMedicalHistory(ctx context.Context, token, description string) (*models.MedicalHistoryEntry, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.AddMedicalHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entry := new(models.MedicalHistoryEntry)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.PathPatientsMedicalHistory,
		Query:  url.Values{"description": {description}},
		Token:  token,
	}, entry)
	if err != nil {
		c.Log.Error("patientClient.AddMedicalHistory error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.AddMedicalHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return entry, nil
}

// GetEmergencyContact reads the contact off the patient's own record; the
// patient service has no dedicated read endpoint for it.
func (c *patientClient) GetEmergencyContact(ctx context.Context, token string) (*models.EmergencyContact, error) {
	profile, err := c.GetProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	return &models.EmergencyContact{
		Name:   profile.EmergencyContactName,
		Number: profile.EmergencyContactNumber,
	}, nil
}

func (c *patientClient) UpdateEmergencyContact(ctx context.Context, token string, request *requests.UpdateEmergencyContact) (*models.EmergencyContact, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.UpdateEmergencyContact called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	updated := new(models.PatientProfile)
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.PathPatientsEmergency,
		Query:  url.Values{"name": {request.Name}, "number": {request.Number}},
		Token:  token,
	}, updated)
	if err != nil {
		c.Log.Error("patientClient.UpdateEmergencyContact error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.UpdateEmergencyContact succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &models.EmergencyContact{
		Name:   updated.EmergencyContactName,
		Number: updated.EmergencyContactNumber,
	}, nil
}

func (c *patientClient) ListPatients(ctx context.Context, token string) ([]models.PatientProfile, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientClient.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var patients []models.PatientProfile
	err := c.client.Do(ctx, httpclient.Request{
		Method: constvars.MethodGet,
		Path:   constvars.PathPatientsAll,
		Token:  token,
	}, &patients)
	if err != nil {
		c.Log.Error("patientClient.ListPatients error calling patient service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientClient.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}
