package auth

import (
	"context"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient    contracts.AuthClient
	PatientClient contracts.PatientClient
	DoctorClient  contracts.DoctorClient
	SessionStore  contracts.SessionStore
	Events        contracts.EventPublisher
	Log           *zap.Logger
}

func NewAuthUsecase(
	authClient contracts.AuthClient,
	patientClient contracts.PatientClient,
	doctorClient contracts.DoctorClient,
	sessionStore contracts.SessionStore,
	events contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthClient:    authClient,
		PatientClient: patientClient,
		DoctorClient:  doctorClient,
		SessionStore:  sessionStore,
		Events:        events,
		Log:           logger,
	}
}

// Login signs the browser session in. The token and the user are stored
// together, and only once the user's role is known.
func (uc *authUsecase) Login(ctx context.Context, sessionID string, request *requests.LoginUser) (*models.Session, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	token, err := uc.AuthClient.Login(ctx, request.Username, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling authClient.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.resolveUser(ctx, token)
	if err != nil {
		uc.Log.Error("authUsecase.Login error resolving user profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.SessionStore.Save(ctx, sessionID, token, *user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling sessionStore.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, &models.PortalEvent{
		Type:    constvars.EventUserLoggedIn,
		Subject: request.Username,
		Role:    user.Role,
		Data:    map[string]interface{}{"userId": user.UserID},
	})

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &models.Session{Token: token, User: *user}, nil
}

// resolveUser asks the patient service first. The doctor service is only
// consulted when the patient service answered and refused; an unreachable or
// broken patient service ends the lookup.
func (uc *authUsecase) resolveUser(ctx context.Context, token string) (*models.User, error) {
	patient, err := uc.PatientClient.GetProfile(ctx, token)
	if err == nil {
		return &models.User{
			UserID:    patient.UserID,
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
			Role:      string(models.RolePatient),
		}, nil
	}
	if !exceptions.IsRejected(err) {
		return nil, exceptions.ErrProfileLookup(err)
	}

	doctor, err := uc.DoctorClient.GetProfile(ctx, token)
	if err != nil {
		return nil, exceptions.ErrProfileLookup(err)
	}
	return &models.User{
		UserID:    doctor.UserID,
		FirstName: doctor.FirstName,
		LastName:  doctor.LastName,
		Role:      string(models.RoleDoctor),
	}, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterUserRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	err := uc.AuthClient.Register(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling authClient.Register",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publish(ctx, &models.PortalEvent{
		Type:    constvars.EventUserRegistered,
		Subject: request.Username,
		Role:    request.Role,
	})
	return nil
}

// Logout removes the stored session. The event is only published for a
// session that was actually signed in.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string, session *models.Session) error {
	requestID := utils.RequestIDFromContext(ctx)

	err := uc.SessionStore.Clear(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error calling sessionStore.Clear",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if session != nil {
		uc.publish(ctx, &models.PortalEvent{
			Type:    constvars.EventUserLoggedOut,
			Subject: utils.TokenSubject(session.Token),
			Role:    session.User.Role,
			Data:    map[string]interface{}{"userId": session.User.UserID},
		})
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// publish logs and drops publishing failures.
func (uc *authUsecase) publish(ctx context.Context, event *models.PortalEvent) {
	if err := uc.Events.Publish(ctx, event); err != nil {
		uc.Log.Warn("authUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}
