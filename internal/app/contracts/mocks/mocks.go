// Package mocks holds testify mocks of the contracts for use in tests.
package mocks

import (
	"context"
	"time"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthClient) Register(ctx context.Context, request *requests.RegisterUser) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, sessionID string, request *requests.LoginUser) (*models.Session, error) {
	args := m.Called(ctx, sessionID, request)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string, session *models.Session) error {
	args := m.Called(ctx, sessionID, session)
	return args.Error(0)
}

type MockPatientClient struct {
	mock.Mock
}

func (m *MockPatientClient) GetProfile(ctx context.Context, token string) (*models.PatientProfile, error) {
	args := m.Called(ctx, token)
	profile, _ := args.Get(0).(*models.PatientProfile)
	return profile, args.Error(1)
}

func (m *MockPatientClient) UpdateProfile(ctx context.Context, token string, profile *models.PatientProfile) (*models.PatientProfile, error) {
	args := m.Called(ctx, token, profile)
	updated, _ := args.Get(0).(*models.PatientProfile)
	return updated, args.Error(1)
}

func (m *MockPatientClient) GetMedicalHistory(ctx context.Context, token string) ([]models.MedicalHistoryEntry, error) {
	args := m.Called(ctx, token)
	entries, _ := args.Get(0).([]models.MedicalHistoryEntry)
	return entries, args.Error(1)
}

func (m *MockPatientClient) AddMedicalHistory(ctx context.Context, token, description string) (*models.MedicalHistoryEntry, error) {
	args := m.Called(ctx, token, description)
	entry, _ := args.Get(0).(*models.MedicalHistoryEntry)
	return entry, args.Error(1)
}

func (m *MockPatientClient) GetEmergencyContact(ctx context.Context, token string) (*models.EmergencyContact, error) {
	args := m.Called(ctx, token)
	contact, _ := args.Get(0).(*models.EmergencyContact)
	return contact, args.Error(1)
}

func (m *MockPatientClient) UpdateEmergencyContact(ctx context.Context, token string, request *requests.UpdateEmergencyContact) (*models.EmergencyContact, error) {
	args := m.Called(ctx, token, request)
	contact, _ := args.Get(0).(*models.EmergencyContact)
	return contact, args.Error(1)
}

func (m *MockPatientClient) ListPatients(ctx context.Context, token string) ([]models.PatientProfile, error) {
	args := m.Called(ctx, token)
	patients, _ := args.Get(0).([]models.PatientProfile)
	return patients, args.Error(1)
}

type MockDoctorClient struct {
	mock.Mock
}

func (m *MockDoctorClient) GetProfile(ctx context.Context, token string) (*models.Doctor, error) {
	args := m.Called(ctx, token)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorClient) UpdateProfile(ctx context.Context, token string, profile *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, token, profile)
	updated, _ := args.Get(0).(*models.Doctor)
	return updated, args.Error(1)
}

func (m *MockDoctorClient) ListDoctors(ctx context.Context, token string) ([]models.Doctor, error) {
	args := m.Called(ctx, token)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorClient) ListDoctorsBySpecialty(ctx context.Context, token, specialty string) ([]models.Doctor, error) {
	args := m.Called(ctx, token, specialty)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

type MockAppointmentClient struct {
	mock.Mock
}

func (m *MockAppointmentClient) ListMyAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	args := m.Called(ctx, token)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentClient) BookAppointment(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, token, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID string) *models.Session {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID, token string, user models.User) error {
	args := m.Called(ctx, sessionID, token, user)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *models.PortalEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
