package pages

import (
	"context"
	"testing"
	"time"

	"clinic-portal/internal/app/contracts/mocks"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// slowPage blocks in Mount until release is closed.
type slowPage struct {
	noticeBoard
	mounting chan struct{}
	release  chan struct{}
}

func (p *slowPage) Name() string { return "slow" }

func (p *slowPage) Mount(context.Context) {
	close(p.mounting)
	<-p.release
}

func patientNav() *navigation.Context {
	return navigation.NewContext("sid", &models.Session{Token: "tok", User: models.User{UserID: 1, FirstName: "Ann", Role: "PATIENT"}}, constvars.ThemeLight)
}

func doctorNav() *navigation.Context {
	return navigation.NewContext("sid", &models.Session{Token: "tok", User: models.User{UserID: 2, FirstName: "Greg", Role: "DOCTOR"}}, constvars.ThemeLight)
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Use Mounts Once And Reuses", func(t *testing.T) {
		appointments := new(mocks.MockAppointmentClient)
		appointments.On("ListMyAppointments", ctx, "tok").Return([]models.Appointment{{ID: 1}}, nil).Once()
		deps := Deps{Appointments: appointments}
		registry := NewRegistry(zap.NewNop())
		fresh := func() *AppointmentsPage { return NewAppointmentsPage(patientNav(), deps) }

		Use(ctx, registry, "sid", fresh, func(p *AppointmentsPage) { p.Filter("x") })
		Use(ctx, registry, "sid", fresh, func(p *AppointmentsPage) {
			assert.Equal(t, "x", p.Query)
		})

		name, ok := registry.Mounted("sid")
		require.True(t, ok)
		assert.Equal(t, constvars.PageAppointments, name)
		appointments.AssertNumberOfCalls(t, "ListMyAppointments", 1)
	})

	t.Run("Mount Replaces Previous Page", func(t *testing.T) {
		registry := NewRegistry(nil)
		Mount(ctx, registry, "sid", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})
		Mount(ctx, registry, "sid", NewMedicalHistoryPage(doctorNav(), Deps{}), func(*MedicalHistoryPage) {})

		name, _ := registry.Mounted("sid")
		assert.Equal(t, constvars.PageMedicalHistory, name)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Unmount Forgets Session", func(t *testing.T) {
		registry := NewRegistry(nil)
		Mount(ctx, registry, "sid", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})
		Mount(ctx, registry, "other", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})

		registry.Unmount("sid")
		_, ok := registry.Mounted("sid")
		assert.False(t, ok)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Sweep Drops Idle Sessions", func(t *testing.T) {
		registry := NewRegistry(nil)
		now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		registry.now = func() time.Time { return now }
		Mount(ctx, registry, "old", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})

		now = now.Add(2 * time.Hour)
		Mount(ctx, registry, "fresh", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})

		assert.Equal(t, 1, registry.Sweep(time.Hour))
		_, ok := registry.Mounted("fresh")
		assert.True(t, ok)
	})

	t.Run("Sweep Keeps Slot Whose First Mount Is Running", func(t *testing.T) {
		registry := NewRegistry(nil)
		page := &slowPage{mounting: make(chan struct{}), release: make(chan struct{})}

		done := make(chan struct{})
		go func() {
			defer close(done)
			Mount(ctx, registry, "sid", page, func(*slowPage) {})
		}()

		<-page.mounting
		assert.Equal(t, 0, registry.Sweep(time.Hour))
		close(page.release)
		<-done

		name, ok := registry.Mounted("sid")
		assert.True(t, ok)
		assert.Equal(t, "slow", name)
	})

	t.Run("Sweeper Runs On Schedule", func(t *testing.T) {
		registry := NewRegistry(nil)
		registry.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		Mount(ctx, registry, "old", NewHomePage(patientNav(), Deps{}), func(*HomePage) {})
		registry.now = time.Now

		sweepCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		require.NoError(t, registry.StartSweeper(sweepCtx, time.Second, time.Hour))

		assert.Eventually(t, func() bool { return registry.Len() == 0 }, 5*time.Second, 50*time.Millisecond)
	})
}

func TestRunSave(t *testing.T) {
	ctx := context.Background()
	key := SaveLockKey("sid", constvars.PageMedicalHistory)

	newDeps := func() (Deps, *mocks.MockPatientClient) {
		patients := new(mocks.MockPatientClient)
		patients.On("GetMedicalHistory", ctx, "tok").Return([]models.MedicalHistoryEntry{}, nil)
		return Deps{Patients: patients}, patients
	}

	t.Run("Lock Held Shows Save Failure", func(t *testing.T) {
		deps, patients := newDeps()
		locker := new(mocks.MockLockerService)
		locker.On("TryLock", ctx, key, 30*time.Second).Return(false, "", nil)
		registry := NewRegistry(nil)
		lock := NewSaveLock(locker, 30*time.Second, nil)
		fresh := func() *MedicalHistoryPage { return NewMedicalHistoryPage(patientNav(), deps) }

		called := false
		var shown *Notice
		err := RunSave(ctx, lock, registry, "sid", fresh, func(*MedicalHistoryPage) error {
			called = true
			return nil
		}, func(p *MedicalHistoryPage) {
			shown = p.TakeNotice()
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, &Notice{Kind: NoticeError, Message: constvars.MsgAddMedicalHistoryFailed}, shown)
		patients.AssertNotCalled(t, "AddMedicalHistory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Acquired Runs Save And Releases", func(t *testing.T) {
		deps, _ := newDeps()
		locker := new(mocks.MockLockerService)
		locker.On("TryLock", ctx, key, 30*time.Second).Return(true, "v1", nil)
		locker.On("Unlock", mock.Anything, key, "v1").Return(nil)
		registry := NewRegistry(nil)
		lock := NewSaveLock(locker, 30*time.Second, nil)
		fresh := func() *MedicalHistoryPage { return NewMedicalHistoryPage(patientNav(), deps) }

		called := false
		err := RunSave(ctx, lock, registry, "sid", fresh, func(*MedicalHistoryPage) error {
			called = true
			return nil
		}, func(*MedicalHistoryPage) {})
		require.NoError(t, err)
		assert.True(t, called)
		locker.AssertExpectations(t)
	})
}
