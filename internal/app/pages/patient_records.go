package pages

import (
	"context"
	"strings"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
)

// MedicalHistoryPage only ever fetches for patients. For anyone else it
// stays idle.
type MedicalHistoryPage struct {
	base
	Resource[[]models.MedicalHistoryEntry]
	Input string
}

func NewMedicalHistoryPage(nav *navigation.Context, deps Deps) *MedicalHistoryPage {
	return &MedicalHistoryPage{base: newBase(nav, deps)}
}

func (p *MedicalHistoryPage) Name() string { return constvars.PageMedicalHistory }

func (p *MedicalHistoryPage) Mount(ctx context.Context) {
	if !p.nav.IsPatient() {
		return
	}
	err := p.Load(ctx, constvars.MsgLoadMedicalHistoryFailed, func(ctx context.Context) ([]models.MedicalHistoryEntry, error) {
		return p.deps.Patients.GetMedicalHistory(ctx, p.token())
	})
	if err != nil {
		p.logError(ctx, "MedicalHistoryPage.Mount error calling patientClient.GetMedicalHistory", err)
	}
}

// Add puts a new entry at the top of the list. Blank input does nothing.
func (p *MedicalHistoryPage) Add(ctx context.Context, request *requests.AddMedicalHistory) error {
	if !p.nav.IsPatient() {
		return nil
	}
	request.Description = strings.TrimSpace(request.Description)
	if request.Description == "" {
		return nil
	}

	p.Input = request.Description
	if err := utils.ValidateStruct(request); err != nil {
		p.notifyError(exceptions.FormatFirstValidationError(err))
		return exceptions.ErrInputValidation(err)
	}

	entry, err := p.deps.Patients.AddMedicalHistory(ctx, p.token(), request.Description)
	if err != nil {
		p.logError(ctx, "MedicalHistoryPage.Add error calling patientClient.AddMedicalHistory", err)
		p.notifyError(constvars.MsgAddMedicalHistoryFailed)
		return err
	}

	var existing []models.MedicalHistoryEntry
	if p.IsReady() {
		existing = p.Data
	}
	p.Set(append([]models.MedicalHistoryEntry{*entry}, existing...))
	p.Input = ""
	p.notifySuccess(constvars.MsgMedicalHistoryAdded)
	return nil
}

func (p *MedicalHistoryPage) RejectSave() {
	p.notifyError(constvars.MsgAddMedicalHistoryFailed)
}

func (p *MedicalHistoryPage) EmptyMessage() string {
	if p.IsReady() && len(p.Data) == 0 {
		return constvars.MsgNoMedicalHistory
	}
	return ""
}

type EmergencyContactPage struct {
	base
	Editor[models.EmergencyContact]
}

func NewEmergencyContactPage(nav *navigation.Context, deps Deps) *EmergencyContactPage {
	return &EmergencyContactPage{base: newBase(nav, deps)}
}

func (p *EmergencyContactPage) Name() string { return constvars.PageEmergencyContact }

func (p *EmergencyContactPage) Mount(ctx context.Context) {
	if !p.nav.IsPatient() {
		return
	}
	err := p.Load(ctx, constvars.MsgLoadEmergencyFailed, func(ctx context.Context) (models.EmergencyContact, error) {
		contact, err := p.deps.Patients.GetEmergencyContact(ctx, p.token())
		if err != nil {
			return models.EmergencyContact{}, err
		}
		return *contact, nil
	})
	if err != nil {
		p.logError(ctx, "EmergencyContactPage.Mount error calling patientClient.GetEmergencyContact", err)
	}
}

func (p *EmergencyContactPage) Save(ctx context.Context, request *requests.UpdateEmergencyContact) error {
	if !p.nav.IsPatient() {
		return nil
	}
	if !p.IsReady() {
		p.notifyError(constvars.MsgEmergencyUpdateFailed)
		return exceptions.ErrPageNotReady(p.Name())
	}

	utils.SanitizeUpdateEmergencyContactRequest(request)
	draft := models.EmergencyContact{Name: request.Name, Number: request.Number}
	if err := utils.ValidateStruct(request); err != nil {
		p.Reject(draft)
		p.notifyError(exceptions.FormatFirstValidationError(err))
		return exceptions.ErrInputValidation(err)
	}

	err := p.Editor.Save(ctx, draft, func(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
		updated, err := p.deps.Patients.UpdateEmergencyContact(ctx, p.token(), utils.BuildUpdateEmergencyContactRequest(contact))
		if err != nil {
			return models.EmergencyContact{}, err
		}
		return *updated, nil
	})
	if err != nil {
		p.logError(ctx, "EmergencyContactPage.Save error calling patientClient.UpdateEmergencyContact", err)
		p.notifyError(constvars.MsgEmergencyUpdateFailed)
		return err
	}

	p.notifySuccess(constvars.MsgEmergencyUpdated)
	return nil
}

func (p *EmergencyContactPage) RejectSave() {
	p.notifyError(constvars.MsgEmergencyUpdateFailed)
}
