package pages

import (
	"context"

	"clinic-portal/internal/app/models"
	"clinic-portal/internal/app/navigation"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/requests"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
)

type PatientProfilePage struct {
	base
	Editor[models.PatientProfile]
}

func NewPatientProfilePage(nav *navigation.Context, deps Deps) *PatientProfilePage {
	return &PatientProfilePage{base: newBase(nav, deps)}
}

func (p *PatientProfilePage) Name() string { return constvars.PageProfile }

func (p *PatientProfilePage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadProfileFailed, func(ctx context.Context) (models.PatientProfile, error) {
		profile, err := p.deps.Patients.GetProfile(ctx, p.token())
		if err != nil {
			return models.PatientProfile{}, err
		}
		return *profile, nil
	})
	if err != nil {
		p.logError(ctx, "PatientProfilePage.Mount error calling patientClient.GetProfile", err)
	}
}

// Save merges the form over the current draft and sends it. Input that fails
// validation stays in the form.
func (p *PatientProfilePage) Save(ctx context.Context, request *requests.UpdatePatientProfile) error {
	if !p.IsReady() {
		p.notifyError(constvars.MsgPatientProfileUpdateFail)
		return exceptions.ErrPageNotReady(p.Name())
	}

	utils.SanitizeUpdatePatientProfileRequest(request)
	draft := utils.MergePatientProfile(p.Data, request)
	if err := utils.ValidateStruct(request); err != nil {
		p.Reject(draft)
		p.notifyError(exceptions.FormatFirstValidationError(err))
		return exceptions.ErrInputValidation(err)
	}

	err := p.Editor.Save(ctx, draft, func(ctx context.Context, profile models.PatientProfile) (models.PatientProfile, error) {
		updated, err := p.deps.Patients.UpdateProfile(ctx, p.token(), &profile)
		if err != nil {
			return models.PatientProfile{}, err
		}
		return *updated, nil
	})
	if err != nil {
		p.logError(ctx, "PatientProfilePage.Save error calling patientClient.UpdateProfile", err)
		p.notifyError(constvars.MsgPatientProfileUpdateFail)
		return err
	}

	p.notifySuccess(constvars.MsgProfileUpdated)
	return nil
}

func (p *PatientProfilePage) RejectSave() {
	p.notifyError(constvars.MsgPatientProfileUpdateFail)
}

type DoctorProfilePage struct {
	base
	Editor[models.Doctor]
}

func NewDoctorProfilePage(nav *navigation.Context, deps Deps) *DoctorProfilePage {
	return &DoctorProfilePage{base: newBase(nav, deps)}
}

func (p *DoctorProfilePage) Name() string { return constvars.PageDoctorProfile }

func (p *DoctorProfilePage) Mount(ctx context.Context) {
	err := p.Load(ctx, constvars.MsgLoadProfileFailed, func(ctx context.Context) (models.Doctor, error) {
		doctor, err := p.deps.Doctors.GetProfile(ctx, p.token())
		if err != nil {
			return models.Doctor{}, err
		}
		return *doctor, nil
	})
	if err != nil {
		p.logError(ctx, "DoctorProfilePage.Mount error calling doctorClient.GetProfile", err)
	}
}

func (p *DoctorProfilePage) Save(ctx context.Context, request *requests.UpdateDoctorProfile) error {
	if !p.IsReady() {
		p.notifyError(constvars.MsgDoctorProfileUpdateFail)
		return exceptions.ErrPageNotReady(p.Name())
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)
	rejected := p.Data
	if p.EditMode {
		rejected = p.Draft
	}
	if err := utils.ValidateStruct(request); err != nil {
		p.Reject(rejected)
		p.notifyError(exceptions.FormatFirstValidationError(err))
		return exceptions.ErrInputValidation(err)
	}

	draft, err := utils.MergeDoctorProfile(p.Data, request)
	if err != nil {
		p.Reject(rejected)
		p.notifyError(constvars.MsgDoctorProfileUpdateFail)
		return exceptions.ErrInputValidation(err)
	}
	err = p.Editor.Save(ctx, draft, func(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
		updated, err := p.deps.Doctors.UpdateProfile(ctx, p.token(), &doctor)
		if err != nil {
			return models.Doctor{}, err
		}
		return *updated, nil
	})
	if err != nil {
		p.logError(ctx, "DoctorProfilePage.Save error calling doctorClient.UpdateProfile", err)
		p.notifyError(constvars.MsgDoctorProfileUpdateFail)
		return err
	}

	p.notifySuccess(constvars.MsgProfileUpdated)
	return nil
}

func (p *DoctorProfilePage) RejectSave() {
	p.notifyError(constvars.MsgDoctorProfileUpdateFail)
}
