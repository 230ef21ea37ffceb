package service

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

type MedicationRequest struct {
	Name     string `json:"name" validate:"required"`
	Dosage   string `json:"dosage"`
	Schedule string `json:"schedule"`
}

type MedicationUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Dosage   *string `json:"dosage"`
	Schedule *string `json:"schedule"`
}

func CreateMedication(ctx context.Context, repo storage.MedicationRepository, user *internal.User, req *MedicationRequest) (*internal.Medication, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	med := &internal.Medication{
		UserID:   user.ID,
		Name:     req.Name,
		Dosage:   req.Dosage,
		Schedule: req.Schedule,
	}
	if err := repo.CreateMedication(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func ListMedications(ctx context.Context, repo storage.MedicationRepository, user *internal.User) ([]internal.Medication, error) {
	return repo.ListMedications(ctx, user.ID)
}

func UpdateMedication(ctx context.Context, repo storage.MedicationRepository, user *internal.User, id int64, req *MedicationUpdateRequest) (*internal.Medication, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	med, err := repo.GetMedication(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("medication not found")
		}
		return nil, err
	}
	if err := requireOwner(med.UserID, user.ID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		med.Name = *req.Name
	}
	if req.Dosage != nil {
		med.Dosage = *req.Dosage
	}
	if req.Schedule != nil {
		med.Schedule = *req.Schedule
	}
	if err := repo.UpdateMedication(ctx, med); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("medication not found")
		}
		return nil, err
	}
	return med, nil
}

func DeleteMedication(ctx context.Context, repo storage.MedicationRepository, user *internal.User, id int64) error {
	med, err := repo.GetMedication(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("medication not found")
		}
		return err
	}
	if err := requireOwner(med.UserID, user.ID); err != nil {
		return err
	}
	if err := repo.DeleteMedication(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("medication not found")
		}
		return err
	}
	return nil
}
