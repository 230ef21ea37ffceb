package service

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

type MoodEntryRequest struct {
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeOfDay        string   `json:"timeOfDay" validate:"required,oneof=morning evening"`
	Mood             string   `json:"mood" validate:"required"`
	Intensity        int      `json:"intensity" validate:"required,gte=1,lte=5"`
	SleepQuality     *int     `json:"sleepQuality" validate:"omitempty,gte=1,lte=5"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	WeightUnit       string   `json:"weightUnit" validate:"omitempty,oneof=kg lb"`
	TookMedication   bool     `json:"tookMedication"`
	MissedMedication bool     `json:"missedMedication"`
	EnergyLevel      *int     `json:"energyLevel" validate:"omitempty,gte=1,lte=5"`
	Reflections      string   `json:"reflections"`
	Craving          bool     `json:"craving"`
	CravingTags      []string `json:"cravingTags"`
}

type MoodEntryUpdateRequest struct {
	Date             *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeOfDay        *string   `json:"timeOfDay" validate:"omitempty,oneof=morning evening"`
	Mood             *string   `json:"mood" validate:"omitempty,min=1"`
	Intensity        *int      `json:"intensity" validate:"omitempty,gte=1,lte=5"`
	SleepQuality     *int      `json:"sleepQuality" validate:"omitempty,gte=1,lte=5"`
	Weight           *float64  `json:"weight" validate:"omitempty,gt=0"`
	WeightUnit       *string   `json:"weightUnit" validate:"omitempty,oneof=kg lb"`
	TookMedication   *bool     `json:"tookMedication"`
	MissedMedication *bool     `json:"missedMedication"`
	EnergyLevel      *int      `json:"energyLevel" validate:"omitempty,gte=1,lte=5"`
	Reflections      *string   `json:"reflections"`
	Craving          *bool     `json:"craving"`
	CravingTags      *[]string `json:"cravingTags"`
}

func CreateMoodEntry(ctx context.Context, repo storage.MoodEntryRepository, user *internal.User, req *MoodEntryRequest) (*internal.MoodEntry, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	entry := &internal.MoodEntry{
		UserID:           user.ID,
		Date:             req.Date,
		TimeOfDay:        req.TimeOfDay,
		Mood:             req.Mood,
		Intensity:        req.Intensity,
		SleepQuality:     req.SleepQuality,
		Weight:           req.Weight,
		WeightUnit:       req.WeightUnit,
		TookMedication:   req.TookMedication,
		MissedMedication: req.MissedMedication,
		EnergyLevel:      req.EnergyLevel,
		Reflections:      req.Reflections,
		Craving:          req.Craving,
		CravingTags:      req.CravingTags,
	}
	if entry.CravingTags == nil {
		entry.CravingTags = []string{}
	}
	if err := repo.CreateMoodEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func ListMoodEntries(ctx context.Context, repo storage.MoodEntryRepository, user *internal.User, filter storage.MoodEntryFilter) ([]internal.MoodEntry, error) {
	if err := validateMoodFilter(filter); err != nil {
		return nil, err
	}
	return repo.ListMoodEntries(ctx, user.ID, filter)
}

func validateMoodFilter(filter storage.MoodEntryFilter) error {
	fields := map[string]string{}
	if filter.Date != "" && !isDate(filter.Date) {
		fields["date"] = "must be a date in YYYY-MM-DD format"
	}
	if filter.StartDate != "" || filter.EndDate != "" {
		if filter.StartDate == "" || filter.EndDate == "" {
			fields["startDate"] = "startDate and endDate must be supplied together"
		} else {
			if !isDate(filter.StartDate) {
				fields["startDate"] = "must be a date in YYYY-MM-DD format"
			}
			if !isDate(filter.EndDate) {
				fields["endDate"] = "must be a date in YYYY-MM-DD format"
			}
		}
	}
	if len(fields) > 0 {
		return internal.NewValidationError(fields)
	}
	return nil
}

func UpdateMoodEntry(ctx context.Context, repo storage.MoodEntryRepository, user *internal.User, id int64, req *MoodEntryUpdateRequest) (*internal.MoodEntry, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	entry, err := repo.GetMoodEntry(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("mood entry not found")
		}
		return nil, err
	}
	if err := requireOwner(entry.UserID, user.ID); err != nil {
		return nil, err
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.TimeOfDay != nil {
		entry.TimeOfDay = *req.TimeOfDay
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if req.Intensity != nil {
		entry.Intensity = *req.Intensity
	}
	if req.SleepQuality != nil {
		entry.SleepQuality = req.SleepQuality
	}
	if req.Weight != nil {
		entry.Weight = req.Weight
	}
	if req.WeightUnit != nil {
		entry.WeightUnit = *req.WeightUnit
	}
	if req.TookMedication != nil {
		entry.TookMedication = *req.TookMedication
	}
	if req.MissedMedication != nil {
		entry.MissedMedication = *req.MissedMedication
	}
	if req.EnergyLevel != nil {
		entry.EnergyLevel = req.EnergyLevel
	}
	if req.Reflections != nil {
		entry.Reflections = *req.Reflections
	}
	if req.Craving != nil {
		entry.Craving = *req.Craving
	}
	if req.CravingTags != nil {
		entry.CravingTags = *req.CravingTags
		if entry.CravingTags == nil {
			entry.CravingTags = []string{}
		}
	}
	if err := repo.UpdateMoodEntry(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("mood entry not found")
		}
		return nil, err
	}
	return entry, nil
}

func DeleteMoodEntry(ctx context.Context, repo storage.MoodEntryRepository, user *internal.User, id int64) error {
	entry, err := repo.GetMoodEntry(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("mood entry not found")
		}
		return err
	}
	if err := requireOwner(entry.UserID, user.ID); err != nil {
		return err
	}
	if err := repo.DeleteMoodEntry(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("mood entry not found")
		}
		return err
	}
	return nil
}
