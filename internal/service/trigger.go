package service

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

type TriggerEventRequest struct {
	Situation    string   `json:"situation" validate:"required"`
	Emotions     []string `json:"emotions"`
	ActionTaken  string   `json:"actionTaken"`
	Consequences []string `json:"consequences"`
	StartDate    string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate      string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Reminder     bool     `json:"reminder"`
	Notes        string   `json:"notes"`
}

type TriggerEventUpdateRequest struct {
	Situation    *string   `json:"situation" validate:"omitempty,min=1"`
	Emotions     *[]string `json:"emotions"`
	ActionTaken  *string   `json:"actionTaken"`
	Consequences *[]string `json:"consequences"`
	StartDate    *string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string   `json:"endDate" validate:"omitempty"`
	Reminder     *bool     `json:"reminder"`
	Notes        *string   `json:"notes"`
}

// checkEventDates enforces that a closed event does not end before it starts.
// ISO dates compare correctly as strings.
func checkEventDates(startDate, endDate string) error {
	if endDate != "" && endDate < startDate {
		return internal.NewValidationError(map[string]string{
			"endDate": "must not be before startDate",
		})
	}
	return nil
}

func CreateTriggerEvent(ctx context.Context, repo storage.TriggerEventRepository, user *internal.User, req *TriggerEventRequest) (*internal.TriggerEvent, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := checkEventDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	event := &internal.TriggerEvent{
		UserID:       user.ID,
		Situation:    req.Situation,
		Emotions:     req.Emotions,
		ActionTaken:  req.ActionTaken,
		Consequences: req.Consequences,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reminder:     req.Reminder,
		Notes:        req.Notes,
	}
	if event.Emotions == nil {
		event.Emotions = []string{}
	}
	if event.Consequences == nil {
		event.Consequences = []string{}
	}
	if err := repo.CreateTriggerEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func ListTriggerEvents(ctx context.Context, repo storage.TriggerEventRepository, user *internal.User) ([]internal.TriggerEvent, error) {
	return repo.ListTriggerEvents(ctx, user.ID)
}

func UpdateTriggerEvent(ctx context.Context, repo storage.TriggerEventRepository, user *internal.User, id int64, req *TriggerEventUpdateRequest) (*internal.TriggerEvent, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	// EndDate may be cleared to "" to reopen an ongoing event, so the format
	// check only applies to non-empty values.
	if req.EndDate != nil && *req.EndDate != "" && !isDate(*req.EndDate) {
		return nil, internal.NewValidationError(map[string]string{
			"endDate": "must be a date in YYYY-MM-DD format",
		})
	}
	event, err := repo.GetTriggerEvent(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("trigger event not found")
		}
		return nil, err
	}
	if err := requireOwner(event.UserID, user.ID); err != nil {
		return nil, err
	}
	if req.Situation != nil {
		event.Situation = *req.Situation
	}
	if req.Emotions != nil {
		event.Emotions = *req.Emotions
		if event.Emotions == nil {
			event.Emotions = []string{}
		}
	}
	if req.ActionTaken != nil {
		event.ActionTaken = *req.ActionTaken
	}
	if req.Consequences != nil {
		event.Consequences = *req.Consequences
		if event.Consequences == nil {
			event.Consequences = []string{}
		}
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Reminder != nil {
		event.Reminder = *req.Reminder
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if err := checkEventDates(event.StartDate, event.EndDate); err != nil {
		return nil, err
	}
	if err := repo.UpdateTriggerEvent(ctx, event); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("trigger event not found")
		}
		return nil, err
	}
	return event, nil
}

func DeleteTriggerEvent(ctx context.Context, repo storage.TriggerEventRepository, user *internal.User, id int64) error {
	event, err := repo.GetTriggerEvent(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("trigger event not found")
		}
		return err
	}
	if err := requireOwner(event.UserID, user.ID); err != nil {
		return err
	}
	if err := repo.DeleteTriggerEvent(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("trigger event not found")
		}
		return err
	}
	return nil
}
