package service

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

type ThoughtRequest struct {
	Content  string   `json:"content" validate:"required"`
	MoodTags []string `json:"moodTags"`
}

type ThoughtUpdateRequest struct {
	Content  *string   `json:"content" validate:"omitempty,min=1"`
	MoodTags *[]string `json:"moodTags"`
}

func CreateThought(ctx context.Context, repo storage.ThoughtRepository, user *internal.User, req *ThoughtRequest) (*internal.Thought, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	thought := &internal.Thought{
		UserID:   user.ID,
		Content:  req.Content,
		MoodTags: req.MoodTags,
	}
	if thought.MoodTags == nil {
		thought.MoodTags = []string{}
	}
	if err := repo.CreateThought(ctx, thought); err != nil {
		return nil, err
	}
	return thought, nil
}

func ListThoughts(ctx context.Context, repo storage.ThoughtRepository, user *internal.User) ([]internal.Thought, error) {
	return repo.ListThoughts(ctx, user.ID)
}

func UpdateThought(ctx context.Context, repo storage.ThoughtRepository, user *internal.User, id int64, req *ThoughtUpdateRequest) (*internal.Thought, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	thought, err := repo.GetThought(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("thought not found")
		}
		return nil, err
	}
	if err := requireOwner(thought.UserID, user.ID); err != nil {
		return nil, err
	}
	if req.Content != nil {
		thought.Content = *req.Content
	}
	if req.MoodTags != nil {
		thought.MoodTags = *req.MoodTags
		if thought.MoodTags == nil {
			thought.MoodTags = []string{}
		}
	}
	if err := repo.UpdateThought(ctx, thought); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, internal.NewNotFound("thought not found")
		}
		return nil, err
	}
	return thought, nil
}

func DeleteThought(ctx context.Context, repo storage.ThoughtRepository, user *internal.User, id int64) error {
	thought, err := repo.GetThought(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("thought not found")
		}
		return err
	}
	if err := requireOwner(thought.UserID, user.ID); err != nil {
		return err
	}
	if err := repo.DeleteThought(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return internal.NewNotFound("thought not found")
		}
		return err
	}
	return nil
}
