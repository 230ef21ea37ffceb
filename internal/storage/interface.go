package storage

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// MoodEntryFilter narrows a listing to one calendar date or an inclusive
// date range. Zero value means no filtering.
type MoodEntryFilter struct {
	Date      string
	StartDate string
	EndDate   string
}

func (f MoodEntryFilter) IsZero() bool {
	return f.Date == "" && f.StartDate == "" && f.EndDate == ""
}

type UserRepository interface {
	// CreateUser assigns ID and CreatedAt. Returns ErrDuplicateEmail when the
	// email is already registered.
	CreateUser(ctx context.Context, user *internal.User) error
	GetUserByID(ctx context.Context, id int64) (*internal.User, error)
	GetUserByEmail(ctx context.Context, email string) (*internal.User, error)
}

type MoodEntryRepository interface {
	CreateMoodEntry(ctx context.Context, entry *internal.MoodEntry) error
	// ListMoodEntries returns the user's entries newest-first by creation
	// time, or oldest-first by date when a filter is supplied.
	ListMoodEntries(ctx context.Context, userID int64, filter MoodEntryFilter) ([]internal.MoodEntry, error)
	GetMoodEntry(ctx context.Context, id int64) (*internal.MoodEntry, error)
	UpdateMoodEntry(ctx context.Context, entry *internal.MoodEntry) error
	DeleteMoodEntry(ctx context.Context, id int64) error
}

type TriggerEventRepository interface {
	CreateTriggerEvent(ctx context.Context, event *internal.TriggerEvent) error
	ListTriggerEvents(ctx context.Context, userID int64) ([]internal.TriggerEvent, error)
	GetTriggerEvent(ctx context.Context, id int64) (*internal.TriggerEvent, error)
	UpdateTriggerEvent(ctx context.Context, event *internal.TriggerEvent) error
	DeleteTriggerEvent(ctx context.Context, id int64) error
}

type ThoughtRepository interface {
	CreateThought(ctx context.Context, thought *internal.Thought) error
	ListThoughts(ctx context.Context, userID int64) ([]internal.Thought, error)
	GetThought(ctx context.Context, id int64) (*internal.Thought, error)
	UpdateThought(ctx context.Context, thought *internal.Thought) error
	DeleteThought(ctx context.Context, id int64) error
}

type MedicationRepository interface {
	CreateMedication(ctx context.Context, med *internal.Medication) error
	ListMedications(ctx context.Context, userID int64) ([]internal.Medication, error)
	GetMedication(ctx context.Context, id int64) (*internal.Medication, error)
	UpdateMedication(ctx context.Context, med *internal.Medication) error
	DeleteMedication(ctx context.Context, id int64) error
}

// Store bundles all repositories. Both backends implement it; the factory
// picks one at process start.
type Store interface {
	UserRepository
	MoodEntryRepository
	TriggerEventRepository
	ThoughtRepository
	MedicationRepository
}
