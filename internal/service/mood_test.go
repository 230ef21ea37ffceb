package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

func newOwnerFixture(t *testing.T) (*storage.MemoryStore, *internal.User, *internal.User) {
	t.Helper()
	store := storage.NewMemoryStore()
	ann := &internal.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	bob := &internal.User{Name: "Bob", Email: "bob@x.com", PasswordHash: "h"}
	assert.NoError(t, store.CreateUser(context.Background(), ann))
	assert.NoError(t, store.CreateUser(context.Background(), bob))
	return store, ann, bob
}

func assertKind(t *testing.T, err error, kind internal.ErrorKind) *internal.AppError {
	t.Helper()
	var appErr *internal.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestCreateMoodEntryIntensityBounds(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	for _, intensity := range []int{0, 6, -1} {
		_, err := CreateMoodEntry(ctx, store, ann, &MoodEntryRequest{
			Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: intensity,
		})
		appErr := assertKind(t, err, internal.KindValidation)
		assert.Contains(t, appErr.Fields, "intensity")
	}

	// Nothing persisted for the rejected payloads.
	entries, err := store.ListMoodEntries(ctx, ann.ID, storage.MoodEntryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateMoodEntryDefaultsCravingTags(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	entry, err := CreateMoodEntry(context.Background(), store, ann, &MoodEntryRequest{
		Date: "2024-01-01", TimeOfDay: "evening", Mood: "calm", Intensity: 4,
	})
	assert.NoError(t, err)
	assert.NotNil(t, entry.CravingTags)
	assert.Empty(t, entry.CravingTags)
	assert.Equal(t, ann.ID, entry.UserID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestUpdateMoodEntryEnforcesOwnership(t *testing.T) {
	store, ann, bob := newOwnerFixture(t)
	ctx := context.Background()

	entry, err := CreateMoodEntry(ctx, store, ann, &MoodEntryRequest{
		Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: 3,
	})
	assert.NoError(t, err)

	mood := "stolen"
	_, err = UpdateMoodEntry(ctx, store, bob, entry.ID, &MoodEntryUpdateRequest{Mood: &mood})
	assertKind(t, err, internal.KindNotFound)

	// Record unchanged.
	got, err := store.GetMoodEntry(ctx, entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "happy", got.Mood)
}

func TestUpdateMoodEntryPartial(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	entry, err := CreateMoodEntry(ctx, store, ann, &MoodEntryRequest{
		Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: 3, Reflections: "fine day",
	})
	assert.NoError(t, err)

	intensity := 5
	updated, err := UpdateMoodEntry(ctx, store, ann, entry.ID, &MoodEntryUpdateRequest{Intensity: &intensity})
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Intensity)
	assert.Equal(t, "happy", updated.Mood)
	assert.Equal(t, "fine day", updated.Reflections)

	bad := 9
	_, err = UpdateMoodEntry(ctx, store, ann, entry.ID, &MoodEntryUpdateRequest{Intensity: &bad})
	assertKind(t, err, internal.KindValidation)
}

func TestDeleteMoodEntryCrossUser(t *testing.T) {
	store, ann, bob := newOwnerFixture(t)
	ctx := context.Background()

	entry, err := CreateMoodEntry(ctx, store, ann, &MoodEntryRequest{
		Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: 3,
	})
	assert.NoError(t, err)

	err = DeleteMoodEntry(ctx, store, bob, entry.ID)
	assertKind(t, err, internal.KindNotFound)

	// Still there for the owner.
	_, err = store.GetMoodEntry(ctx, entry.ID)
	assert.NoError(t, err)

	assert.NoError(t, DeleteMoodEntry(ctx, store, ann, entry.ID))
	err = DeleteMoodEntry(ctx, store, ann, entry.ID)
	assertKind(t, err, internal.KindNotFound)
}

func TestListMoodEntriesFilterValidation(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	_, err := ListMoodEntries(ctx, store, ann, storage.MoodEntryFilter{Date: "01/02/2024"})
	assertKind(t, err, internal.KindValidation)

	_, err = ListMoodEntries(ctx, store, ann, storage.MoodEntryFilter{StartDate: "2024-01-01"})
	assertKind(t, err, internal.KindValidation)
}

func TestTriggerEventEndDateBeforeStart(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	_, err := CreateTriggerEvent(ctx, store, ann, &TriggerEventRequest{
		Situation: "argument", StartDate: "2024-03-05", EndDate: "2024-03-01",
	})
	appErr := assertKind(t, err, internal.KindValidation)
	assert.Contains(t, appErr.Fields, "endDate")
}

func TestTriggerEventArraysDefaultEmpty(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	event, err := CreateTriggerEvent(context.Background(), store, ann, &TriggerEventRequest{
		Situation: "argument", StartDate: "2024-03-01",
	})
	assert.NoError(t, err)
	assert.NotNil(t, event.Emotions)
	assert.NotNil(t, event.Consequences)
	assert.Empty(t, event.Emotions)
}

func TestUpdateTriggerEventDateCrossCheck(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	event, err := CreateTriggerEvent(ctx, store, ann, &TriggerEventRequest{
		Situation: "argument", StartDate: "2024-03-05",
	})
	assert.NoError(t, err)

	// Closing the event before it started is rejected even though only
	// endDate is supplied.
	end := "2024-03-01"
	_, err = UpdateTriggerEvent(ctx, store, ann, event.ID, &TriggerEventUpdateRequest{EndDate: &end})
	assertKind(t, err, internal.KindValidation)

	end = "2024-03-06"
	updated, err := UpdateTriggerEvent(ctx, store, ann, event.ID, &TriggerEventUpdateRequest{EndDate: &end})
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-06", updated.EndDate)

	// Clearing endDate reopens the event.
	empty := ""
	updated, err = UpdateTriggerEvent(ctx, store, ann, event.ID, &TriggerEventUpdateRequest{EndDate: &empty})
	assert.NoError(t, err)
	assert.Equal(t, "", updated.EndDate)
}

func TestThoughtMoodTagsNeverNil(t *testing.T) {
	store, ann, _ := newOwnerFixture(t)
	ctx := context.Background()

	thought, err := CreateThought(ctx, store, ann, &ThoughtRequest{Content: "a thought"})
	assert.NoError(t, err)
	assert.NotNil(t, thought.MoodTags)

	got, err := store.GetThought(ctx, thought.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.MoodTags)
	assert.Empty(t, got.MoodTags)
}

func TestMedicationOwnership(t *testing.T) {
	store, ann, bob := newOwnerFixture(t)
	ctx := context.Background()

	med, err := CreateMedication(ctx, store, ann, &MedicationRequest{Name: "Sertraline", Dosage: "50mg"})
	assert.NoError(t, err)

	name := "hijacked"
	_, err = UpdateMedication(ctx, store, bob, med.ID, &MedicationUpdateRequest{Name: &name})
	assertKind(t, err, internal.KindNotFound)

	err = DeleteMedication(ctx, store, bob, med.ID)
	assertKind(t, err, internal.KindNotFound)

	dosage := "100mg"
	updated, err := UpdateMedication(ctx, store, ann, med.ID, &MedicationUpdateRequest{Dosage: &dosage})
	assert.NoError(t, err)
	assert.Equal(t, "100mg", updated.Dosage)
}
