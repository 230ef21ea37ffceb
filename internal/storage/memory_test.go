package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harryhartz/bimoodtracker/internal"
)

func newTestUser(t *testing.T, store *MemoryStore, email string) *internal.User {
	t.Helper()
	user := &internal.User{Name: "Test User", Email: email, PasswordHash: "hash"}
	assert.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := NewMemoryStore()
	newTestUser(t, store, "ann@x.com")

	dup := &internal.User{Name: "Other", Email: "ANN@X.COM", PasswordHash: "hash"}
	err := store.CreateUser(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserIDsAreMonotonic(t *testing.T) {
	store := NewMemoryStore()
	a := newTestUser(t, store, "a@x.com")
	b := newTestUser(t, store, "b@x.com")
	assert.Equal(t, a.ID+1, b.ID)
}

func TestMoodEntryScopedByUser(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	bob := newTestUser(t, store, "bob@x.com")
	ctx := context.Background()

	assert.NoError(t, store.CreateMoodEntry(ctx, &internal.MoodEntry{
		UserID: ann.ID, Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: 3, CravingTags: []string{},
	}))

	annEntries, err := store.ListMoodEntries(ctx, ann.ID, MoodEntryFilter{})
	assert.NoError(t, err)
	assert.Len(t, annEntries, 1)

	bobEntries, err := store.ListMoodEntries(ctx, bob.ID, MoodEntryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, bobEntries)
}

func TestMoodEntryDateFilterOrdering(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	ctx := context.Background()

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02", "2024-02-01"} {
		assert.NoError(t, store.CreateMoodEntry(ctx, &internal.MoodEntry{
			UserID: ann.ID, Date: date, TimeOfDay: "morning", Mood: "ok", Intensity: 3, CravingTags: []string{},
		}))
	}

	// Range listing comes back oldest-first by date.
	ranged, err := store.ListMoodEntries(ctx, ann.ID, MoodEntryFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	assert.NoError(t, err)
	assert.Len(t, ranged, 3)
	assert.Equal(t, "2024-01-01", ranged[0].Date)
	assert.Equal(t, "2024-01-02", ranged[1].Date)
	assert.Equal(t, "2024-01-03", ranged[2].Date)

	// Exact-date filter.
	exact, err := store.ListMoodEntries(ctx, ann.ID, MoodEntryFilter{Date: "2024-01-02"})
	assert.NoError(t, err)
	assert.Len(t, exact, 1)

	// Unfiltered listing is newest-first by insertion.
	all, err := store.ListMoodEntries(ctx, ann.ID, MoodEntryFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "2024-02-01", all[0].Date)
}

func TestUpdateMoodEntryPreservesCreatedAt(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	ctx := context.Background()

	entry := &internal.MoodEntry{
		UserID: ann.ID, Date: "2024-01-01", TimeOfDay: "morning", Mood: "happy", Intensity: 3, CravingTags: []string{},
	}
	assert.NoError(t, store.CreateMoodEntry(ctx, entry))
	created := entry.CreatedAt

	entry.Mood = "tired"
	assert.NoError(t, store.UpdateMoodEntry(ctx, entry))

	got, err := store.GetMoodEntry(ctx, entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, "tired", got.Mood)
	assert.Equal(t, created, got.CreatedAt)
}

func TestDeleteMoodEntryNotFound(t *testing.T) {
	store := NewMemoryStore()
	err := store.DeleteMoodEntry(context.Background(), 123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThoughtCloneDoesNotAliasTags(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	ctx := context.Background()

	thought := &internal.Thought{UserID: ann.ID, Content: "racing thoughts", MoodTags: []string{"anxious"}}
	assert.NoError(t, store.CreateThought(ctx, thought))

	got, err := store.GetThought(ctx, thought.ID)
	assert.NoError(t, err)
	got.MoodTags[0] = "mutated"

	again, err := store.GetThought(ctx, thought.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"anxious"}, again.MoodTags)
}

func TestTriggerEventLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	ctx := context.Background()

	event := &internal.TriggerEvent{
		UserID:       ann.ID,
		Situation:    "crowded train",
		Emotions:     []string{"anxious", "overwhelmed"},
		ActionTaken:  "got off early",
		Consequences: []string{"late for work"},
		StartDate:    "2024-03-01",
	}
	assert.NoError(t, store.CreateTriggerEvent(ctx, event))
	assert.NotZero(t, event.ID)

	event.EndDate = "2024-03-02"
	assert.NoError(t, store.UpdateTriggerEvent(ctx, event))

	got, err := store.GetTriggerEvent(ctx, event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2024-03-02", got.EndDate)
	assert.Equal(t, []string{"anxious", "overwhelmed"}, got.Emotions)

	assert.NoError(t, store.DeleteTriggerEvent(ctx, event.ID))
	_, err = store.GetTriggerEvent(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMedicationLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ann := newTestUser(t, store, "ann@x.com")
	ctx := context.Background()

	med := &internal.Medication{UserID: ann.ID, Name: "Sertraline", Dosage: "50mg", Schedule: "morning"}
	assert.NoError(t, store.CreateMedication(ctx, med))

	meds, err := store.ListMedications(ctx, ann.ID)
	assert.NoError(t, err)
	assert.Len(t, meds, 1)
	assert.Equal(t, "Sertraline", meds[0].Name)

	med.Dosage = "100mg"
	assert.NoError(t, store.UpdateMedication(ctx, med))
	got, err := store.GetMedication(ctx, med.ID)
	assert.NoError(t, err)
	assert.Equal(t, "100mg", got.Dosage)

	assert.NoError(t, store.DeleteMedication(ctx, med.ID))
	assert.ErrorIs(t, store.DeleteMedication(ctx, med.ID), ErrNotFound)
}
