package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/harryhartz/bimoodtracker/internal"
)

// MemoryStore is a thread-safe in-memory backend with per-table
// auto-incrementing ids. Used by tests and STORAGE_BACKEND=memory.
type MemoryStore struct {
	mu sync.RWMutex

	nextUserID   int64
	nextMoodID   int64
	nextTrigID   int64
	nextThotID   int64
	nextMedID    int64
	users        map[int64]*internal.User
	usersByEmail map[string]*internal.User
	moods        map[int64]*internal.MoodEntry
	triggers     map[int64]*internal.TriggerEvent
	thoughts     map[int64]*internal.Thought
	medications  map[int64]*internal.Medication
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextUserID:   1,
		nextMoodID:   1,
		nextTrigID:   1,
		nextThotID:   1,
		nextMedID:    1,
		users:        make(map[int64]*internal.User),
		usersByEmail: make(map[string]*internal.User),
		moods:        make(map[int64]*internal.MoodEntry),
		triggers:     make(map[int64]*internal.TriggerEvent),
		thoughts:     make(map[int64]*internal.Thought),
		medications:  make(map[int64]*internal.Medication),
	}
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMoodEntry(e *internal.MoodEntry) *internal.MoodEntry {
	c := *e
	c.SleepQuality = copyIntPtr(e.SleepQuality)
	c.Weight = copyFloatPtr(e.Weight)
	c.EnergyLevel = copyIntPtr(e.EnergyLevel)
	c.CravingTags = copyStrings(e.CravingTags)
	return &c
}

func cloneTriggerEvent(e *internal.TriggerEvent) *internal.TriggerEvent {
	c := *e
	c.Emotions = copyStrings(e.Emotions)
	c.Consequences = copyStrings(e.Consequences)
	return &c
}

func cloneThought(t *internal.Thought) *internal.Thought {
	c := *t
	c.MoodTags = copyStrings(t.MoodTags)
	return &c
}

// --- UserRepository ---

func (m *MemoryStore) CreateUser(_ context.Context, user *internal.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := strings.ToLower(user.Email)
	if _, exists := m.usersByEmail[email]; exists {
		return ErrDuplicateEmail
	}
	user.ID = m.nextUserID
	m.nextUserID++
	user.CreatedAt = time.Now().UTC()
	stored := *user
	m.users[user.ID] = &stored
	m.usersByEmail[email] = &stored
	return nil
}

func (m *MemoryStore) GetUserByID(_ context.Context, id int64) (*internal.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*internal.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

// --- MoodEntryRepository ---

func (m *MemoryStore) CreateMoodEntry(_ context.Context, entry *internal.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = m.nextMoodID
	m.nextMoodID++
	entry.CreatedAt = time.Now().UTC()
	m.moods[entry.ID] = cloneMoodEntry(entry)
	return nil
}

func (m *MemoryStore) ListMoodEntries(_ context.Context, userID int64, filter MoodEntryFilter) ([]internal.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := []internal.MoodEntry{}
	for _, e := range m.moods {
		if e.UserID != userID {
			continue
		}
		if filter.Date != "" && e.Date != filter.Date {
			continue
		}
		if filter.StartDate != "" && e.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && e.Date > filter.EndDate {
			continue
		}
		entries = append(entries, *cloneMoodEntry(e))
	}
	if filter.IsZero() {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
				return entries[i].ID > entries[j].ID
			}
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		})
	} else {
		// Date-filtered listings feed trend charts, oldest first.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Date == entries[j].Date {
				return entries[i].ID < entries[j].ID
			}
			return entries[i].Date < entries[j].Date
		})
	}
	return entries, nil
}

func (m *MemoryStore) GetMoodEntry(_ context.Context, id int64) (*internal.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.moods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMoodEntry(e), nil
}

func (m *MemoryStore) UpdateMoodEntry(_ context.Context, entry *internal.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	original, ok := m.moods[entry.ID]
	if !ok {
		return ErrNotFound
	}
	entry.CreatedAt = original.CreatedAt
	m.moods[entry.ID] = cloneMoodEntry(entry)
	return nil
}

func (m *MemoryStore) DeleteMoodEntry(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moods[id]; !ok {
		return ErrNotFound
	}
	delete(m.moods, id)
	return nil
}

// --- TriggerEventRepository ---

func (m *MemoryStore) CreateTriggerEvent(_ context.Context, event *internal.TriggerEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = m.nextTrigID
	m.nextTrigID++
	event.CreatedAt = time.Now().UTC()
	m.triggers[event.ID] = cloneTriggerEvent(event)
	return nil
}

func (m *MemoryStore) ListTriggerEvents(_ context.Context, userID int64) ([]internal.TriggerEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	events := []internal.TriggerEvent{}
	for _, e := range m.triggers {
		if e.UserID == userID {
			events = append(events, *cloneTriggerEvent(e))
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID > events[j].ID
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (m *MemoryStore) GetTriggerEvent(_ context.Context, id int64) (*internal.TriggerEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.triggers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTriggerEvent(e), nil
}

func (m *MemoryStore) UpdateTriggerEvent(_ context.Context, event *internal.TriggerEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	original, ok := m.triggers[event.ID]
	if !ok {
		return ErrNotFound
	}
	event.CreatedAt = original.CreatedAt
	m.triggers[event.ID] = cloneTriggerEvent(event)
	return nil
}

func (m *MemoryStore) DeleteTriggerEvent(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.triggers[id]; !ok {
		return ErrNotFound
	}
	delete(m.triggers, id)
	return nil
}

// --- ThoughtRepository ---

func (m *MemoryStore) CreateThought(_ context.Context, thought *internal.Thought) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	thought.ID = m.nextThotID
	m.nextThotID++
	thought.CreatedAt = time.Now().UTC()
	m.thoughts[thought.ID] = cloneThought(thought)
	return nil
}

func (m *MemoryStore) ListThoughts(_ context.Context, userID int64) ([]internal.Thought, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	thoughts := []internal.Thought{}
	for _, t := range m.thoughts {
		if t.UserID == userID {
			thoughts = append(thoughts, *cloneThought(t))
		}
	}
	sort.Slice(thoughts, func(i, j int) bool {
		if thoughts[i].CreatedAt.Equal(thoughts[j].CreatedAt) {
			return thoughts[i].ID > thoughts[j].ID
		}
		return thoughts[i].CreatedAt.After(thoughts[j].CreatedAt)
	})
	return thoughts, nil
}

func (m *MemoryStore) GetThought(_ context.Context, id int64) (*internal.Thought, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.thoughts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneThought(t), nil
}

func (m *MemoryStore) UpdateThought(_ context.Context, thought *internal.Thought) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	original, ok := m.thoughts[thought.ID]
	if !ok {
		return ErrNotFound
	}
	thought.CreatedAt = original.CreatedAt
	m.thoughts[thought.ID] = cloneThought(thought)
	return nil
}

func (m *MemoryStore) DeleteThought(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.thoughts[id]; !ok {
		return ErrNotFound
	}
	delete(m.thoughts, id)
	return nil
}

// --- MedicationRepository ---

func (m *MemoryStore) CreateMedication(_ context.Context, med *internal.Medication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	med.ID = m.nextMedID
	m.nextMedID++
	med.CreatedAt = time.Now().UTC()
	stored := *med
	m.medications[med.ID] = &stored
	return nil
}

func (m *MemoryStore) ListMedications(_ context.Context, userID int64) ([]internal.Medication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meds := []internal.Medication{}
	for _, md := range m.medications {
		if md.UserID == userID {
			meds = append(meds, *md)
		}
	}
	sort.Slice(meds, func(i, j int) bool {
		if meds[i].CreatedAt.Equal(meds[j].CreatedAt) {
			return meds[i].ID > meds[j].ID
		}
		return meds[i].CreatedAt.After(meds[j].CreatedAt)
	})
	return meds, nil
}

func (m *MemoryStore) GetMedication(_ context.Context, id int64) (*internal.Medication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	md, ok := m.medications[id]
	if !ok {
		return nil, ErrNotFound
	}
	c := *md
	return &c, nil
}

func (m *MemoryStore) UpdateMedication(_ context.Context, med *internal.Medication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	original, ok := m.medications[med.ID]
	if !ok {
		return ErrNotFound
	}
	med.CreatedAt = original.CreatedAt
	stored := *med
	m.medications[med.ID] = &stored
	return nil
}

func (m *MemoryStore) DeleteMedication(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.medications[id]; !ok {
		return ErrNotFound
	}
	delete(m.medications, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
