package internal

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MoodEntry struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Date             string    `json:"date"`      // YYYY-MM-DD
	TimeOfDay        string    `json:"timeOfDay"` // morning, evening
	Mood             string    `json:"mood"`
	Intensity        int       `json:"intensity"`              // 1-5 scale
	SleepQuality     *int      `json:"sleepQuality,omitempty"` // 1-5 scale
	Weight           *float64  `json:"weight,omitempty"`
	WeightUnit       string    `json:"weightUnit,omitempty"`
	TookMedication   bool      `json:"tookMedication"`
	MissedMedication bool      `json:"missedMedication"`
	EnergyLevel      *int      `json:"energyLevel,omitempty"` // 1-5 scale
	Reflections      string    `json:"reflections,omitempty"`
	Craving          bool      `json:"craving"`
	CravingTags      []string  `json:"cravingTags"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TriggerEvent struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Situation    string    `json:"situation"`
	Emotions     []string  `json:"emotions"`
	ActionTaken  string    `json:"actionTaken"`
	Consequences []string  `json:"consequences"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate,omitempty"` // empty = ongoing
	Reminder     bool      `json:"reminder"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Thought struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	MoodTags  []string  `json:"moodTags"`
	CreatedAt time.Time `json:"createdAt"`
}

type Medication struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage,omitempty"`
	Schedule  string    `json:"schedule,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
