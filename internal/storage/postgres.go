package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harryhartz/bimoodtracker/internal"
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Errorf("failed to ping postgres: %v", err)
		return nil, err
	}
	s := &PostgresStore{pool: pool, logger: logger}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *PostgresStore) Close() {
	p.pool.Close()
}

func (p *PostgresStore) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			date TEXT NOT NULL,
			time_of_day TEXT NOT NULL,
			mood TEXT NOT NULL,
			intensity INT NOT NULL,
			sleep_quality INT,
			weight DOUBLE PRECISION,
			weight_unit TEXT NOT NULL DEFAULT '',
			took_medication BOOLEAN NOT NULL DEFAULT FALSE,
			missed_medication BOOLEAN NOT NULL DEFAULT FALSE,
			energy_level INT,
			reflections TEXT NOT NULL DEFAULT '',
			craving BOOLEAN NOT NULL DEFAULT FALSE,
			craving_tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS trigger_events (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			situation TEXT NOT NULL,
			emotions TEXT[] NOT NULL DEFAULT '{}',
			action_taken TEXT NOT NULL DEFAULT '',
			consequences TEXT[] NOT NULL DEFAULT '{}',
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL DEFAULT '',
			reminder BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS thoughts (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			content TEXT NOT NULL,
			mood_tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS medications (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			name TEXT NOT NULL,
			dosage TEXT NOT NULL DEFAULT '',
			schedule TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, q := range queries {
		if _, err := p.pool.Exec(ctx, q); err != nil {
			p.logger.Errorf("failed to create table: %v", err)
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapRowErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// --- UserRepository ---

func (p *PostgresStore) CreateUser(ctx context.Context, user *internal.User) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) GetUserByID(ctx context.Context, id int64) (*internal.User, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, id)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &u, nil
}

func (p *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, email)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &u, nil
}

// --- MoodEntryRepository ---

const moodEntryColumns = `id, user_id, date, time_of_day, mood, intensity, sleep_quality, weight, weight_unit,
	took_medication, missed_medication, energy_level, reflections, craving, craving_tags, created_at`

func scanMoodEntry(row pgx.Row) (*internal.MoodEntry, error) {
	var e internal.MoodEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.TimeOfDay, &e.Mood, &e.Intensity, &e.SleepQuality,
		&e.Weight, &e.WeightUnit, &e.TookMedication, &e.MissedMedication, &e.EnergyLevel,
		&e.Reflections, &e.Craving, &e.CravingTags, &e.CreatedAt)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return &e, nil
}

func (p *PostgresStore) CreateMoodEntry(ctx context.Context, entry *internal.MoodEntry) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO mood_entries (user_id, date, time_of_day, mood, intensity, sleep_quality, weight,
			weight_unit, took_medication, missed_medication, energy_level, reflections, craving, craving_tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`,
		entry.UserID, entry.Date, entry.TimeOfDay, entry.Mood, entry.Intensity, entry.SleepQuality,
		entry.Weight, entry.WeightUnit, entry.TookMedication, entry.MissedMedication, entry.EnergyLevel,
		entry.Reflections, entry.Craving, entry.CravingTags,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert mood entry: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListMoodEntries(ctx context.Context, userID int64, filter MoodEntryFilter) ([]internal.MoodEntry, error) {
	query := `SELECT ` + moodEntryColumns + ` FROM mood_entries WHERE user_id = $1`
	args := []interface{}{userID}
	if filter.Date != "" {
		query += ` AND date = $2 ORDER BY date ASC, id ASC`
		args = append(args, filter.Date)
	} else if filter.StartDate != "" || filter.EndDate != "" {
		query += ` AND date >= $2 AND date <= $3 ORDER BY date ASC, id ASC`
		args = append(args, filter.StartDate, filter.EndDate)
	} else {
		query += ` ORDER BY created_at DESC, id DESC`
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query mood entries: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []internal.MoodEntry{}
	for rows.Next() {
		e, err := scanMoodEntry(rows)
		if err != nil {
			p.logger.Errorf("failed to scan mood entry: %v", err)
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (p *PostgresStore) GetMoodEntry(ctx context.Context, id int64) (*internal.MoodEntry, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+moodEntryColumns+` FROM mood_entries WHERE id = $1`, id)
	return scanMoodEntry(row)
}

func (p *PostgresStore) UpdateMoodEntry(ctx context.Context, entry *internal.MoodEntry) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE mood_entries SET date = $2, time_of_day = $3, mood = $4, intensity = $5, sleep_quality = $6,
			weight = $7, weight_unit = $8, took_medication = $9, missed_medication = $10, energy_level = $11,
			reflections = $12, craving = $13, craving_tags = $14
		WHERE id = $1 AND user_id = $15`,
		entry.ID, entry.Date, entry.TimeOfDay, entry.Mood, entry.Intensity, entry.SleepQuality,
		entry.Weight, entry.WeightUnit, entry.TookMedication, entry.MissedMedication, entry.EnergyLevel,
		entry.Reflections, entry.Craving, entry.CravingTags, entry.UserID)
	if err != nil {
		p.logger.Errorf("failed to update mood entry: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) DeleteMoodEntry(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM mood_entries WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete mood entry: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- TriggerEventRepository ---

const triggerEventColumns = `id, user_id, situation, emotions, action_taken, consequences, start_date,
	end_date, reminder, notes, created_at`

func scanTriggerEvent(row pgx.Row) (*internal.TriggerEvent, error) {
	var e internal.TriggerEvent
	err := row.Scan(&e.ID, &e.UserID, &e.Situation, &e.Emotions, &e.ActionTaken, &e.Consequences,
		&e.StartDate, &e.EndDate, &e.Reminder, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, mapRowErr(err)
	}
	return &e, nil
}

func (p *PostgresStore) CreateTriggerEvent(ctx context.Context, event *internal.TriggerEvent) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO trigger_events (user_id, situation, emotions, action_taken, consequences, start_date,
			end_date, reminder, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		event.UserID, event.Situation, event.Emotions, event.ActionTaken, event.Consequences,
		event.StartDate, event.EndDate, event.Reminder, event.Notes,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert trigger event: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListTriggerEvents(ctx context.Context, userID int64) ([]internal.TriggerEvent, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+triggerEventColumns+` FROM trigger_events WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query trigger events: %v", err)
		return nil, err
	}
	defer rows.Close()

	events := []internal.TriggerEvent{}
	for rows.Next() {
		e, err := scanTriggerEvent(rows)
		if err != nil {
			p.logger.Errorf("failed to scan trigger event: %v", err)
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (p *PostgresStore) GetTriggerEvent(ctx context.Context, id int64) (*internal.TriggerEvent, error) {
	row := p.pool.QueryRow(ctx, `SELECT `+triggerEventColumns+` FROM trigger_events WHERE id = $1`, id)
	return scanTriggerEvent(row)
}

func (p *PostgresStore) UpdateTriggerEvent(ctx context.Context, event *internal.TriggerEvent) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE trigger_events SET situation = $2, emotions = $3, action_taken = $4, consequences = $5,
			start_date = $6, end_date = $7, reminder = $8, notes = $9
		WHERE id = $1 AND user_id = $10`,
		event.ID, event.Situation, event.Emotions, event.ActionTaken, event.Consequences,
		event.StartDate, event.EndDate, event.Reminder, event.Notes, event.UserID)
	if err != nil {
		p.logger.Errorf("failed to update trigger event: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) DeleteTriggerEvent(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM trigger_events WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete trigger event: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- ThoughtRepository ---

func (p *PostgresStore) CreateThought(ctx context.Context, thought *internal.Thought) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO thoughts (user_id, content, mood_tags) VALUES ($1, $2, $3) RETURNING id, created_at`,
		thought.UserID, thought.Content, thought.MoodTags,
	).Scan(&thought.ID, &thought.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert thought: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListThoughts(ctx context.Context, userID int64) ([]internal.Thought, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, content, mood_tags, created_at FROM thoughts WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query thoughts: %v", err)
		return nil, err
	}
	defer rows.Close()

	thoughts := []internal.Thought{}
	for rows.Next() {
		var t internal.Thought
		if err := rows.Scan(&t.ID, &t.UserID, &t.Content, &t.MoodTags, &t.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan thought: %v", err)
			return nil, err
		}
		thoughts = append(thoughts, t)
	}
	return thoughts, rows.Err()
}

func (p *PostgresStore) GetThought(ctx context.Context, id int64) (*internal.Thought, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, user_id, content, mood_tags, created_at FROM thoughts WHERE id = $1`, id)
	var t internal.Thought
	if err := row.Scan(&t.ID, &t.UserID, &t.Content, &t.MoodTags, &t.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &t, nil
}

func (p *PostgresStore) UpdateThought(ctx context.Context, thought *internal.Thought) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE thoughts SET content = $2, mood_tags = $3 WHERE id = $1 AND user_id = $4`,
		thought.ID, thought.Content, thought.MoodTags, thought.UserID)
	if err != nil {
		p.logger.Errorf("failed to update thought: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) DeleteThought(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM thoughts WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete thought: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- MedicationRepository ---

func (p *PostgresStore) CreateMedication(ctx context.Context, med *internal.Medication) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO medications (user_id, name, dosage, schedule) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		med.UserID, med.Name, med.Dosage, med.Schedule,
	).Scan(&med.ID, &med.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert medication: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListMedications(ctx context.Context, userID int64) ([]internal.Medication, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, name, dosage, schedule, created_at FROM medications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query medications: %v", err)
		return nil, err
	}
	defer rows.Close()

	meds := []internal.Medication{}
	for rows.Next() {
		var md internal.Medication
		if err := rows.Scan(&md.ID, &md.UserID, &md.Name, &md.Dosage, &md.Schedule, &md.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan medication: %v", err)
			return nil, err
		}
		meds = append(meds, md)
	}
	return meds, rows.Err()
}

func (p *PostgresStore) GetMedication(ctx context.Context, id int64) (*internal.Medication, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, user_id, name, dosage, schedule, created_at FROM medications WHERE id = $1`, id)
	var md internal.Medication
	if err := row.Scan(&md.ID, &md.UserID, &md.Name, &md.Dosage, &md.Schedule, &md.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &md, nil
}

func (p *PostgresStore) UpdateMedication(ctx context.Context, med *internal.Medication) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE medications SET name = $2, dosage = $3, schedule = $4 WHERE id = $1 AND user_id = $5`,
		med.ID, med.Name, med.Dosage, med.Schedule, med.UserID)
	if err != nil {
		p.logger.Errorf("failed to update medication: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresStore) DeleteMedication(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		p.logger.Errorf("failed to delete medication: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
