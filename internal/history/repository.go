package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles event persistence.
type Repository struct {
	db *DB
}

// NewRepository creates a Repository over db.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Query defines filters for listing events.
type Query struct {
	Type  *EventType // filter by event type
	Since *time.Time // events at or after this time (inclusive)
	Limit int        // max results; 0 means no limit
}

// Append adds an event to the log, filling in ID and Timestamp when unset.
func (r *Repository) Append(ctx context.Context, event *Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO events (id, timestamp, type, path, detail, payload) VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.Timestamp.Format(time.RFC3339Nano),
		string(event.Type),
		event.Path,
		event.Detail,
		[]byte(event.Payload),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// List returns events matching the query, newest first.
func (r *Repository) List(ctx context.Context, query Query) ([]*Event, error) {
	sqlQuery := `SELECT id, timestamp, type, path, detail, payload FROM events WHERE 1=1`
	args := make([]any, 0, 3)

	if query.Type != nil {
		sqlQuery += ` AND type = ?`
		args = append(args, string(*query.Type))
	}
	if query.Since != nil {
		sqlQuery += ` AND timestamp >= ?`
		args = append(args, query.Since.UTC().Format(time.RFC3339Nano))
	}
	sqlQuery += ` ORDER BY timestamp DESC`
	if query.Limit > 0 {
		sqlQuery += ` LIMIT ?`
		args = append(args, query.Limit)
	}

	rows, err := r.db.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanEvent(rows *sql.Rows) (*Event, error) {
	var (
		event     Event
		timestamp string
		eventType string
		payload   []byte
	)
	if err := rows.Scan(&event.ID, &timestamp, &eventType, &event.Path, &event.Detail, &payload); err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse event timestamp: %w", err)
	}
	event.Timestamp = parsed
	event.Type = EventType(eventType)
	if len(payload) > 0 {
		event.Payload = payload
	}
	return &event, nil
}
