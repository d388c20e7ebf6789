package eventlog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"towerboard/internal/strips"
)

// Entry is one audit row for an applied board mutation.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventType string    `gorm:"index" json:"event_type"`
	StripID   string    `gorm:"index" json:"strip_id"`
	Callsign  string    `json:"callsign"`
	Station   string    `json:"station"`
	Detail    string    `json:"detail"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"-"`
}

func (Entry) TableName() string { return "board_events" }

// Open connects the audit store. driver is "sqlite" or "postgres".
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported eventlog driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event log: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate event log: %w", err)
	}
	return db, nil
}

// Store persists board events and answers history queries.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Insert writes one entry.
func (s *Store) Insert(ctx context.Context, e *Entry) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Recent returns the latest n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = 50
	}
	var entries []Entry
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(n).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return entries, nil
}

// ForStrip returns the history of one strip, oldest first.
func (s *Store) ForStrip(ctx context.Context, stripID string) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).
		Where("strip_id = ?", stripID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query strip events: %w", err)
	}
	return entries, nil
}

func entryFrom(ev strips.Event) *Entry {
	return &Entry{
		EventType: string(ev.Type),
		StripID:   ev.StripID,
		Callsign:  ev.Callsign,
		Station:   string(ev.Station),
		Detail:    ev.Detail,
		At:        ev.At,
	}
}
