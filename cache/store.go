// Package cache keeps the last known schedule and scoreboard on local disk
// so the live countdown survives a database outage.
// File: cache/store.go
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

const (
	// SnapshotBucket holds the cached documents.
	SnapshotBucket = "snapshots"

	settingsKey   = "event_settings"
	scoreboardKey = "scoreboard"
)

// Store is the cache contract used by the services.
type Store interface {
	SaveSettings(s eventphase.Settings) error
	LoadSettings() (eventphase.Settings, bool, error)
	SaveScoreboard(entries []models.ScoreboardEntry) error
	LoadScoreboard() ([]models.ScoreboardEntry, bool, error)
	Close() error
}

type settingsRecord struct {
	Settings eventphase.Settings `json:"settings"`
	SavedAt  time.Time           `json:"savedAt"`
}

type scoreboardRecord struct {
	Entries []models.ScoreboardEntry `json:"entries"`
	SavedAt time.Time                `json:"savedAt"`
}

// BoltStore implements Store on top of BoltDB.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore opens (or creates) the cache file at dbPath.
func NewBoltStore(dbPath string) (*BoltStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB at %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(SnapshotBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Info.Printf("[cache] BoltDB snapshot store initialized at: %s", dbPath)
	return &BoltStore{db: db}, nil
}

// SaveSettings replaces the cached schedule.
func (s *BoltStore) SaveSettings(settings eventphase.Settings) error {
	return s.put(settingsKey, settingsRecord{Settings: settings, SavedAt: time.Now().UTC()})
}

// LoadSettings returns the cached schedule and whether one was found.
func (s *BoltStore) LoadSettings() (eventphase.Settings, bool, error) {
	var rec settingsRecord
	found, err := s.get(settingsKey, &rec)
	if err != nil || !found {
		return eventphase.Settings{}, false, err
	}
	return rec.Settings, true, nil
}

// SaveScoreboard replaces the cached ranking.
func (s *BoltStore) SaveScoreboard(entries []models.ScoreboardEntry) error {
	return s.put(scoreboardKey, scoreboardRecord{Entries: entries, SavedAt: time.Now().UTC()})
}

// LoadScoreboard returns the cached ranking and whether one was found.
func (s *BoltStore) LoadScoreboard() ([]models.ScoreboardEntry, bool, error) {
	var rec scoreboardRecord
	found, err := s.get(scoreboardKey, &rec)
	if err != nil || !found {
		return nil, false, err
	}
	return rec.Entries, true, nil
}

// Close closes the BoltDB database.
func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BoltStore) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(SnapshotBucket))
		if bucket == nil {
			return fmt.Errorf("bucket %s does not exist", SnapshotBucket)
		}
		return bucket.Put([]byte(key), data)
	})
}

func (s *BoltStore) get(key string, dst any) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(SnapshotBucket))
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, dst)
	})
	if err != nil {
		return false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return found, nil
}
