package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck/internal/deck"
	"github.com/flashdeck/flashdeck/pkg/logger"
)

// Store owns the canonical deck/card collections, persisted as a single
// pretty-printed JSON document at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the backing file and returns the parsed document. Any failure —
// missing file, unreadable file, malformed JSON, or a document missing either
// collection — yields a fresh empty document instead of an error.
func (s *Store) Load() *deck.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return emptyDocument()
	}
	var doc deck.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warnf("data file %s is not valid JSON, starting empty: %v", s.path, err)
		return emptyDocument()
	}
	if doc.Decks == nil || doc.Cards == nil {
		return emptyDocument()
	}
	return &doc
}

// Save serializes the full document and replaces the backing file. The write
// goes to a temp file in the same directory followed by a rename, so readers
// never observe a partially written document.
func (s *Store) Save(doc *deck.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".flashdeck-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// NewID returns an id unique with overwhelming probability.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Seed persists a demo deck with two cards when the store has no decks yet,
// so a first run has something to study. Returns the document either way.
func (s *Store) Seed() (*deck.Document, error) {
	doc := s.Load()
	if len(doc.Decks) > 0 {
		return doc, nil
	}
	now := time.Now().UTC()
	d := deck.Deck{
		ID:          s.NewID(),
		Name:        "Demo: Basic Spanish",
		Description: "English → Spanish basics",
		CreatedAt:   now,
	}
	doc.Decks = append(doc.Decks, d)
	doc.Cards = append(doc.Cards,
		deck.Card{ID: s.NewID(), DeckID: d.ID, Front: "Hello", Back: "Hola", CreatedAt: now},
		deck.Card{ID: s.NewID(), DeckID: d.ID, Front: "Thank you", Back: "Gracias", CreatedAt: now},
	)
	if err := s.Save(doc); err != nil {
		return nil, fmt.Errorf("seed demo deck: %w", err)
	}
	logger.Infof("seeded demo deck %q with %d cards", d.Name, len(doc.Cards))
	return doc, nil
}

func emptyDocument() *deck.Document {
	return &deck.Document{Decks: []deck.Deck{}, Cards: []deck.Card{}}
}
