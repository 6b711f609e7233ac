package service

import (
	"strings"
	"sync"
	"time"

	"github.com/flashdeck/flashdeck/internal/deck"
	"github.com/flashdeck/flashdeck/internal/deck/store"
)

// Service implements the deck/card operations used by the handler layer.
// Every operation reloads the store's current document before acting, so each
// request sees the latest on-disk snapshot; the mutex serializes the whole
// load-mutate-save sequence to rule out lost updates between concurrent
// mutations.
type Service struct {
	mu    sync.Mutex
	store *store.Store
}

func New(s *store.Store) *Service {
	return &Service{store: s}
}

// ListDecks returns all decks in stored order, each annotated with the number
// of cards belonging to it.
func (s *Service) ListDecks() ([]deck.DeckSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.store.Load()
	out := make([]deck.DeckSummary, 0, len(doc.Decks))
	for _, d := range doc.Decks {
		n := 0
		for _, c := range doc.Cards {
			if c.DeckID == d.ID {
				n++
			}
		}
		out = append(out, deck.DeckSummary{Deck: d, Count: n})
	}
	return out, nil
}

// CreateDeck appends a new deck and persists. The name is required after
// trimming; the description defaults to empty.
func (s *Service) CreateDeck(name, description string) (*deck.Deck, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, deck.ErrNameRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.store.Load()
	d := deck.Deck{
		ID:          s.store.NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	doc.Decks = append(doc.Decks, d)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDeck returns the deck merged with the ordered list of its cards.
func (s *Service) GetDeck(id string) (*deck.DeckDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.store.Load()
	for _, d := range doc.Decks {
		if d.ID != id {
			continue
		}
		cards := make([]deck.Card, 0)
		for _, c := range doc.Cards {
			if c.DeckID == d.ID {
				cards = append(cards, c)
			}
		}
		return &deck.DeckDetail{Deck: d, Cards: cards}, nil
	}
	return nil, deck.ErrDeckNotFound
}

// AddCard appends a card to an existing deck and persists. Front and back are
// both required after trimming.
func (s *Service) AddCard(deckID, front, back string) (*deck.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.store.Load()
	found := false
	for _, d := range doc.Decks {
		if d.ID == deckID {
			found = true
			break
		}
	}
	if !found {
		return nil, deck.ErrDeckNotFound
	}
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return nil, deck.ErrCardTextRequired
	}
	c := deck.Card{
		ID:        s.store.NewID(),
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		CreatedAt: time.Now().UTC(),
	}
	doc.Cards = append(doc.Cards, c)
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCard removes a single card by id and persists.
func (s *Service) DeleteCard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.store.Load()
	idx := -1
	for i, c := range doc.Cards {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return deck.ErrCardNotFound
	}
	doc.Cards = append(doc.Cards[:idx], doc.Cards[idx+1:]...)
	return s.store.Save(doc)
}
