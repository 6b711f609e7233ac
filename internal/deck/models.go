package deck

import "time"

// Deck is a named collection of study cards.
type Deck struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Card is a front/back question-answer pair belonging to one deck.
type Card struct {
	ID        string    `json:"id"`
	DeckID    string    `json:"deckId"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
}

// Document is the full persisted state: every deck and every card, in
// creation order. This is the exact shape written to the data file.
type Document struct {
	Decks []Deck `json:"decks"`
	Cards []Card `json:"cards"`
}

// DeckSummary is a deck annotated with its card count, as returned by the
// deck listing.
type DeckSummary struct {
	Deck
	Count int `json:"count"`
}

// DeckDetail is a deck merged with the ordered list of its cards.
type DeckDetail struct {
	Deck
	Cards []Card `json:"cards"`
}
