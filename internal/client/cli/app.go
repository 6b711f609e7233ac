package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/flashdeck/flashdeck/internal/client"
	"github.com/flashdeck/flashdeck/internal/deck"
)

// App holds the client session state: the API client, the currently open
// deck, and the in-memory ordered list of its cards. The card list is kept in
// sync with the server by the mutating commands (append on add, filter on
// delete) rather than by re-fetching.
type App struct {
	api      *client.Client
	reader   *bufio.Reader
	deckID   string
	deckName string
	cards    []deck.Card

	// decks as last listed, so "open" and "del" accept 1-based indexes
	lastDecks []deck.DeckSummary
}

func NewApp(api *client.Client) *App {
	return &App{api: api, reader: bufio.NewReader(os.Stdin)}
}

// Run checks the server is reachable and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	if err := a.Decks(ctx); err != nil {
		printlnFn("error: " + err.Error())
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) hasOpenDeck() bool {
	return a.deckID != ""
}

func (a *App) status() string {
	if a.hasOpenDeck() {
		return a.deckName
	}
	return "decks"
}
