package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Decks lists all decks with their card counts.
func (a *App) Decks(ctx context.Context) error {
	decks, err := a.api.ListDecks(ctx)
	if err != nil {
		return err
	}
	a.lastDecks = decks
	if len(decks) == 0 {
		printlnFn("No decks yet")
		return nil
	}
	for i, d := range decks {
		line := fmt.Sprintf("%d. %s (%d cards)", i+1, d.Name, d.Count)
		if d.Description != "" {
			line += " — " + d.Description
		}
		printlnFn(line)
	}
	return nil
}

// Create prompts for a name and description and creates a deck.
func (a *App) Create(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Deck name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	d, err := a.api.CreateDeck(ctx, name, description)
	if err != nil {
		return err
	}
	printlnFn("Created deck: " + d.Name)
	return a.Decks(ctx)
}

// Open fetches a deck by 1-based list number or by id and makes it current.
func (a *App) Open(ctx context.Context, arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: open <number|id>")
	}
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(a.lastDecks) {
			return fmt.Errorf("no deck number %d (run: decks)", n)
		}
		id = a.lastDecks[n-1].ID
	}
	d, err := a.api.GetDeck(ctx, id)
	if err != nil {
		return err
	}
	a.deckID = d.ID
	a.deckName = d.Name
	a.cards = d.Cards
	printlnFn("Opened deck: " + d.Name)
	return a.Cards(ctx)
}

// Back closes the current deck and re-lists decks.
func (a *App) Back(ctx context.Context) error {
	a.deckID = ""
	a.deckName = ""
	a.cards = nil
	return a.Decks(ctx)
}
