package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/flashdeck/flashdeck/internal/deck"
)

// Cards lists the open deck's cards.
func (a *App) Cards(ctx context.Context) error {
	if !a.hasOpenDeck() {
		return fmt.Errorf("no deck open (run: open <n>)")
	}
	if len(a.cards) == 0 {
		printlnFn("No cards yet")
		return nil
	}
	for i, c := range a.cards {
		printlnFn(fmt.Sprintf("%d. %s — %s", i+1, c.Front, c.Back))
	}
	return nil
}

// Add prompts for front/back text and adds a card to the open deck. The new
// card is appended to the local list without a refetch.
func (a *App) Add(ctx context.Context) error {
	if !a.hasOpenDeck() {
		return fmt.Errorf("no deck open (run: open <n>)")
	}
	front, err := GetSimpleText(a.reader, "Front (question)", os.Stdout)
	if err != nil {
		return err
	}
	back, err := GetSimpleText(a.reader, "Back (answer)", os.Stdout)
	if err != nil {
		return err
	}
	c, err := a.api.AddCard(ctx, a.deckID, front, back)
	if err != nil {
		return err
	}
	a.cards = append(a.cards, *c)
	printlnFn("Added card: " + c.Front)
	return nil
}

// Del deletes a card by 1-based list number or by id and filters it out of
// the local list.
func (a *App) Del(ctx context.Context, arg string) error {
	if !a.hasOpenDeck() {
		return fmt.Errorf("no deck open (run: open <n>)")
	}
	if arg == "" {
		return fmt.Errorf("usage: del <number|id>")
	}
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(a.cards) {
			return fmt.Errorf("no card number %d (run: cards)", n)
		}
		id = a.cards[n-1].ID
	}
	if err := a.api.DeleteCard(ctx, id); err != nil {
		return err
	}
	kept := make([]deck.Card, 0, len(a.cards))
	for _, c := range a.cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	a.cards = kept
	printlnFn("Deleted card")
	return nil
}
