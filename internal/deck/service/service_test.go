package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck/internal/deck"
	"github.com/flashdeck/flashdeck/internal/deck/store"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	return New(store.New(path)), path
}

func TestCreateDeckThenList(t *testing.T) {
	svc, _ := newTestService(t)

	before, err := svc.ListDecks()
	require.NoError(t, err)

	d, err := svc.CreateDeck("French", "")
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.Equal(t, "French", d.Name)
	require.False(t, d.CreatedAt.IsZero())

	after, err := svc.ListDecks()
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	last := after[len(after)-1]
	require.Equal(t, d.ID, last.ID)
	require.Equal(t, 0, last.Count)
}

func TestCreateDeckTrimsAndValidates(t *testing.T) {
	svc, path := newTestService(t)

	_, err := svc.CreateDeck("   ", "whatever")
	require.ErrorIs(t, err, deck.ErrNameRequired)
	require.True(t, deck.IsValidation(err))

	// no persisted change on validation failure
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))

	d, err := svc.CreateDeck("  Spanish  ", "  basics  ")
	require.NoError(t, err)
	require.Equal(t, "Spanish", d.Name)
	require.Equal(t, "basics", d.Description)
}

func TestGetDeckNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetDeck("nope")
	require.ErrorIs(t, err, deck.ErrDeckNotFound)
	require.True(t, deck.IsNotFound(err))
}

func TestAddCardAppendsInOrder(t *testing.T) {
	svc, _ := newTestService(t)
	d, err := svc.CreateDeck("Geography", "")
	require.NoError(t, err)

	c1, err := svc.AddCard(d.ID, "Capital of France", "Paris")
	require.NoError(t, err)
	c2, err := svc.AddCard(d.ID, "Capital of Japan", "Tokyo")
	require.NoError(t, err)

	got, err := svc.GetDeck(d.ID)
	require.NoError(t, err)
	require.Len(t, got.Cards, 2)
	require.Equal(t, c1.ID, got.Cards[0].ID)
	require.Equal(t, c2.ID, got.Cards[1].ID)

	decks, err := svc.ListDecks()
	require.NoError(t, err)
	require.Equal(t, 2, decks[len(decks)-1].Count)
}

func TestAddCardValidation(t *testing.T) {
	svc, _ := newTestService(t)
	d, err := svc.CreateDeck("X", "")
	require.NoError(t, err)

	_, err = svc.AddCard("missing", "a", "b")
	require.ErrorIs(t, err, deck.ErrDeckNotFound)

	for _, tc := range []struct{ front, back string }{
		{"", "b"},
		{"a", ""},
		{"  ", "  "},
	} {
		_, err = svc.AddCard(d.ID, tc.front, tc.back)
		require.ErrorIs(t, err, deck.ErrCardTextRequired)
	}

	got, err := svc.GetDeck(d.ID)
	require.NoError(t, err)
	require.Empty(t, got.Cards)
}

func TestDeleteCard(t *testing.T) {
	svc, _ := newTestService(t)
	d, err := svc.CreateDeck("Y", "")
	require.NoError(t, err)
	c, err := svc.AddCard(d.ID, "q", "a")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCard(c.ID))

	got, err := svc.GetDeck(d.ID)
	require.NoError(t, err)
	for _, card := range got.Cards {
		require.NotEqual(t, c.ID, card.ID)
	}

	// deleting the same id again is a not-found
	err = svc.DeleteCard(c.ID)
	require.ErrorIs(t, err, deck.ErrCardNotFound)
}

func TestEveryRequestSeesLatestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	// two services over the same file, as two processes would be
	svcA := New(store.New(path))
	svcB := New(store.New(path))

	d, err := svcA.CreateDeck("Shared", "")
	require.NoError(t, err)

	got, err := svcB.GetDeck(d.ID)
	require.NoError(t, err)
	require.Equal(t, "Shared", got.Name)
}
