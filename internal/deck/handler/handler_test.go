package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck/internal/deck"
	"github.com/flashdeck/flashdeck/internal/deck/service"
	"github.com/flashdeck/flashdeck/internal/deck/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	g := gin.New()
	svc := service.New(store.New(filepath.Join(t.TempDir(), "data.json")))
	RegisterRoutes(g, svc)
	return g
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	g := newTestRouter(t)
	w := doJSON(t, g, http.MethodGet, "/api/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestDeckLifecycle(t *testing.T) {
	g := newTestRouter(t)

	// create
	w := doJSON(t, g, http.MethodPost, "/api/decks", `{"name":"French","description":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created deck.Deck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "French", created.Name)

	// listed with count 0
	w = doJSON(t, g, http.MethodGet, "/api/decks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var decks []deck.DeckSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decks))
	require.Len(t, decks, 1)
	require.Equal(t, "French", decks[0].Name)
	require.Equal(t, 0, decks[0].Count)

	// add a card
	w = doJSON(t, g, http.MethodPost, "/api/decks/"+created.ID+"/cards", `{"front":"bonjour","back":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var card deck.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	require.Equal(t, created.ID, card.DeckID)

	// deck detail includes the card once, at the end
	w = doJSON(t, g, http.MethodGet, "/api/decks/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail deck.DeckDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Cards, 1)
	require.Equal(t, card.ID, detail.Cards[0].ID)

	// delete the card
	w = doJSON(t, g, http.MethodDelete, "/api/cards/"+card.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())

	// gone, and a second delete is 404
	w = doJSON(t, g, http.MethodGet, "/api/decks/"+created.ID, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Empty(t, detail.Cards)

	w = doJSON(t, g, http.MethodDelete, "/api/cards/"+card.ID, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"card not found"}`, w.Body.String())
}

func TestCreateDeckValidation(t *testing.T) {
	g := newTestRouter(t)

	w := doJSON(t, g, http.MethodPost, "/api/decks", `{"name":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"name is required"}`, w.Body.String())

	// absent body behaves like an empty object
	w = doJSON(t, g, http.MethodPost, "/api/decks", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"name is required"}`, w.Body.String())

	// malformed body behaves like an empty object
	w = doJSON(t, g, http.MethodPost, "/api/decks", `{broken`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"name is required"}`, w.Body.String())
}

func TestAddCardToMissingDeck(t *testing.T) {
	g := newTestRouter(t)
	w := doJSON(t, g, http.MethodPost, "/api/decks/badid/cards", `{"front":"a","back":"b"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"deck not found"}`, w.Body.String())
}

func TestAddCardValidation(t *testing.T) {
	g := newTestRouter(t)

	w := doJSON(t, g, http.MethodPost, "/api/decks", `{"name":"D"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var d deck.Deck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))

	w = doJSON(t, g, http.MethodPost, "/api/decks/"+d.ID+"/cards", `{"front":"only"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"front and back are required"}`, w.Body.String())
}

func TestGetMissingDeck(t *testing.T) {
	g := newTestRouter(t)
	w := doJSON(t, g, http.MethodGet, "/api/decks/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"deck not found"}`, w.Body.String())
}
