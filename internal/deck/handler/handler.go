package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flashdeck/flashdeck/internal/deck"
	"github.com/flashdeck/flashdeck/internal/deck/service"
	"github.com/flashdeck/flashdeck/pkg/metrics"
)

type createDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type addCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// RegisterRoutes wires the flashcards REST API onto the router.
func RegisterRoutes(r *gin.Engine, svc *service.Service) {
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/api/decks", func(c *gin.Context) {
		decks, err := svc.ListDecks()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, decks)
	})

	r.POST("/api/decks", func(c *gin.Context) {
		var req createDeckRequest
		// missing or malformed bodies behave like an empty object; the
		// service rejects empty required fields either way
		_ = c.ShouldBindJSON(&req)
		d, err := svc.CreateDeck(req.Name, req.Description)
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.DecksCreated.Inc()
		c.JSON(http.StatusOK, d)
	})

	r.GET("/api/decks/:id", func(c *gin.Context) {
		d, err := svc.GetDeck(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	})

	r.POST("/api/decks/:id/cards", func(c *gin.Context) {
		var req addCardRequest
		_ = c.ShouldBindJSON(&req)
		card, err := svc.AddCard(c.Param("id"), req.Front, req.Back)
		if err != nil {
			writeError(c, err)
			return
		}
		metrics.CardsCreated.Inc()
		c.JSON(http.StatusOK, card)
	})

	r.DELETE("/api/cards/:id", func(c *gin.Context) {
		if err := svc.DeleteCard(c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		metrics.CardsDeleted.Inc()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case deck.IsValidation(err):
		status = http.StatusBadRequest
	case deck.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
