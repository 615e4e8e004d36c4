package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/opdeck/internal/deck"
	"github.com/youruser/opdeck/internal/service"
)

func (h *Handler) listDecks(c *gin.Context) {
	decks, err := h.svc.ListDecks(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, decks)
}

func (h *Handler) createDeck(c *gin.Context) {
	var in service.CreateDeckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	d, err := h.svc.CreateDeck(c.Request.Context(), userID(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": d})
}

func (h *Handler) getDeck(c *gin.Context) {
	d, err := h.svc.GetDeck(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, d)
}

func (h *Handler) updateDeck(c *gin.Context) {
	var in service.UpdateDeckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	d, err := h.svc.UpdateDeck(c.Request.Context(), userID(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, d)
}

func (h *Handler) deleteDeck(c *gin.Context) {
	if err := h.svc.DeleteDeck(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deck deleted"})
}

func (h *Handler) addCard(c *gin.Context) {
	var in service.AddCardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err.Error())
		return
	}
	en, err := h.svc.AddCard(c.Request.Context(), userID(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, en)
}

type removeCardRequest struct {
	Type     string `json:"cardType" form:"cardType"`
	CardID   string `json:"cardId" form:"cardId"`
	Quantity int    `json:"quantity" form:"quantity"`
}

// removeCard reads the card from the JSON body, or from the query string
// when there is no body.
func (h *Handler) removeCard(c *gin.Context) {
	var req removeCardRequest
	var err error
	if c.Request.ContentLength > 0 {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Type == "" || req.CardID == "" {
		badRequest(c, "cardType and cardId are required")
		return
	}
	removed, err := h.svc.RemoveCard(c.Request.Context(), userID(c), c.Param("id"), req.Type, req.CardID, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"removed": removed})
}

type exclusionRequest struct {
	ExcludeFromDraw *bool `json:"exclude_from_draw"`
}

func (h *Handler) updateCard(c *gin.Context) {
	var req exclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.ExcludeFromDraw == nil {
		badRequest(c, "exclude_from_draw is required")
		return
	}
	en, err := h.svc.SetExclusion(c.Request.Context(), userID(c), c.Param("id"), c.Param("cardId"), *req.ExcludeFromDraw)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, en)
}

func (h *Handler) toggleExclusion(c *gin.Context) {
	en, err := h.svc.ToggleExclusion(c.Request.Context(), userID(c), c.Param("id"), c.Param("cardId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, en)
}

func (h *Handler) validateEntries(c *gin.Context) {
	var req struct {
		Cards []deck.Entry `json:"cards"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	errs := h.svc.ValidateEntries(req.Cards)
	ok(c, gin.H{"isValid": len(errs) == 0, "errors": errs})
}

func (h *Handler) validateDeck(c *gin.Context) {
	errs, err := h.svc.ValidateDeck(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"isValid": len(errs) == 0, "errors": errs})
}

func (h *Handler) deckStats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, st)
}

func (h *Handler) userStats(c *gin.Context) {
	st, err := h.svc.UserStats(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, st)
}

func (h *Handler) exportDeck(c *gin.Context) {
	text, err := h.svc.ExportText(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// deckQR returns a PNG QR code linking to the deck
func (h *Handler) deckQR(c *gin.Context) {
	size := 0
	if s := c.Query("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, "size must be a number")
			return
		}
		size = v
	}
	b, err := h.svc.DeckQR(c.Request.Context(), c.Param("id"), size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) getUIPreferences(c *gin.Context) {
	prefs, err := h.svc.GetUIPreferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if prefs == nil {
		prefs = json.RawMessage(`{}`)
	}
	ok(c, prefs)
}

func (h *Handler) updateUIPreferences(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := h.svc.UpdateUIPreferences(c.Request.Context(), userID(c), c.Param("id"), json.RawMessage(raw)); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "UI preferences updated"})
}
