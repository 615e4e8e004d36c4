package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) drawHand(c *gin.Context) {
	hand, err := h.svc.DrawHand(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, hand)
}

func (h *Handler) getHand(c *gin.Context) {
	hand, err := h.svc.GetHand(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, hand)
}

func (h *Handler) reorderHand(c *gin.Context) {
	var req struct {
		From *int `json:"from"`
		To   *int `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.From == nil || req.To == nil {
		badRequest(c, "from and to are required")
		return
	}
	hand, err := h.svc.ReorderHand(c.Request.Context(), userID(c), c.Param("id"), *req.From, *req.To)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, hand)
}

// handImage renders the current hand as a PNG
func (h *Handler) handImage(c *gin.Context) {
	b, err := h.svc.HandImage(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
