package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/opdeck/internal/cards"
	"github.com/youruser/opdeck/internal/errors"
	"github.com/youruser/opdeck/internal/service"
)

// Handler serves the deck API on top of a DeckService.
type Handler struct {
	svc    *service.DeckService
	logger *slog.Logger
}

func NewHandler(svc *service.DeckService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// fail writes err with the status matching its code.
func (h *Handler) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"success": false, "error": errors.GetMessage(err)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listCards(c *gin.Context) {
	out, err := h.svc.Cards(c.Query("type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "data": out})
}

func (h *Handler) filterCards(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil {
		badRequest(c, err.Error())
		return
	}
	out := h.svc.FilterCards(opt)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "data": out})
}
