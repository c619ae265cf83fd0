package api

import (
	"alcyxob/fitvideo/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService service.QuoteService
}

func NewQuoteHandler(quoteService service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// RandomQuote returns one quote document as stored.
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, err := h.quoteService.RandomQuote(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoQuotes) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve quote.")
		return
	}
	c.JSON(http.StatusOK, quote)
}
