package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/SscSPs/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceHandler handles HTTP requests for the public price list.
type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

// newPriceHandler creates a new priceHandler.
func newPriceHandler(ps portssvc.PriceSvcFacade) *priceHandler {
	return &priceHandler{
		priceService: ps,
	}
}

// registerPriceRoutes registers the price list route.
func registerPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := newPriceHandler(priceService)
	rg.GET("/prices/", h.listPrices)
}

// listPrices godoc
// @Summary List current prices
// @Description Returns the latest price and 24h change of every active currency. Prices are refreshed from upstream when the stored data is older than the staleness window.
// @Tags prices
// @Produce json
// @Success 200 {array} dto.PriceRecordResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /prices/ [get]
func (h *priceHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.priceService.ListPrices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list prices", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list prices")
		return
	}

	logger.Debug("Prices listed", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ToListPriceRecordResponse(records))
}
