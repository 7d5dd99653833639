package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/price_tracker_app/internal/dto"
	"github.com/SscSPs/price_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgAdded          = "Added to watchlist"
	msgAlreadyPresent = "Already in watchlist"
	msgRemoved        = "Removed from watchlist"
)

// watchlistHandler handles HTTP requests for the authenticated user's watchlist.
type watchlistHandler struct {
	watchlistService portssvc.WatchlistSvcFacade
}

// newWatchlistHandler creates a new watchlistHandler.
func newWatchlistHandler(ws portssvc.WatchlistSvcFacade) *watchlistHandler {
	return &watchlistHandler{
		watchlistService: ws,
	}
}

// registerWatchlistRoutes registers all watchlist routes. rg must already
// carry the auth middleware.
func registerWatchlistRoutes(rg *gin.RouterGroup, watchlistService portssvc.WatchlistSvcFacade) {
	h := newWatchlistHandler(watchlistService)

	watchlist := rg.Group("/watchlist")
	{
		watchlist.GET("/", h.listWatchlist)
		watchlist.POST("/", h.addToWatchlist)
		watchlist.DELETE("/", h.removeFromWatchlist)
	}
}

// listWatchlist godoc
// @Summary List watchlist
// @Description Returns price records for every currency the user follows.
// @Tags watchlist
// @Produce json
// @Success 200 {array} dto.PriceRecordResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /watchlist/ [get]
func (h *watchlistHandler) listWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	records, err := h.watchlistService.ListWatchlist(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list watchlist", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list watchlist")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPriceRecordResponse(records))
}

// addToWatchlist godoc
// @Summary Follow a currency
// @Description Adds a currency to the watchlist. Adding a followed currency again succeeds.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body dto.WatchlistRequest true "Currency to follow"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /watchlist/ [post]
func (h *watchlistHandler) addToWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid watchlist request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "currency_id is required"})
		return
	}

	currencyID := req.CurrencyID.Int64()
	added, err := h.watchlistService.AddToWatchlist(c.Request.Context(), userID, currencyID)
	if err != nil {
		logger.Warn("Failed to add to watchlist", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to update watchlist")
		return
	}

	msg := msgAlreadyPresent
	if added {
		msg = msgAdded
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

// removeFromWatchlist godoc
// @Summary Unfollow a currency
// @Description Removes a currency from the watchlist.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body dto.WatchlistRequest true "Currency to unfollow"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not in watchlist"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /watchlist/ [delete]
func (h *watchlistHandler) removeFromWatchlist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid watchlist request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "currency_id is required"})
		return
	}

	currencyID := req.CurrencyID.Int64()
	if err := h.watchlistService.RemoveFromWatchlist(c.Request.Context(), userID, currencyID); err != nil {
		logger.Warn("Failed to remove from watchlist", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to update watchlist")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgRemoved})
}
