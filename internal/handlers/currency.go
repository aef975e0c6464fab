package handlers

import (
	"net/http"
	"strconv"
	"time"

	"easyrent-backend/internal/currency"
	"easyrent-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	store *currency.Store
	sync  *currency.Synchronizer
}

func NewCurrencyHandler(store *currency.Store, sync *currency.Synchronizer) *CurrencyHandler {
	return &CurrencyHandler{store: store, sync: sync}
}

// UpsertRateRequest represents a manual rate override
type UpsertRateRequest struct {
	BaseCurrency   string  `json:"baseCurrency" binding:"required"`
	TargetCurrency string  `json:"targetCurrency" binding:"required"`
	Rate           float64 `json:"rate" binding:"required"`
}

// GetRates godoc
// @Summary List all stored exchange rates
// @Description Every stored directed rate, sorted by base then target currency
// @Tags Currency
// @Produce json
// @Success 200 {array} models.ExchangeRate
// @Failure 500 {object} map[string]string
// @Router /currency/rates [get]
func (h *CurrencyHandler) GetRates(c *gin.Context) {
	rates, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rates})
}

// GetRate godoc
// @Summary Get the rate between two currencies
// @Description Resolves the direct rate, falling back to the reciprocal of the inverse pair
// @Tags Currency
// @Produce json
// @Param base path string true "Base currency code"
// @Param target path string true "Target currency code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /currency/rates/{base}/{target} [get]
func (h *CurrencyHandler) GetRate(c *gin.Context) {
	base := c.Param("base")
	target := c.Param("target")

	rate, err := h.store.GetRate(c.Request.Context(), base, target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"baseCurrency":   base,
		"targetCurrency": target,
		"rate":           rate,
	})
}

// Convert godoc
// @Summary Convert an amount between currencies
// @Tags Currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /currency/convert [get]
func (h *CurrencyHandler) Convert(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		respondError(c, errors.NewInvalidParameter("amount", c.Query("amount")))
		return
	}
	from := c.Query("from")
	to := c.Query("to")

	converted, err := h.store.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	rate, err := h.store.GetRate(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"original":  gin.H{"amount": amount, "currency": from},
		"converted": gin.H{"amount": converted, "currency": to},
		"rate":      rate,
	})
}

// UpsertRate godoc
// @Summary Store or overwrite a directed exchange rate
// @Description Admin-only manual override of a single base->target rate
// @Tags Currency
// @Accept json
// @Produce json
// @Param rate body UpsertRateRequest true "Rate data"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /currency/rates [put]
func (h *CurrencyHandler) UpsertRate(c *gin.Context) {
	var req UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.UpsertRate(c.Request.Context(), req.BaseCurrency, req.TargetCurrency, req.Rate, time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rate stored"})
}

// SyncRates godoc
// @Summary Trigger a feed synchronization
// @Description Admin-only on-demand run of the daily feed synchronization
// @Tags Currency
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /currency/sync [post]
func (h *CurrencyHandler) SyncRates(c *gin.Context) {
	report, err := h.sync.SyncFromFeed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "rate feed synchronization failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pairsUpdated": report.PairsUpdated,
		"skipped":      report.Skipped,
	})
}
