package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/selected", h.getSelectedCurrency)
		currencies.PUT("/selected", h.setSelectedCurrency)
		currencies.GET("/convert", h.convert)
		currencies.GET("/format", h.format)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the static currency table, flagging the selected display currency
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	selected := h.currencyService.SelectedCurrency()
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies, selected.CurrencyCode))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("code"))

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("currency_code", currencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	selected := h.currencyService.SelectedCurrency()
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency, selected.CurrencyCode))
}

// getSelectedCurrency godoc
// @Summary Get the selected display currency
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyResponse
// @Router /currencies/selected [get]
func (h *currencyHandler) getSelectedCurrency(c *gin.Context) {
	selected := h.currencyService.SelectedCurrency()
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(&selected, selected.CurrencyCode))
}

// setSelectedCurrency godoc
// @Summary Select the display currency
// @Description Replaces the active currency used for conversion and formatting
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.SetSelectedCurrencyRequest true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Unknown currency code"
// @Router /currencies/selected [put]
func (h *currencyHandler) setSelectedCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetSelectedCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err, "SetSelectedCurrency")
		return
	}

	currency, err := h.currencyService.SetSelectedCurrency(c.Request.Context(), req.CurrencyCode)
	if err != nil {
		respondServiceError(c, logger, err, "select currency")
		return
	}

	logger.Info("Selected currency changed", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency, currency.CurrencyCode))
}

// convert godoc
// @Summary Convert an amount into the selected currency
// @Description Computes (amount / rate(from)) * rate(selected). Unknown source codes convert 1:1.
// @Tags currencies
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string false "Source currency code (default USD)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "convert query")
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}
	from := strings.ToUpper(params.From)
	if from == "" {
		from = "USD"
	}

	selected := h.currencyService.SelectedCurrency()
	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: amount,
		From:   from,
		To:     selected.CurrencyCode,
		Result: h.currencyService.Convert(amount, from),
	})
}

// format godoc
// @Summary Format a USD amount in the selected currency
// @Description Converts from USD and renders the absolute value with the selected symbol and two decimals
// @Tags currencies
// @Produce  json
// @Param   amount query string true "USD amount"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /currencies/format [get]
func (h *currencyHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FormatParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err, "format query")
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + params.Amount})
		return
	}

	selected := h.currencyService.SelectedCurrency()
	c.JSON(http.StatusOK, dto.FormatResponse{
		Amount:       amount,
		CurrencyCode: selected.CurrencyCode,
		Formatted:    h.currencyService.Format(amount),
	})
}
