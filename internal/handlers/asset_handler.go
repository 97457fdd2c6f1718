package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/pagination"
	"investdesk/internal/services"
)

// AssetHandler handles asset-related requests, including market-data lookups.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for creating an asset
type CreateAssetRequest struct {
	Ticker        string   `json:"ticker" binding:"required,max=20"`
	Name          string   `json:"name" binding:"required,max=255"`
	Exchange      string   `json:"exchange" binding:"max=100"`
	Currency      string   `json:"currency" binding:"omitempty,iso4217"`
	CurrentPrice  *float64 `json:"current_price" binding:"omitempty,gt=0"`
	Sector        string   `json:"sector" binding:"max=100"`
	Industry      string   `json:"industry" binding:"max=100"`
	MarketCap     *int64   `json:"market_cap" binding:"omitempty,gte=0"`
	Volume        *int64   `json:"volume" binding:"omitempty,gte=0"`
	PERatio       *float64 `json:"pe_ratio"`
	DividendYield *float64 `json:"dividend_yield" binding:"omitempty,gte=0"`
}

// MarketSearchQuery represents the query parameters for a market search.
type MarketSearchQuery struct {
	Q     string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=20"`
}

// CreateAsset handles the creation of a new asset
// @Summary     Create an asset
// @Description Register a new tradeable asset. The ticker is stored upper-cased.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Ticker already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(services.AssetInput{
		Ticker:        req.Ticker,
		Name:          req.Name,
		Exchange:      req.Exchange,
		Currency:      req.Currency,
		CurrentPrice:  req.CurrentPrice,
		Sector:        req.Sector,
		Industry:      req.Industry,
		MarketCap:     req.MarketCap,
		Volume:        req.Volume,
		PERatio:       req.PERatio,
		DividendYield: req.DividendYield,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAsset handles the retrieval of an asset by ID
// @Summary     Get asset by ID
// @Description Get a specific asset by ID
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// GetAssetByTicker handles the retrieval of an asset by ticker
// @Summary     Get asset by ticker
// @Description Get a specific asset by its ticker symbol (case-insensitive)
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Ticker symbol"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/ticker/{ticker} [get]
func (h *AssetHandler) GetAssetByTicker(c *gin.Context) {
	asset, err := h.assetService.GetAssetByTicker(c.Param("ticker"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// ListAssets handles the paginated listing of assets
// @Summary     List assets
// @Description Get a paginated list of assets ordered by ticker, with optional free-text search
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       search    query string false "Free-text search on ticker or name"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Paginated assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssets(page, c.Query("search"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchMarket handles free-text search against the market-data provider
// @Summary     Search the market
// @Description Search the market-data provider for matching instruments. Provider outages yield an empty list, not an error.
// @Tags        market
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       q     query string true  "Search text"
// @Param       limit query int    false "Maximum results (default 10, max 20)"
// @Success     200 {array} marketdata.QuoteSummary "Matching instruments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /market/search [get]
func (h *AssetHandler) SearchMarket(c *gin.Context) {
	var query MarketSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	results := h.assetService.SearchMarket(c.Request.Context(), query.Q, query.Limit)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetMarketDetails handles a market-data lookup for one ticker
// @Summary     Get market details
// @Description Get the market-data provider's full record for a ticker
// @Tags        market
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Ticker symbol"
// @Success     200 {object} marketdata.AssetDetail "Provider record"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No market data for this ticker"
// @Router      /market/assets/{ticker} [get]
func (h *AssetHandler) GetMarketDetails(c *gin.Context) {
	detail := h.assetService.GetMarketDetails(c.Request.Context(), c.Param("ticker"))
	if detail == nil {
		respondWithError(c, apperrors.ErrMarketDataMissing)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": detail})
}

// EnrichAsset handles refreshing a stored asset from the market-data provider
// @Summary     Enrich asset
// @Description Refresh a stored asset's market fields from the provider. Fields the provider omits keep their stored values.
// @Tags        assets,market
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Enriched asset"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found or no market data"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/enrich [post]
func (h *AssetHandler) EnrichAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.EnrichAsset(c.Request.Context(), assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// RefreshAssets handles the scheduled bulk refresh of all stored assets
// @Summary     Refresh all assets
// @Description Refresh every stored asset from the market-data provider. Intended for schedulers; requires the refresh API key.
// @Tags        jobs
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "Refresh API key"
// @Success     200 {object} services.RefreshSummary "Refresh summary"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /jobs/assets/refresh [post]
func (h *AssetHandler) RefreshAssets(c *gin.Context) {
	summary, err := h.assetService.RefreshAllAssets(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
