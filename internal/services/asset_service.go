package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/logger"
	"investdesk/internal/marketdata"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
)

// assetService handles asset-related business logic, including market-data
// lookups and enrichment merges.
type assetService struct {
	db     *gorm.DB
	market MarketDataProvider
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, market MarketDataProvider) AssetServicer {
	return &assetService{db: db, market: market}
}

// CreateAsset creates a new asset record. The ticker is stored upper-cased.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	if strings.TrimSpace(input.Ticker) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}

	asset := &models.Asset{
		Ticker:        strings.ToUpper(input.Ticker),
		Name:          input.Name,
		Exchange:      input.Exchange,
		Currency:      input.Currency,
		CurrentPrice:  input.CurrentPrice,
		Sector:        input.Sector,
		Industry:      input.Industry,
		MarketCap:     input.MarketCap,
		Volume:        input.Volume,
		PERatio:       input.PERatio,
		DividendYield: input.DividendYield,
	}

	if err := s.db.Create(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateTicker
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// GetAssetByID returns an asset by its ID.
func (s *assetService) GetAssetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// GetAssetByTicker returns an asset by its unique ticker (case-insensitive).
func (s *assetService) GetAssetByTicker(ticker string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("ticker = ?", strings.ToUpper(ticker)).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// ListAssets returns a paginated list of assets with optional free-text
// search on ticker/name, ordered by ticker.
func (s *assetService) ListAssets(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	base := s.db.Model(&models.Asset{})
	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where("ticker LIKE ? OR name LIKE ?", pattern, pattern)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Order("ticker ASC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// SearchMarket issues a free-text search against the market-data provider.
// The provider is best-effort: transport failures are logged and surface as
// an empty result so autocomplete never breaks a request.
func (s *assetService) SearchMarket(ctx context.Context, query string, limit int) []marketdata.QuoteSummary {
	results, err := s.market.Search(ctx, query, limit)
	if err != nil {
		logger.Get().Warnw("market search failed",
			"query", query,
			"error", err.Error(),
		)
		return []marketdata.QuoteSummary{}
	}
	if results == nil {
		return []marketdata.QuoteSummary{}
	}
	return results
}

// GetMarketDetails looks up the full provider record for one ticker. Both a
// transport failure and a provider that has nothing yield absent; only the
// former is logged as a failure.
func (s *assetService) GetMarketDetails(ctx context.Context, ticker string) *marketdata.AssetDetail {
	detail, err := s.market.Details(ctx, ticker)
	if err != nil {
		logger.Get().Warnw("market detail lookup failed",
			"ticker", ticker,
			"error", err.Error(),
		)
		return nil
	}
	return detail
}

// EnrichAsset refreshes a stored asset from the market-data provider. The
// merge is null-safe: fields the provider omitted keep their stored values.
// The merged record is persisted in a single transaction so concurrent
// readers see either the old or the fully merged asset.
func (s *assetService) EnrichAsset(ctx context.Context, id uint) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	detail := s.GetMarketDetails(ctx, asset.Ticker)
	if detail == nil {
		return nil, apperrors.ErrMarketDataMissing
	}

	MergeAssetDetail(asset, detail)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Save(asset).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// RefreshAllAssets refreshes every stored asset from the market-data
// provider. Assets the provider has nothing for are skipped, not failed, so
// one delisted ticker cannot abort a scheduled run.
func (s *assetService) RefreshAllAssets(ctx context.Context) (*RefreshSummary, error) {
	var assets []models.Asset
	if err := s.db.Order("ticker ASC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &RefreshSummary{Total: len(assets)}
	for i := range assets {
		asset := &assets[i]

		detail := s.GetMarketDetails(ctx, asset.Ticker)
		if detail == nil {
			summary.Skipped = append(summary.Skipped, asset.Ticker)
			continue
		}

		MergeAssetDetail(asset, detail)
		if err := s.db.Save(asset).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		summary.Refreshed++
	}

	return summary, nil
}

// MergeAssetDetail applies a provider detail record onto a stored asset as a
// field-level partial update: a field is overwritten only when the provider
// reported a value. Omitted fields (nil pointers, empty strings) never erase
// previously known data. The ticker is the asset's identity and is not touched.
func MergeAssetDetail(asset *models.Asset, detail *marketdata.AssetDetail) {
	if detail.Name != "" {
		asset.Name = detail.Name
	}
	if detail.Exchange != "" {
		asset.Exchange = detail.Exchange
	}
	if detail.Currency != "" {
		asset.Currency = detail.Currency
	}
	if detail.CurrentPrice != nil {
		asset.CurrentPrice = detail.CurrentPrice
	}
	if detail.Sector != "" {
		asset.Sector = detail.Sector
	}
	if detail.Industry != "" {
		asset.Industry = detail.Industry
	}
	if detail.MarketCap != nil {
		asset.MarketCap = detail.MarketCap
	}
	if detail.Volume != nil {
		asset.Volume = detail.Volume
	}
	if detail.PERatio != nil {
		asset.PERatio = detail.PERatio
	}
	if detail.DividendYield != nil {
		asset.DividendYield = detail.DividendYield
	}
	if detail.LastUpdated != nil {
		asset.LastUpdated = detail.LastUpdated
	}
}
