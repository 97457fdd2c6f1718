package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
)

// allocationService handles allocation-related business logic.
type allocationService struct {
	db            *gorm.DB
	clientService ClientServicer
	assetService  AssetServicer
}

// NewAllocationService creates a new AllocationServicer.
func NewAllocationService(db *gorm.DB, clientService ClientServicer, assetService AssetServicer) AllocationServicer {
	return &allocationService{db: db, clientService: clientService, assetService: assetService}
}

// CreateAllocation records a purchase lot for a client after verifying the
// client and asset exist.
func (s *allocationService) CreateAllocation(clientID, assetID uint, quantity, buyPrice float64, buyDate time.Time) (*models.Allocation, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be greater than 0")
	}
	if buyPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Buy price must be greater than 0")
	}
	if buyDate.IsZero() {
		buyDate = time.Now()
	}

	client, err := s.clientService.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}
	asset, err := s.assetService.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	allocation := &models.Allocation{
		ClientID: clientID,
		AssetID:  assetID,
		Quantity: quantity,
		BuyPrice: buyPrice,
		BuyDate:  buyDate,
	}

	if err := s.db.Create(allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	allocation.Client = *client
	allocation.Asset = *asset
	return allocation, nil
}

// GetAllocationByID returns an allocation with client and asset preloaded.
func (s *allocationService) GetAllocationByID(id uint) (*models.Allocation, error) {
	var allocation models.Allocation
	if err := s.db.Preload("Client").Preload("Asset").First(&allocation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAllocationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &allocation, nil
}

// ListAllocations returns a paginated list of allocations with an optional
// client filter.
func (s *allocationService) ListAllocations(page pagination.PageRequest, clientID *uint) (*pagination.PageResponse[models.Allocation], error) {
	page.Defaults()

	base := s.db.Model(&models.Allocation{})
	if clientID != nil {
		base = base.Where("client_id = ?", *clientID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var allocations []models.Allocation
	if err := base.Preload("Client").Preload("Asset").Order("id ASC").
		Scopes(pagination.Paginate(page)).Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(allocations, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetClientAllocations returns all allocations for one client with the
// asset preloaded.
func (s *allocationService) GetClientAllocations(clientID uint) ([]models.Allocation, error) {
	if _, err := s.clientService.GetClientByID(clientID); err != nil {
		return nil, err
	}

	var allocations []models.Allocation
	if err := s.db.Preload("Asset").Where("client_id = ?", clientID).
		Order("id ASC").Find(&allocations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return allocations, nil
}

// TotalAllocationValue returns SUM(quantity * buy_price) across all
// allocations, optionally restricted to one client. Returns 0 when there are
// no allocations.
func (s *allocationService) TotalAllocationValue(clientID *uint) (float64, error) {
	base := s.db.Model(&models.Allocation{})
	if clientID != nil {
		base = base.Where("client_id = ?", *clientID)
	}

	var total float64
	if err := base.Select("COALESCE(SUM(quantity * buy_price), 0)").Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// UpdateAllocation replaces an allocation's fields after re-validating them.
func (s *allocationService) UpdateAllocation(id uint, clientID, assetID uint, quantity, buyPrice float64, buyDate time.Time) (*models.Allocation, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be greater than 0")
	}
	if buyPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Buy price must be greater than 0")
	}

	allocation, err := s.GetAllocationByID(id)
	if err != nil {
		return nil, err
	}

	client, err := s.clientService.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}
	asset, err := s.assetService.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	allocation.ClientID = clientID
	allocation.AssetID = assetID
	allocation.Quantity = quantity
	allocation.BuyPrice = buyPrice
	allocation.BuyDate = buyDate

	if err := s.db.Save(allocation).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	allocation.Client = *client
	allocation.Asset = *asset
	return allocation, nil
}

// DeleteAllocation removes an allocation.
func (s *allocationService) DeleteAllocation(id uint) error {
	allocation, err := s.GetAllocationByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(allocation).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
