package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/pagination"
	"investdesk/internal/services"
)

// AllocationHandler handles allocation-related requests.
type AllocationHandler struct {
	allocationService services.AllocationServicer
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationService services.AllocationServicer) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// AllocationRequest represents the request payload for creating or updating
// an allocation.
type AllocationRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	AssetID  uint    `json:"asset_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	BuyPrice float64 `json:"buy_price" binding:"required,gt=0"`
	BuyDate  *string `json:"buy_date"`
}

// CreateAllocation handles the creation of a new allocation
// @Summary     Create an allocation
// @Description Record a purchase lot of an asset for a client
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AllocationRequest true "Allocation details"
// @Success     201 {object} models.Allocation "Allocation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client or asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buyDate, err := parseOptionalDate(req.BuyDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocation, err := h.allocationService.CreateAllocation(req.ClientID, req.AssetID, req.Quantity, req.BuyPrice, buyDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"allocation": allocation})
}

// GetAllocation handles the retrieval of an allocation by ID
// @Summary     Get allocation by ID
// @Description Get a specific allocation with its client and asset
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Allocation ID"
// @Success     200 {object} models.Allocation "Allocation details"
// @Failure     400 {object} ErrorResponse "Invalid allocation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	allocationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocation, err := h.allocationService.GetAllocationByID(allocationID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}

// ListAllocations handles the paginated listing of allocations
// @Summary     List allocations
// @Description Get a paginated list of allocations with an optional client filter
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Param       client_id query int false "Filter by client ID"
// @Success     200 {object} pagination.PageResponse[models.Allocation] "Paginated allocations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	clientID, err := parseOptionalUintQuery(c, "client_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.allocationService.ListAllocations(page, clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetClientAllocations handles the listing of one client's allocations
// @Summary     Get client allocations
// @Description Get all allocations for a specific client with assets preloaded
// @Tags        clients,allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Client ID"
// @Success     200 {array} models.Allocation "Client allocations"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clients/{id}/allocations [get]
func (h *AllocationHandler) GetClientAllocations(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	allocations, err := h.allocationService.GetClientAllocations(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocations": allocations})
}

// GetTotalValue handles the retrieval of the invested-value summary
// @Summary     Get total allocation value
// @Description Get SUM(quantity * buy_price) across allocations, optionally for one client
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       client_id query int false "Restrict to one client"
// @Success     200 {object} map[string]float64 "Total invested value"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/summary/value [get]
func (h *AllocationHandler) GetTotalValue(c *gin.Context) {
	clientID, err := parseOptionalUintQuery(c, "client_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.allocationService.TotalAllocationValue(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_value": total})
}

// UpdateAllocation handles updating an existing allocation
// @Summary     Update allocation
// @Description Replace an allocation's fields
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int               true "Allocation ID"
// @Param       request body AllocationRequest true "New allocation values"
// @Success     200 {object} models.Allocation "Updated allocation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Allocation, client, or asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
	allocationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	buyDate, err := parseOptionalDate(req.BuyDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if buyDate.IsZero() {
		buyDate = time.Now()
	}

	allocation, err := h.allocationService.UpdateAllocation(allocationID, req.ClientID, req.AssetID, req.Quantity, req.BuyPrice, buyDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocation": allocation})
}

// DeleteAllocation handles the deletion of an allocation
// @Summary     Delete allocation
// @Description Delete an allocation by ID
// @Tags        allocations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Allocation ID"
// @Success     200 {object} MessageResponse "Allocation deleted"
// @Failure     400 {object} ErrorResponse "Invalid allocation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	allocationID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.allocationService.DeleteAllocation(allocationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Allocation deleted successfully"})
}

// parseOptionalDate parses an optional date string, returning the zero time
// when absent.
func parseOptionalDate(value *string) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, nil
	}
	parsed, err := parseFlexibleTime(*value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format, use RFC3339 or YYYY-MM-DD")
	}
	return parsed, nil
}

// parseOptionalUintQuery parses an optional uint query parameter.
func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+name)
	}
	parsed := uint(id)
	return &parsed, nil
}
