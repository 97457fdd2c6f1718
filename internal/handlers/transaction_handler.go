package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
	"investdesk/internal/services"
)

// TransactionHandler handles transaction-related requests, including the
// captation report.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	clientService      services.ClientServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, clientService services.ClientServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, clientService: clientService}
}

// TransactionRequest represents the request payload for creating or updating
// a transaction.
type TransactionRequest struct {
	ClientID uint                   `json:"client_id" binding:"required"`
	Type     models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount   float64                `json:"amount" binding:"required,gt=0"`
	Date     *string                `json:"date"`
	Note     string                 `json:"note" binding:"max=500"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a deposit or withdrawal for a client. The date defaults to now when omitted.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(req.ClientID, req.Type, req.Amount, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransaction handles the retrieval of a transaction by ID
// @Summary     Get transaction by ID
// @Description Get a specific transaction with its client
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// ListTransactions handles the paginated, filtered listing of transactions
// @Summary     List transactions
// @Description Get a paginated list of transactions ordered by date descending, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Param       client_id  query int    false "Filter by client ID"
// @Param       type       query string false "Filter by type (deposit, withdrawal)"
// @Param       start_date query string false "Filter by start date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Replace a transaction's fields
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "New transaction values"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction or client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, req.ClientID, req.Type, req.Amount, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// GetCaptationReport handles the captation report
// @Summary     Get captation report
// @Description Get deposit/withdrawal aggregates globally and per client. All filters are optional; date bounds are inclusive. Clients with no matching transactions appear with zeros.
// @Tags        transactions,reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       start_date query string false "Period start, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       end_date   query string false "Period end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       client_id  query int    false "Restrict the report to one client"
// @Success     200 {object} services.CaptationReport "Captation report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/reports/captation [get]
func (h *TransactionHandler) GetCaptationReport(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// A filtered client must exist; a report over a ghost client would be
	// indistinguishable from a client with no transactions.
	if filter.ClientID != nil {
		if _, err := h.clientService.GetClientByID(*filter.ClientID); err != nil {
			respondWithError(c, err)
			return
		}
	}

	report, err := h.transactionService.CaptationReport(filter.StartDate, filter.EndDate, filter.ClientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// parseTransactionFilter parses the shared transaction filter query
// parameters: client_id, type, start_date, end_date.
func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	clientID, err := parseOptionalUintQuery(c, "client_id")
	if err != nil {
		return filter, err
	}
	filter.ClientID = clientID

	if v := c.Query("type"); v != "" {
		transactionType := models.TransactionType(v)
		switch transactionType {
		case models.TransactionTypeDeposit, models.TransactionTypeWithdrawal:
			filter.Type = &transactionType
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be deposit or withdrawal")
		}
	}

	if v := c.Query("start_date"); v != "" {
		t, parseErr := parseFlexibleTime(v)
		if parseErr != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid start_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.StartDate = &t
	}

	if v := c.Query("end_date"); v != "" {
		t, parseErr := parseFlexibleTime(v)
		if parseErr != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid end_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.EndDate = &t
	}

	return filter, nil
}
