package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
)

// transactionService handles transaction-related business logic and the
// captation reporting engine.
type transactionService struct {
	db            *gorm.DB
	clientService ClientServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, clientService ClientServicer) TransactionServicer {
	return &transactionService{db: db, clientService: clientService}
}

// CreateTransaction records a deposit or withdrawal for a client.
func (s *transactionService) CreateTransaction(
	clientID uint,
	transactionType models.TransactionType,
	amount float64,
	date time.Time,
	note string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than 0")
	}
	if transactionType != models.TransactionTypeDeposit && transactionType != models.TransactionTypeWithdrawal {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if date.IsZero() {
		date = time.Now()
	}

	// Verify the client exists
	client, err := s.clientService.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ClientID: clientID,
		Type:     transactionType,
		Amount:   amount,
		Date:     date,
		Note:     note,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction.Client = *client
	return transaction, nil
}

// GetTransactionByID returns a transaction with its client preloaded.
func (s *transactionService) GetTransactionByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Client").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ListTransactions returns a paginated, filtered list of transactions
// ordered by date descending.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Client").Order("date DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateTransaction replaces a transaction's fields after re-validating them.
func (s *transactionService) UpdateTransaction(
	id, clientID uint,
	transactionType models.TransactionType,
	amount float64,
	date time.Time,
	note string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than 0")
	}
	if transactionType != models.TransactionTypeDeposit && transactionType != models.TransactionTypeWithdrawal {
		return nil, apperrors.ErrInvalidTransactionType
	}

	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	client, err := s.clientService.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	transaction.ClientID = clientID
	transaction.Type = transactionType
	transaction.Amount = amount
	transaction.Date = date
	transaction.Note = note

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transaction.Client = *client
	return transaction, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(id uint) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CaptationReport computes deposit/withdrawal aggregates over the filtered
// transaction set, globally and per client.
//
// The three optional filters (inclusive date range, specific client) apply
// identically to every aggregate in the report. The client list covers every
// stored client when no client filter is given; clients with no matching
// transactions appear with all-zero aggregates. An inverted date range is
// not an error and yields zeros everywhere. The breakdown is computed with
// one aggregate query pair per client, ordered by ascending client ID so the
// output is deterministic.
func (s *transactionService) CaptationReport(startDate, endDate *time.Time, clientID *uint) (*CaptationReport, error) {
	dateFilter := TransactionFilter{StartDate: startDate, EndDate: endDate}

	globalFilter := dateFilter
	globalFilter.ClientID = clientID

	totalDeposits, err := s.sumAmount(models.TransactionTypeDeposit, globalFilter)
	if err != nil {
		return nil, err
	}
	totalWithdrawals, err := s.sumAmount(models.TransactionTypeWithdrawal, globalFilter)
	if err != nil {
		return nil, err
	}

	summary := CaptationSummary{
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		NetCaptation:     totalDeposits - totalWithdrawals,
		PeriodStart:      startDate,
		PeriodEnd:        endDate,
	}

	clientsQuery := s.db.Model(&models.Client{}).Order("id ASC")
	if clientID != nil {
		clientsQuery = clientsQuery.Where("id = ?", *clientID)
	}

	var clients []models.Client
	if err := clientsQuery.Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	clientSummaries := make([]ClientCaptationSummary, 0, len(clients))
	for i := range clients {
		client := &clients[i]

		clientFilter := dateFilter
		clientFilter.ClientID = &client.ID

		deposits, err := s.sumAmount(models.TransactionTypeDeposit, clientFilter)
		if err != nil {
			return nil, err
		}
		withdrawals, err := s.sumAmount(models.TransactionTypeWithdrawal, clientFilter)
		if err != nil {
			return nil, err
		}

		clientSummaries = append(clientSummaries, ClientCaptationSummary{
			ClientID:         client.ID,
			ClientName:       client.Name,
			ClientEmail:      client.Email,
			TotalDeposits:    deposits,
			TotalWithdrawals: withdrawals,
			NetCaptation:     deposits - withdrawals,
		})
	}

	return &CaptationReport{Summary: summary, Clients: clientSummaries}, nil
}

// sumAmount computes SUM(amount) for one transaction type under the given
// filters, returning 0 when no rows match.
func (s *transactionService) sumAmount(transactionType models.TransactionType, filter TransactionFilter) (float64, error) {
	filter.Type = &transactionType

	var total float64
	err := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// applyTransactionFilters applies the optional conjunction of client, type,
// and inclusive date-range predicates.
func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	return q
}
