package services

import (
	"context"
	"time"

	"investdesk/internal/marketdata"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
)

// UserServicer defines the contract for operator-account business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
}

// ClientServicer defines the contract for client-related business logic.
type ClientServicer interface {
	CreateClient(name, email string) (*models.Client, error)
	GetClientByID(id uint) (*models.Client, error)
	GetClientByEmail(email string) (*models.Client, error)
	ListClients(page pagination.PageRequest, search string, isActive *bool) (*pagination.PageResponse[models.Client], error)
	UpdateClient(id uint, name, email string, isActive *bool) (*models.Client, error)
	DeactivateClient(id uint) error
}

// MarketDataProvider is the external provider surface consumed by the asset
// service. It may fail for any reason (network, rate limit, unknown symbol);
// the asset service treats every failure as "no data available".
type MarketDataProvider interface {
	Search(ctx context.Context, query string, limit int) ([]marketdata.QuoteSummary, error)
	Details(ctx context.Context, ticker string) (*marketdata.AssetDetail, error)
}

// AssetInput holds the fields accepted when creating an asset directly.
type AssetInput struct {
	Ticker        string
	Name          string
	Exchange      string
	Currency      string
	CurrentPrice  *float64
	Sector        string
	Industry      string
	MarketCap     *int64
	Volume        *int64
	PERatio       *float64
	DividendYield *float64
}

// RefreshSummary reports the outcome of a bulk market-data refresh. Tickers
// the provider had nothing for are listed in Skipped.
type RefreshSummary struct {
	Total     int      `json:"total"`
	Refreshed int      `json:"refreshed"`
	Skipped   []string `json:"skipped,omitempty"`
}

// AssetServicer defines the contract for asset-related business logic,
// including market-data lookups and enrichment.
type AssetServicer interface {
	CreateAsset(input AssetInput) (*models.Asset, error)
	GetAssetByID(id uint) (*models.Asset, error)
	GetAssetByTicker(ticker string) (*models.Asset, error)
	ListAssets(page pagination.PageRequest, search string) (*pagination.PageResponse[models.Asset], error)
	SearchMarket(ctx context.Context, query string, limit int) []marketdata.QuoteSummary
	GetMarketDetails(ctx context.Context, ticker string) *marketdata.AssetDetail
	EnrichAsset(ctx context.Context, id uint) (*models.Asset, error)
	RefreshAllAssets(ctx context.Context) (*RefreshSummary, error)
}

// AllocationServicer defines the contract for allocation-related business logic.
type AllocationServicer interface {
	CreateAllocation(clientID, assetID uint, quantity, buyPrice float64, buyDate time.Time) (*models.Allocation, error)
	GetAllocationByID(id uint) (*models.Allocation, error)
	ListAllocations(page pagination.PageRequest, clientID *uint) (*pagination.PageResponse[models.Allocation], error)
	GetClientAllocations(clientID uint) ([]models.Allocation, error)
	TotalAllocationValue(clientID *uint) (float64, error)
	UpdateAllocation(id uint, clientID, assetID uint, quantity, buyPrice float64, buyDate time.Time) (*models.Allocation, error)
	DeleteAllocation(id uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	ClientID  *uint
	Type      *models.TransactionType
	StartDate *time.Time
	EndDate   *time.Time
}

// CaptationSummary holds the global deposit/withdrawal aggregates for a
// report period. PeriodStart/PeriodEnd echo the raw filter values.
type CaptationSummary struct {
	TotalDeposits    float64    `json:"total_deposits"`
	TotalWithdrawals float64    `json:"total_withdrawals"`
	NetCaptation     float64    `json:"net_captation"`
	PeriodStart      *time.Time `json:"period_start,omitempty"`
	PeriodEnd        *time.Time `json:"period_end,omitempty"`
}

// ClientCaptationSummary holds one client's aggregates within the report.
type ClientCaptationSummary struct {
	ClientID         uint    `json:"client_id"`
	ClientName       string  `json:"client_name"`
	ClientEmail      string  `json:"client_email"`
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	NetCaptation     float64 `json:"net_captation"`
}

// CaptationReport is the full captation report: global summary plus a
// per-client breakdown ordered by ascending client ID.
type CaptationReport struct {
	Summary CaptationSummary         `json:"summary"`
	Clients []ClientCaptationSummary `json:"clients"`
}

// TransactionServicer defines the contract for transaction-related business
// logic, including the captation reporting engine.
type TransactionServicer interface {
	CreateTransaction(clientID uint, transactionType models.TransactionType, amount float64, date time.Time, note string) (*models.Transaction, error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(id, clientID uint, transactionType models.TransactionType, amount float64, date time.Time, note string) (*models.Transaction, error)
	DeleteTransaction(id uint) error
	CaptationReport(startDate, endDate *time.Time, clientID *uint) (*CaptationReport, error)
}
