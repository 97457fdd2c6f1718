package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "investdesk/internal/errors"
	"investdesk/internal/models"
	"investdesk/internal/pagination"
)

// clientService handles client-related business logic.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// CreateClient creates a new client record.
func (s *clientService) CreateClient(name, email string) (*models.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Email is required")
	}

	client := &models.Client{
		Name:     name,
		Email:    email,
		IsActive: true,
	}

	if err := s.db.Create(client).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateClientEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return client, nil
}

// GetClientByID returns a client by its ID.
func (s *clientService) GetClientByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// GetClientByEmail returns a client by its unique email.
func (s *clientService) GetClientByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := s.db.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// ListClients returns a paginated list of clients with optional free-text
// search on name/email and an optional active filter.
func (s *clientService) ListClients(page pagination.PageRequest, search string, isActive *bool) (*pagination.PageResponse[models.Client], error) {
	page.Defaults()

	base := s.db.Model(&models.Client{})
	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var clients []models.Client
	if err := base.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(clients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateClient updates a client's name, email, and active flag. Empty name or
// email leaves the current value in place.
func (s *clientService) UpdateClient(id uint, name, email string, isActive *bool) (*models.Client, error) {
	client, err := s.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		client.Name = name
	}
	if email != "" {
		client.Email = email
	}
	if isActive != nil {
		client.IsActive = *isActive
	}

	if err := s.db.Save(client).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateClientEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return client, nil
}

// DeactivateClient soft-deletes a client by clearing its active flag.
// Transactions and allocations are kept; the client still appears in
// captation reports.
func (s *clientService) DeactivateClient(id uint) error {
	client, err := s.GetClientByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(client).Update("is_active", false).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
