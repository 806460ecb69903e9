package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// DefaultListLimit bounds transaction listings when no limit is given.
const DefaultListLimit = 100

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions retrieves the user's transactions ordered by date
// descending, bounded by limit. An empty result is not an error.
func (s *transactionService) ListTransactions(userID uint, filter TransactionFilter, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	q := s.db.Where("user_id = ?", userID)
	q = applyDateFilter(q, filter)

	transactions := []models.Transaction{}
	if err := q.Order("date DESC").Limit(limit).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// applyDateFilter narrows a query per the filter precedence: an exact date
// wins over a year/month pair; neither leaves the query unrestricted.
func applyDateFilter(q *gorm.DB, f TransactionFilter) *gorm.DB {
	switch {
	case f.Date != nil:
		return q.Where("date = ?", *f.Date)
	case f.Year != nil && f.Month != nil:
		start := models.NewDate(*f.Year, time.Month(*f.Month), 1)
		end := models.DateOf(start.Time.AddDate(0, 1, 0))
		return q.Where("date >= ? AND date < ?", start, end)
	default:
		return q
	}
}

// CreateTransaction persists a new transaction owned by the user and returns
// the created row including its new identifier.
func (s *transactionService) CreateTransaction(userID uint, date models.Date, amount float64, txType models.TransactionType, category, description string) (*models.Transaction, error) {
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if txType != models.TransactionTypeCredit && txType != models.TransactionTypeDebit {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be credit or debit")
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Description: description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// UpdateTransaction applies the non-nil fields of update to the user's
// transaction. An empty update is a no-op. Zero rows affected is still
// success: the caller cannot distinguish "updated" from "not found or not
// owned", which keeps cross-user probes blind.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, update TransactionUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	assignments := map[string]interface{}{}
	if update.Date != nil {
		if update.Date.IsZero() {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must not be empty")
		}
		assignments["date"] = *update.Date
	}
	if update.Amount != nil {
		if *update.Amount < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		assignments["amount"] = *update.Amount
	}
	if update.Type != nil {
		if *update.Type != models.TransactionTypeCredit && *update.Type != models.TransactionTypeDebit {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be credit or debit")
		}
		assignments["type"] = *update.Type
	}
	if update.Category != nil {
		assignments["category"] = *update.Category
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}

	if err := s.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Updates(assignments).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteTransaction removes the transaction only if owned by the user, and
// reports success regardless of whether a row was removed (same rule as
// UpdateTransaction).
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
