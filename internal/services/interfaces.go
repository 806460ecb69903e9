package services

import (
	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByTokenHash(hash string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreTokenHash(userID uint, tokenHash string) error
}

// TransactionFilter holds the optional date restriction for listing
// transactions. An exact Date takes precedence over the Year/Month pair;
// with neither set, no date restriction applies.
type TransactionFilter struct {
	Date  *models.Date
	Year  *int
	Month *int
}

// TransactionUpdate carries the optional fields of a partial update. Only
// non-nil fields are mapped to column assignments; owner and id are never
// updatable.
type TransactionUpdate struct {
	Date        *models.Date
	Amount      *float64
	Type        *models.TransactionType
	Category    *string
	Description *string
}

// IsEmpty reports whether the update carries no fields.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Date == nil && u.Amount == nil && u.Type == nil &&
		u.Category == nil && u.Description == nil
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(userID uint, filter TransactionFilter, limit int) ([]models.Transaction, error)
	CreateTransaction(userID uint, date models.Date, amount float64, txType models.TransactionType, category, description string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, update TransactionUpdate) error
	DeleteTransaction(userID, transactionID uint) error
}

// ReportServicer defines the contract for report aggregation over a user's
// transactions. A zero year or month means "current".
type ReportServicer interface {
	WeeklyReport(userID uint) ([]reports.Bucket, error)
	MonthlyReport(userID uint, year, month int) ([]reports.Bucket, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
