package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// reportService selects the rows feeding the report aggregator.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// WeeklyReport aggregates the user's transactions dated within the trailing
// 7 days, inclusive. There is no upper bound, so future-dated rows count too.
func (s *reportService) WeeklyReport(userID uint) ([]reports.Bucket, error) {
	cutoff := models.Today().AddDays(-7)

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ?", userID, cutoff).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reports.Aggregate(transactions), nil
}

// MonthlyReport aggregates the user's transactions falling in the given year
// and month. A zero year or month defaults to the current one.
func (s *reportService) MonthlyReport(userID uint, year, month int) ([]reports.Bucket, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	start := models.NewDate(year, time.Month(month), 1)
	end := models.DateOf(start.Time.AddDate(0, 1, 0))

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return reports.Aggregate(transactions), nil
}
