// Package reports turns a transaction list into per-date credit/debit totals.
package reports

import "fintrack/internal/models"

// Bucket holds the running credit and debit sums for one calendar day.
// Buckets are transient aggregation output and are never persisted.
type Bucket struct {
	Date   string  `json:"date"`
	Credit float64 `json:"credit"`
	Debit  float64 `json:"debit"`
}

// Aggregate groups transactions by date and sums credit and debit amounts
// per day. A bucket is created with zero sums the first time its date is
// seen, and buckets are emitted in first-seen order. Type matching is exact
// and case-sensitive; a transaction with any other type contributes to
// neither sum.
func Aggregate(transactions []models.Transaction) []Bucket {
	index := make(map[string]int, len(transactions))
	buckets := make([]Bucket, 0, len(transactions))

	for _, tx := range transactions {
		date := tx.Date.String()
		i, ok := index[date]
		if !ok {
			i = len(buckets)
			index[date] = i
			buckets = append(buckets, Bucket{Date: date})
		}

		switch tx.Type {
		case models.TransactionTypeCredit:
			buckets[i].Credit += tx.Amount
		case models.TransactionTypeDebit:
			buckets[i].Debit += tx.Amount
		}
	}

	return buckets
}
