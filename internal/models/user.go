package models

// User represents the user model in the database.
// TokenHash holds the SHA-256 hash of the user's single active bearer token;
// it is overwritten on every login, which is the only form of revocation.
type User struct {
	Base
	Username     string        `gorm:"uniqueIndex;not null" json:"username"`
	Password     string        `gorm:"not null" json:"-"`
	TokenHash    string        `gorm:"size:64;index" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
