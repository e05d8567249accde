package entity

// NewsletterSubscription holds one consented email address.
// Emails are stored lowercased; the unique index is what turns a
// duplicate subscribe into a conflict instead of a second row.
type NewsletterSubscription struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"not null;uniqueIndex"`
	Consent   bool   `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
