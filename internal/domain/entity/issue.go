package entity

// Issue is a free-text support/bug report. Rows are write-once:
// nothing in the server ever reads them back, they are reviewed
// straight from the database.
type Issue struct {
	ID        int64  `gorm:"primaryKey"`
	Text      string `gorm:"not null"`
	Email     *string
	Name      *string
	CreatedAt int64 `gorm:"not null"`
}
