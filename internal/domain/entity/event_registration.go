package entity

type EventRegistration struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"` // References: users(id)
	EventName string `gorm:"not null"`
	TeamName  *string
	CreatedAt int64 `gorm:"not null"`
}
