package entity

type PassType string

const (
	PassTypeDay1 PassType = "day1"
	PassTypeDay2 PassType = "day2"
	PassTypeDual PassType = "dual"
)

// VisitorPass is a paid entry pass for the festival days.
// The ID is a snowflake so passes sort by generation time,
// PassCode is the opaque value printed on the pass itself.
type VisitorPass struct {
	ID        int64    `gorm:"primaryKey;autoIncrement:false"`
	UserID    string   `gorm:"not null;index"` // References: users(id)
	PassType  PassType `gorm:"not null"`
	PassCode  string   `gorm:"not null;uniqueIndex"`
	Price     int      `gorm:"not null"` // INR
	CreatedAt int64    `gorm:"not null"`
}
