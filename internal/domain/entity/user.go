package entity

// User is the profile anchored to the identity provider's subject.
// The ID is assigned at account creation and reused as the persistence key;
// this core never creates or deletes users, it only patches profile fields.
type User struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null;uniqueIndex"`
	Image       *string
	Gender      *string
	CollegeName *string
	MobileNo    *string
	CreatedAt   int64 `gorm:"not null"`
	UpdatedAt   int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations, populated by the registration and pass flows
	RegisteredEvents []*EventRegistration `gorm:"foreignKey:UserID;references:ID"`
	GeneratedPasses  []*VisitorPass       `gorm:"foreignKey:UserID;references:ID"`
}
