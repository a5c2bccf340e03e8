package models

// User lives in the user store, not the catalog store. Password hashing
// happens in the auth layer; the model only carries the hash.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string `gorm:"size:256;not null"`
}

// UserCollection is a membership row: user owns card. CardID references
// Card.ID in the catalog store; the two databases are not joined, so the
// existence check happens in the application and the composite unique index
// is the backstop against concurrent duplicate inserts.
type UserCollection struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_card"`
	CardID string `gorm:"not null;uniqueIndex:idx_user_card"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// TableName returns the table name for UserCollection
func (UserCollection) TableName() string {
	return "user_collections"
}
