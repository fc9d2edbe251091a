package domain

type Admin struct {
	ID             int64
	Email          string `gorm:"uniqueIndex"`
	HashedPassword string
	CreatedAt      int64
	UpdatedAt      int64
}
