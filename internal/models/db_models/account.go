package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	DisplayName  string
	Role         string `gorm:"default:user"`
	LastLoginAt  int64
}
