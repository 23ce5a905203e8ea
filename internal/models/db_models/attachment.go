package db_models

type Attachment struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	AgendaItemID int64  `gorm:"index"`
	UUID         string `gorm:"uniqueIndex"`
	Name         string
	MimeType     string
	SizeInBytes  int64
	Blob         *string
	CreatedAt    int64 `gorm:"autoCreateTime"`
}
