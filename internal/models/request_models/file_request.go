package request_models

type FileCreateRequest struct {
	UUID        string  `json:"uuid" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	MimeType    string  `json:"mimeType"`
	SizeInBytes int64   `json:"sizeInBytes"`
	Blob        *string `json:"blob,omitempty"`
	AgendaID    int64   `json:"agendaId" binding:"required"`
}

type FileDeleteRequest struct {
	FileIDsToDelete []string `json:"fileIdsToDelete" binding:"required"`
}
