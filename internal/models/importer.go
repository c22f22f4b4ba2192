package models

import "time"

// Estados de un importador
const (
	ImporterStatusPending    = "pending"
	ImporterStatusProcessing = "processing"
	ImporterStatusProcessed  = "processed"
	ImporterStatusFailed     = "failed"
)

// Importer representa un archivo subido por el usuario para crear
// transacciones de forma masiva mediante un trabajo en segundo plano.
type Importer struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profile_id"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	Status       string    `json:"status"`
	SuccessCount int       `json:"success_count"`
	FailCount    int       `json:"fail_count"`
	Errors       string    `json:"errors,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ImportRow es una fila del archivo CSV de importación
type ImportRow struct {
	Type     string `csv:"type"`
	Date     string `csv:"date"`
	Coin     string `csv:"coin"`
	Market   string `csv:"market"`
	Quantity string `csv:"quantity"`
	Price    string `csv:"price"`
}
