package services

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Formatos de fecha aceptados en el archivo de importación
var importDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ImporterWorker procesa en segundo plano los archivos de importación.
// Los handlers encolan el ID del importador y el worker crea las
// transacciones del archivo de forma asíncrona.
type ImporterWorker struct {
	jobs      chan string
	isRunning bool
	stopChan  chan struct{}
	mutex     sync.Mutex
	db        *sql.DB
}

// NewImporterWorker crea un nuevo worker de importación
func NewImporterWorker() *ImporterWorker {
	return &ImporterWorker{
		jobs:     make(chan string, 100),
		stopChan: make(chan struct{}),
		db:       database.DB,
	}
}

// Start inicia el worker de importación
func (w *ImporterWorker) Start() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isRunning {
		return
	}

	w.isRunning = true
	w.stopChan = make(chan struct{})

	go func() {
		for {
			select {
			case importerID := <-w.jobs:
				w.process(importerID)
			case <-w.stopChan:
				return
			}
		}
	}()

	log.Printf("Worker de importación iniciado")
}

// Stop detiene el worker de importación
func (w *ImporterWorker) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.isRunning {
		return
	}

	w.isRunning = false
	close(w.stopChan)
	log.Printf("Worker de importación detenido")
}

// Enqueue encola un importador para ser procesado
func (w *ImporterWorker) Enqueue(importerID string) {
	log.Printf("Encolando importador %s", importerID)
	w.jobs <- importerID
}

// process procesa el archivo de un importador: parsea el CSV, crea una
// transacción por fila saltando las duplicadas, y guarda los contadores
// de éxitos y fallos junto con los errores por fila.
func (w *ImporterWorker) process(importerID string) {
	log.Printf("Procesando importador %s", importerID)

	var profileID, filePath string
	query := `SELECT profile_id, file_path FROM importers WHERE id = ?`
	if err := w.db.QueryRow(query, importerID).Scan(&profileID, &filePath); err != nil {
		log.Printf("Error al obtener el importador %s: %v", importerID, err)
		return
	}

	if _, err := w.db.Exec(`UPDATE importers SET status = ? WHERE id = ?`, models.ImporterStatusProcessing, importerID); err != nil {
		log.Printf("Error al actualizar el estado del importador %s: %v", importerID, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		log.Printf("Error al abrir el archivo %s: %v", filePath, err)
		w.finish(importerID, models.ImporterStatusFailed, 0, 0, fmt.Sprintf("no se pudo abrir el archivo: %v", err))
		return
	}
	defer file.Close()

	var importRows []*models.ImportRow
	if err := gocsv.UnmarshalFile(file, &importRows); err != nil {
		log.Printf("Error al parsear el CSV del importador %s: %v", importerID, err)
		w.finish(importerID, models.ImporterStatusFailed, 0, 0, fmt.Sprintf("no se pudo parsear el CSV: %v", err))
		return
	}

	successCount := 0
	failCount := 0
	var rowErrors []string

	for i, row := range importRows {
		// La fila 1 es el encabezado del archivo
		rowNumber := i + 2

		tx, err := parseImportRow(row)
		if err != nil {
			failCount++
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}

		// Resolver la moneda por su código
		var coinID string
		err = w.db.QueryRow(`SELECT id FROM coins WHERE code = ?`, tx.CoinCode).Scan(&coinID)
		if err != nil {
			failCount++
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: moneda no encontrada: %s", rowNumber, tx.CoinCode))
			continue
		}

		tx.ID = uuid.New().String()
		tx.CoinID = coinID
		tx.ProfileID = profileID
		tx.PlatformID = tx.ConstructPlatformID()

		// Saltar las filas que ya fueron importadas
		var exists bool
		err = w.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM transactions WHERE platform_id = ? AND profile_id = ?)`, tx.PlatformID, profileID).Scan(&exists)
		if err == nil && exists {
			failCount++
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: transacción duplicada (%s)", rowNumber, tx.PlatformID))
			continue
		}

		insertQuery := `
			INSERT INTO transactions (id, type, date, price, quantity, market, coin_id, profile_id, platform_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err = w.db.Exec(insertQuery,
			tx.ID,
			tx.Type,
			tx.Date,
			tx.Price.String(),
			tx.Quantity.String(),
			tx.Market,
			tx.CoinID,
			tx.ProfileID,
			tx.PlatformID,
		)
		if err != nil {
			failCount++
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}

		successCount++
	}

	status := models.ImporterStatusProcessed
	if successCount == 0 && failCount > 0 {
		status = models.ImporterStatusFailed
	}

	w.finish(importerID, status, successCount, failCount, strings.Join(rowErrors, "\n"))
	log.Printf("Importador %s procesado: %d éxitos, %d fallos", importerID, successCount, failCount)
}

// finish guarda el resultado final del importador
func (w *ImporterWorker) finish(importerID, status string, successCount, failCount int, errors string) {
	query := `
		UPDATE importers
		SET status = ?, success_count = ?, fail_count = ?, errors = ?
		WHERE id = ?`

	if _, err := w.db.Exec(query, status, successCount, failCount, errors, importerID); err != nil {
		log.Printf("Error al guardar el resultado del importador %s: %v", importerID, err)
	}
}

// parseImportRow valida una fila del CSV y la convierte en una transacción
func parseImportRow(row *models.ImportRow) (models.Transaction, error) {
	var tx models.Transaction

	txType := strings.ToLower(strings.TrimSpace(row.Type))
	if txType != models.TransactionBuy && txType != models.TransactionSell {
		return tx, fmt.Errorf("tipo de transacción no válido: %s", row.Type)
	}

	market := strings.ToLower(strings.TrimSpace(row.Market))
	if market != models.MarketToman && market != models.MarketTether {
		return tx, fmt.Errorf("mercado no válido: %s", row.Market)
	}

	coinCode := strings.ToLower(strings.TrimSpace(row.Coin))
	if coinCode == "" {
		return tx, fmt.Errorf("la fila no tiene moneda")
	}

	var date time.Time
	var err error
	for _, layout := range importDateLayouts {
		date, err = time.Parse(layout, strings.TrimSpace(row.Date))
		if err == nil {
			break
		}
	}
	if err != nil {
		return tx, fmt.Errorf("fecha no válida: %s", row.Date)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
	if err != nil {
		return tx, fmt.Errorf("precio no válido: %s", row.Price)
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(row.Quantity))
	if err != nil {
		return tx, fmt.Errorf("cantidad no válida: %s", row.Quantity)
	}

	if quantity.LessThanOrEqual(decimal.Zero) {
		return tx, fmt.Errorf("la cantidad debe ser mayor que cero")
	}

	tx.Type = txType
	tx.Market = market
	tx.CoinCode = coinCode
	tx.Date = date
	tx.Price = price
	tx.Quantity = quantity

	return tx, nil
}
