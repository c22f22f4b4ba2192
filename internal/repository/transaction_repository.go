package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		db: database.DB,
	}
}

func (r *TransactionRepository) CreateTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, date, price, quantity, market, coin_id, profile_id, change, platform_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var change interface{}
	if !tx.Change.IsZero() {
		change = tx.Change.String()
	}

	_, err := r.db.Exec(query,
		tx.ID,
		tx.Type,
		tx.Date,
		tx.Price.String(),
		tx.Quantity.String(),
		tx.Market,
		tx.CoinID,
		tx.ProfileID,
		change,
		tx.PlatformID,
	)
	return err
}

const transactionSelectSQL = `
	SELECT t.id, t.type, t.date, t.price, t.quantity, t.market, t.coin_id, c.code, t.profile_id, t.change, t.platform_id, t.created_at
	FROM transactions t
	JOIN coins c ON c.id = t.coin_id`

func (r *TransactionRepository) GetTransaction(id string) (*models.Transaction, error) {
	query := transactionSelectSQL + ` WHERE t.id = ?`

	row := r.db.QueryRow(query, id)
	tx, err := scanTransactionRow(row)
	if err == sql.ErrNoRows {
		return nil, errors.New("transacción no encontrada")
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (r *TransactionRepository) GetProfileTransactions(profileID string) ([]models.Transaction, error) {
	query := transactionSelectSQL + `
	WHERE t.profile_id = ?
	ORDER BY t.date DESC`

	return r.queryTransactions(query, profileID)
}

// GetRecentTransactions obtiene las transacciones más recientes del perfil
func (r *TransactionRepository) GetRecentTransactions(profileID string, limit int) ([]models.Transaction, error) {
	query := transactionSelectSQL + `
	WHERE t.profile_id = ?
	ORDER BY t.date DESC
	LIMIT ?`

	return r.queryTransactions(query, profileID, limit)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransactionRows(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}

	return transactions, nil
}

// GetProfileTransactionsWithDetails obtiene las transacciones del perfil con
// los campos derivados del precio actual de cada moneda. Si no se puede
// obtener el precio actual se usa 0, igual que en la interfaz de administración.
func (r *TransactionRepository) GetProfileTransactionsWithDetails(profileID string) ([]models.TransactionDetails, error) {
	transactions, err := r.GetProfileTransactions(profileID)
	if err != nil {
		return nil, err
	}

	coinRepo := NewCoinRepository()
	prices := make(map[string]decimal.Decimal)

	details := []models.TransactionDetails{}
	for _, tx := range transactions {
		cacheKey := tx.CoinCode + ":" + tx.Market
		price, exists := prices[cacheKey]
		if !exists {
			price, err = coinRepo.GetCoinPrice(tx.CoinCode, tx.Market)
			if err != nil {
				log.Printf("Error obteniendo precio para %s: %v", tx.CoinCode, err)
				price = decimal.Zero
			}
			prices[cacheKey] = price
		}

		details = append(details, models.NewTransactionDetails(tx, price))
	}

	return details, nil
}

// GetTransactionWithDetails obtiene una transacción del perfil con sus campos derivados
func (r *TransactionRepository) GetTransactionWithDetails(profileID, transactionID string) (*models.TransactionDetails, error) {
	tx, err := r.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	if tx.ProfileID != profileID {
		return nil, errors.New("transacción no encontrada")
	}

	coinRepo := NewCoinRepository()
	price, err := coinRepo.GetCoinPrice(tx.CoinCode, tx.Market)
	if err != nil {
		log.Printf("Error obteniendo precio para %s: %v", tx.CoinCode, err)
		price = decimal.Zero
	}

	details := models.NewTransactionDetails(*tx, price)
	return &details, nil
}

func (r *TransactionRepository) UpdateTransaction(tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET type = ?, date = ?, price = ?, quantity = ?, market = ?, coin_id = ?, change = ?, platform_id = ?
		WHERE id = ? AND profile_id = ?`

	var change interface{}
	if !tx.Change.IsZero() {
		change = tx.Change.String()
	}

	_, err := r.db.Exec(query,
		tx.Type,
		tx.Date,
		tx.Price.String(),
		tx.Quantity.String(),
		tx.Market,
		tx.CoinID,
		change,
		tx.PlatformID,
		tx.ID,
		tx.ProfileID,
	)
	return err
}

func (r *TransactionRepository) DeleteTransaction(profileID, transactionID string) error {
	query := `DELETE FROM transactions WHERE id = ? AND profile_id = ?`

	_, err := r.db.Exec(query, transactionID, profileID)
	return err
}

// PlatformIDExists verifica si ya existe una transacción del perfil con el
// platform_id dado. Se usa para deduplicar filas importadas.
func (r *TransactionRepository) PlatformIDExists(profileID, platformID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM transactions WHERE platform_id = ? AND profile_id = ?)`

	err := r.db.QueryRow(query, platformID, profileID).Scan(&exists)
	return exists, err
}

// scanTransactionRow escanea una transacción desde un QueryRow
func scanTransactionRow(row *sql.Row) (*models.Transaction, error) {
	var tx models.Transaction
	var market, platformID sql.NullString
	var change sql.NullString

	err := row.Scan(
		&tx.ID,
		&tx.Type,
		&tx.Date,
		&tx.Price,
		&tx.Quantity,
		&market,
		&tx.CoinID,
		&tx.CoinCode,
		&tx.ProfileID,
		&change,
		&platformID,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyNullableFields(&tx, market, change, platformID)
	return &tx, nil
}

// scanTransactionRows escanea una transacción desde un conjunto de filas
func scanTransactionRows(rows *sql.Rows) (*models.Transaction, error) {
	var tx models.Transaction
	var market, platformID sql.NullString
	var change sql.NullString

	err := rows.Scan(
		&tx.ID,
		&tx.Type,
		&tx.Date,
		&tx.Price,
		&tx.Quantity,
		&market,
		&tx.CoinID,
		&tx.CoinCode,
		&tx.ProfileID,
		&change,
		&platformID,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	applyNullableFields(&tx, market, change, platformID)
	return &tx, nil
}

func applyNullableFields(tx *models.Transaction, market, change, platformID sql.NullString) {
	tx.Market = market.String
	tx.PlatformID = platformID.String

	if change.Valid {
		if parsed, err := decimal.NewFromString(change.String); err == nil {
			tx.Change = parsed
		}
	}
}
