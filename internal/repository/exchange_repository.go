package repository

import (
	"database/sql"
	"errors"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

type ExchangeRepository struct {
	db *sql.DB
}

func NewExchangeRepository() *ExchangeRepository {
	return &ExchangeRepository{
		db: database.DB,
	}
}

func (r *ExchangeRepository) CreateExchange(exchange *models.Exchange) error {
	query := `
		INSERT INTO exchanges (id, name)
		VALUES (?, ?)`

	_, err := r.db.Exec(query, exchange.ID, exchange.Name)
	return err
}

func (r *ExchangeRepository) GetAllExchanges() ([]models.Exchange, error) {
	exchanges := []models.Exchange{}
	query := `SELECT id, name, created_at, updated_at FROM exchanges ORDER BY created_at`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var exchange models.Exchange
		err := rows.Scan(&exchange.ID, &exchange.Name, &exchange.CreatedAt, &exchange.UpdatedAt)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, exchange)
	}

	return exchanges, nil
}

func (r *ExchangeRepository) GetExchange(id string) (*models.Exchange, error) {
	exchange := &models.Exchange{}
	query := `SELECT id, name, created_at, updated_at FROM exchanges WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(&exchange.ID, &exchange.Name, &exchange.CreatedAt, &exchange.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.New("exchange no encontrado")
	}

	return exchange, err
}

// GetLatestExchange devuelve el exchange registrado más recientemente.
// Es el que se usa para resolver los precios de las monedas.
func (r *ExchangeRepository) GetLatestExchange() (*models.Exchange, error) {
	exchange := &models.Exchange{}
	query := `SELECT id, name, created_at, updated_at FROM exchanges ORDER BY created_at DESC, id DESC LIMIT 1`

	err := r.db.QueryRow(query).Scan(&exchange.ID, &exchange.Name, &exchange.CreatedAt, &exchange.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.New("no hay exchanges registrados")
	}

	return exchange, err
}

func (r *ExchangeRepository) UpdateExchange(exchange *models.Exchange) error {
	query := `
		UPDATE exchanges
		SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	_, err := r.db.Exec(query, exchange.Name, exchange.ID)
	return err
}

func (r *ExchangeRepository) DeleteExchange(id string) error {
	query := `DELETE FROM exchanges WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}
