package repository

import (
	"database/sql"
	"errors"
	"log"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/services"
	"github.com/shopspring/decimal"
)

type CoinRepository struct {
	db *sql.DB
}

func NewCoinRepository() *CoinRepository {
	return &CoinRepository{
		db: database.DB,
	}
}

func (r *CoinRepository) CreateCoin(coin *models.Coin) error {
	query := `
		INSERT INTO coins (id, title, code, enable, icon, icon_png, icon_background_color, market)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		coin.ID,
		coin.Title,
		coin.Code,
		coin.Enable,
		coin.Icon,
		coin.IconPNG,
		coin.IconBackgroundColor,
		coin.Market,
	)
	return err
}

// GetAllCoins devuelve las monedas del sistema. Con enabledOnly solo
// devuelve las monedas habilitadas.
func (r *CoinRepository) GetAllCoins(enabledOnly bool) ([]models.Coin, error) {
	coins := []models.Coin{}

	query := `
		SELECT id, title, code, enable, icon, icon_png, icon_background_color, market, created_at, updated_at
		FROM coins`
	if enabledOnly {
		query += ` WHERE enable = 1`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		coin, err := scanCoin(rows)
		if err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}

	return coins, nil
}

func (r *CoinRepository) GetCoin(id string) (*models.Coin, error) {
	query := `
		SELECT id, title, code, enable, icon, icon_png, icon_background_color, market, created_at, updated_at
		FROM coins WHERE id = ?`

	return r.getCoin(query, id)
}

func (r *CoinRepository) GetCoinByCode(code string) (*models.Coin, error) {
	query := `
		SELECT id, title, code, enable, icon, icon_png, icon_background_color, market, created_at, updated_at
		FROM coins WHERE code = ?`

	return r.getCoin(query, code)
}

func (r *CoinRepository) getCoin(query string, arg interface{}) (*models.Coin, error) {
	var coin models.Coin
	var title, icon, iconPNG, iconBackgroundColor, market sql.NullString

	err := r.db.QueryRow(query, arg).Scan(
		&coin.ID,
		&title,
		&coin.Code,
		&coin.Enable,
		&icon,
		&iconPNG,
		&iconBackgroundColor,
		&market,
		&coin.CreatedAt,
		&coin.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.New("moneda no encontrada")
	}
	if err != nil {
		return nil, err
	}

	coin.Title = title.String
	coin.Icon = icon.String
	coin.IconPNG = iconPNG.String
	coin.IconBackgroundColor = iconBackgroundColor.String
	coin.Market = market.String

	return &coin, nil
}

func (r *CoinRepository) UpdateCoin(coin *models.Coin) error {
	query := `
		UPDATE coins
		SET title = ?, code = ?, enable = ?, icon = ?, icon_png = ?, icon_background_color = ?, market = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	_, err := r.db.Exec(query,
		coin.Title,
		coin.Code,
		coin.Enable,
		coin.Icon,
		coin.IconPNG,
		coin.IconBackgroundColor,
		coin.Market,
		coin.ID,
	)
	return err
}

func (r *CoinRepository) DeleteCoin(id string) error {
	query := `DELETE FROM coins WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}

// GetCoinPrice obtiene el precio actual de una moneda en el mercado dado,
// resolviendo la plataforma a través del último exchange registrado. Si no
// se pasa mercado se usa el mercado por defecto de la moneda.
func (r *CoinRepository) GetCoinPrice(code, market string) (decimal.Decimal, error) {
	coin, err := r.GetCoinByCode(code)
	if err != nil {
		return decimal.Zero, err
	}

	if market == "" {
		market = coin.Market
	}
	if market == "" {
		return decimal.Zero, errors.New("la moneda no tiene mercado configurado")
	}

	exchangeRepo := NewExchangeRepository()
	exchange, err := exchangeRepo.GetLatestExchange()
	if err != nil {
		return decimal.Zero, err
	}

	platform, err := services.GetPlatform(exchange.Name)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := platform.GetPrice(coin.Code, market)
	if err != nil {
		log.Printf("Error obteniendo precio para %s en %s: %v", coin.Code, exchange.Name, err)
		return decimal.Zero, err
	}

	return price, nil
}

// GetFormattedCoinPrice devuelve el precio actual formateado según el mercado
func (r *CoinRepository) GetFormattedCoinPrice(code, market string) (string, error) {
	coin, err := r.GetCoinByCode(code)
	if err != nil {
		return "", err
	}

	if market == "" {
		market = coin.Market
	}

	price, err := r.GetCoinPrice(code, market)
	if err != nil {
		return "", err
	}
	return models.FormatMarketPrice(price, market), nil
}

// scanCoin escanea una fila de la tabla de monedas manejando los campos opcionales
func scanCoin(rows *sql.Rows) (models.Coin, error) {
	var coin models.Coin
	var title, icon, iconPNG, iconBackgroundColor, market sql.NullString

	err := rows.Scan(
		&coin.ID,
		&title,
		&coin.Code,
		&coin.Enable,
		&icon,
		&iconPNG,
		&iconBackgroundColor,
		&market,
		&coin.CreatedAt,
		&coin.UpdatedAt,
	)
	if err != nil {
		return coin, err
	}

	coin.Title = title.String
	coin.Icon = icon.String
	coin.IconPNG = iconPNG.String
	coin.IconBackgroundColor = iconBackgroundColor.String
	coin.Market = market.String

	return coin, nil
}
