package repository

import (
	"database/sql"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

// TelegramRepository maneja las cuentas de Telegram y los canales de notificación
type TelegramRepository struct {
	db *sql.DB
}

func NewTelegramRepository() *TelegramRepository {
	return &TelegramRepository{
		db: database.DB,
	}
}

func (r *TelegramRepository) CreateTelegramAccount(account *models.TelegramAccount) error {
	query := `
		INSERT INTO telegram_accounts (id, profile_id, chat_id)
		VALUES (?, ?, ?)`

	_, err := r.db.Exec(query, account.ID, account.ProfileID, account.ChatID)
	return err
}

func (r *TelegramRepository) GetAllTelegramAccounts() ([]models.TelegramAccount, error) {
	accounts := []models.TelegramAccount{}
	query := `SELECT id, profile_id, chat_id, created_at FROM telegram_accounts ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var account models.TelegramAccount
		err := rows.Scan(&account.ID, &account.ProfileID, &account.ChatID, &account.CreatedAt)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (r *TelegramRepository) CreateChannel(channel *models.Channel) error {
	query := `
		INSERT INTO channels (id, name, profile_id, channel_identifier)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.Exec(query, channel.ID, channel.Name, channel.ProfileID, channel.ChannelIdentifier)
	return err
}

func (r *TelegramRepository) GetAllChannels() ([]models.Channel, error) {
	channels := []models.Channel{}
	query := `
		SELECT id, name, profile_id, channel_identifier, created_at, updated_at
		FROM channels
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var channel models.Channel
		err := rows.Scan(
			&channel.ID,
			&channel.Name,
			&channel.ProfileID,
			&channel.ChannelIdentifier,
			&channel.CreatedAt,
			&channel.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}

	return channels, nil
}
