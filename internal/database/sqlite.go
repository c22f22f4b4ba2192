package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	// Ruta de la base de datos (configurable por entorno)
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = filepath.Join("database", "crypto_assets.db")
	}

	// Crear el directorio de la base de datos si no existe
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var err error
	// Activar claves foráneas para que funcionen los borrados en cascada
	DB, err = sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return err
	}

	// Crear tabla de perfiles si no existe
	createProfilesTableSQL := `
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		mobile_number TEXT,
		email TEXT,
		combine_notifications INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err = DB.Exec(createProfilesTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de cuentas de Telegram
	createTelegramTableSQL := `
	CREATE TABLE IF NOT EXISTS telegram_accounts (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		chat_id TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	);`

	_, err = DB.Exec(createTelegramTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de canales
	createChannelsTableSQL := `
	CREATE TABLE IF NOT EXISTS channels (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		channel_identifier TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	);`

	_, err = DB.Exec(createChannelsTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de exchanges
	createExchangesTableSQL := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err = DB.Exec(createExchangesTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de monedas
	createCoinsTableSQL := `
	CREATE TABLE IF NOT EXISTS coins (
		id TEXT PRIMARY KEY,
		title TEXT UNIQUE,
		code TEXT UNIQUE NOT NULL,
		enable INTEGER DEFAULT 1,
		icon TEXT,
		icon_png TEXT,
		icon_background_color TEXT,
		market TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err = DB.Exec(createCoinsTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de transacciones. Los campos price, quantity y change se
	// guardan como texto para no perder precisión decimal.
	createTransactionsTableSQL := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		date DATETIME,
		price TEXT NOT NULL,
		quantity TEXT NOT NULL,
		market TEXT,
		coin_id TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		change TEXT,
		platform_id TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(coin_id) REFERENCES coins(id) ON DELETE CASCADE,
		FOREIGN KEY(profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	);`

	_, err = DB.Exec(createTransactionsTableSQL)
	if err != nil {
		return err
	}

	// Crear índices para búsqueda rápida de transacciones
	createTransactionsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_transactions_profile_date
	ON transactions(profile_id, date);`

	_, err = DB.Exec(createTransactionsIndexSQL)
	if err != nil {
		return err
	}

	createPlatformIDIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_transactions_platform_id
	ON transactions(platform_id);`

	_, err = DB.Exec(createPlatformIDIndexSQL)
	if err != nil {
		return err
	}

	// Crear tabla de importadores
	createImportersTableSQL := `
	CREATE TABLE IF NOT EXISTS importers (
		id TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL,
		file_name TEXT,
		file_path TEXT NOT NULL,
		status TEXT DEFAULT 'pending',
		success_count INTEGER DEFAULT 0,
		fail_count INTEGER DEFAULT 0,
		errors TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	);`

	_, err = DB.Exec(createImportersTableSQL)
	if err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	err = RunMigrations()
	return err
}
