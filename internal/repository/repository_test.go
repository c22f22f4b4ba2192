package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

// setupTestDB inicializa una base de datos temporal para el test
func setupTestDB(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	os.Setenv("DATABASE_PATH", filepath.Join(dir, "test.db"))
	t.Cleanup(func() { os.Unsetenv("DATABASE_PATH") })

	if err := database.InitDB(); err != nil {
		t.Fatalf("error al inicializar la base de datos: %v", err)
	}
	t.Cleanup(func() { database.DB.Close() })
}

// seedProfile crea un perfil de prueba
func seedProfile(t *testing.T, id, username string) {
	t.Helper()

	profileRepo := NewProfileRepository()
	profile := &models.Profile{
		ID:       id,
		Username: username,
		Password: "hash",
	}
	if err := profileRepo.CreateProfile(profile); err != nil {
		t.Fatalf("error al crear el perfil: %v", err)
	}
}

// seedCoin crea una moneda de prueba
func seedCoin(t *testing.T, id, code, market string) {
	t.Helper()

	coinRepo := NewCoinRepository()
	coin := &models.Coin{
		ID:     id,
		Title:  code,
		Code:   code,
		Enable: true,
		Market: market,
	}
	if err := coinRepo.CreateCoin(coin); err != nil {
		t.Fatalf("error al crear la moneda: %v", err)
	}
}
