package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

func TestParseImportRow(t *testing.T) {
	valid := models.ImportRow{
		Type:     "buy",
		Date:     "2024-03-05 10:30:00",
		Coin:     "BTC",
		Market:   "irt",
		Quantity: "0.5",
		Price:    "1500000",
	}

	tx, err := parseImportRow(&valid)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if tx.Type != models.TransactionBuy || tx.Market != models.MarketToman {
		t.Errorf("tipo/mercado = %s/%s, se esperaba buy/irt", tx.Type, tx.Market)
	}
	if tx.CoinCode != "btc" {
		t.Errorf("CoinCode = %s, se esperaba btc", tx.CoinCode)
	}
	if tx.Quantity.String() != "0.5" {
		t.Errorf("Quantity = %s, se esperaba 0.5", tx.Quantity.String())
	}

	// Fechas sin hora también son válidas
	valid.Date = "2024-03-05"
	if _, err := parseImportRow(&valid); err != nil {
		t.Errorf("la fecha sin hora debería ser válida: %v", err)
	}

	invalidCases := []struct {
		name   string
		modify func(r *models.ImportRow)
	}{
		{"tipo no válido", func(r *models.ImportRow) { r.Type = "hold" }},
		{"mercado no válido", func(r *models.ImportRow) { r.Market = "eur" }},
		{"moneda vacía", func(r *models.ImportRow) { r.Coin = " " }},
		{"fecha no válida", func(r *models.ImportRow) { r.Date = "05/03/2024" }},
		{"precio no válido", func(r *models.ImportRow) { r.Price = "abc" }},
		{"cantidad no válida", func(r *models.ImportRow) { r.Quantity = "abc" }},
		{"cantidad cero", func(r *models.ImportRow) { r.Quantity = "0" }},
	}

	for _, c := range invalidCases {
		row := models.ImportRow{
			Type:     "buy",
			Date:     "2024-03-05 10:30:00",
			Coin:     "BTC",
			Market:   "irt",
			Quantity: "0.5",
			Price:    "1500000",
		}
		c.modify(&row)
		if _, err := parseImportRow(&row); err == nil {
			t.Errorf("se esperaba un error para el caso %q", c.name)
		}
	}
}

func TestImporterWorkerProcess(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("DATABASE_PATH", filepath.Join(dir, "test.db"))
	defer os.Unsetenv("DATABASE_PATH")

	if err := database.InitDB(); err != nil {
		t.Fatalf("error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Perfil y moneda necesarios para importar transacciones
	if _, err := database.DB.Exec(`INSERT INTO profiles (id, username, password) VALUES (?, ?, ?)`, "profile-1", "agus", "hash"); err != nil {
		t.Fatalf("error al crear el perfil: %v", err)
	}
	if _, err := database.DB.Exec(`INSERT INTO coins (id, title, code, market) VALUES (?, ?, ?, ?)`, "coin-1", "Bitcoin", "btc", models.MarketToman); err != nil {
		t.Fatalf("error al crear la moneda: %v", err)
	}

	// La tercera fila duplica la primera y la segunda tiene un tipo no válido
	csvContent := "type,date,coin,market,quantity,price\n" +
		"buy,2024-03-05 10:30:00,btc,irt,0.5,1500000\n" +
		"hold,2024-03-05 10:30:00,btc,irt,0.5,1500000\n" +
		"buy,2024-03-05 10:30:00,btc,irt,0.5,1500000\n"

	filePath := filepath.Join(dir, "import.csv")
	if err := os.WriteFile(filePath, []byte(csvContent), 0644); err != nil {
		t.Fatalf("error al escribir el CSV: %v", err)
	}

	if _, err := database.DB.Exec(`INSERT INTO importers (id, profile_id, file_name, file_path, status) VALUES (?, ?, ?, ?, ?)`,
		"importer-1", "profile-1", "import.csv", filePath, models.ImporterStatusPending); err != nil {
		t.Fatalf("error al crear el importador: %v", err)
	}

	worker := NewImporterWorker()
	worker.process("importer-1")

	var status string
	var successCount, failCount int
	var errors string
	query := `SELECT status, success_count, fail_count, errors FROM importers WHERE id = ?`
	if err := database.DB.QueryRow(query, "importer-1").Scan(&status, &successCount, &failCount, &errors); err != nil {
		t.Fatalf("error al leer el importador: %v", err)
	}

	if status != models.ImporterStatusProcessed {
		t.Errorf("status = %s, se esperaba %s", status, models.ImporterStatusProcessed)
	}
	if successCount != 1 || failCount != 2 {
		t.Errorf("éxitos/fallos = %d/%d, se esperaba 1/2", successCount, failCount)
	}
	if errors == "" {
		t.Error("se esperaban errores por fila en el importador")
	}

	var txCount int
	if err := database.DB.QueryRow(`SELECT COUNT(*) FROM transactions WHERE profile_id = ?`, "profile-1").Scan(&txCount); err != nil {
		t.Fatalf("error al contar las transacciones: %v", err)
	}
	if txCount != 1 {
		t.Errorf("transacciones creadas = %d, se esperaba 1", txCount)
	}

	// Reprocesar el mismo archivo no debe duplicar transacciones
	worker.process("importer-1")
	if err := database.DB.QueryRow(`SELECT COUNT(*) FROM transactions WHERE profile_id = ?`, "profile-1").Scan(&txCount); err != nil {
		t.Fatalf("error al contar las transacciones: %v", err)
	}
	if txCount != 1 {
		t.Errorf("transacciones tras reprocesar = %d, se esperaba 1", txCount)
	}
}
