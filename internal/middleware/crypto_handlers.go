package middleware

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	coinRepo     *repository.CoinRepository
	exchangeRepo *repository.ExchangeRepository
	txRepo       *repository.TransactionRepository
	holdingsRepo *repository.HoldingsRepository
	importerRepo *repository.ImporterRepository
	telegramRepo *repository.TelegramRepository
)

func InitCrypto() {
	coinRepo = repository.NewCoinRepository()
	exchangeRepo = repository.NewExchangeRepository()
	txRepo = repository.NewTransactionRepository()
	holdingsRepo = repository.NewHoldingsRepository()
	importerRepo = repository.NewImporterRepository()
	telegramRepo = repository.NewTelegramRepository()
}

// GetCoins devuelve las monedas habilitadas del sistema
func GetCoins(c *gin.Context) {
	coins, err := coinRepo.GetAllCoins(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las monedas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

// GetCoinPrice devuelve el precio actual de una moneda en el mercado pedido
func GetCoinPrice(c *gin.Context) {
	code := c.Param("code")
	market := c.Query("market")

	price, err := coinRepo.GetCoinPrice(code, market)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	formatted, err := coinRepo.GetFormattedCoinPrice(code, market)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":            code,
		"market":          market,
		"price":           price,
		"formatted_price": formatted,
	})
}

// GetAllCoins devuelve todas las monedas, incluidas las deshabilitadas (admin)
func GetAllCoins(c *gin.Context) {
	coins, err := coinRepo.GetAllCoins(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las monedas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

// CreateCoin crea una nueva moneda (admin)
func CreateCoin(c *gin.Context) {
	var coin models.Coin
	if err := c.ShouldBindJSON(&coin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin.ID = uuid.New().String()

	if err := coinRepo.CreateCoin(&coin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la moneda"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Moneda creada exitosamente", "coin": coin})
}

// UpdateCoin actualiza una moneda existente (admin)
func UpdateCoin(c *gin.Context) {
	coinID := c.Param("id")

	if _, err := coinRepo.GetCoin(coinID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Moneda no encontrada"})
		return
	}

	var coin models.Coin
	if err := c.ShouldBindJSON(&coin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin.ID = coinID

	if err := coinRepo.UpdateCoin(&coin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la moneda"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda actualizada exitosamente", "coin": coin})
}

// UploadCoinIcon recibe el archivo del icono de una moneda, lo guarda en
// el directorio de recursos y actualiza la ruta en la moneda (admin)
func UploadCoinIcon(c *gin.Context) {
	coinID := c.Param("id")

	coin, err := coinRepo.GetCoin(coinID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Moneda no encontrada"})
		return
	}

	file, err := c.FormFile("icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se proporcionó un archivo"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".svg", ".png", ".jpg", ".jpeg":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de icono no soportado"})
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	logoDir := filepath.Join(uploadDir, "coin_logos")
	if err := os.MkdirAll(logoDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al preparar el directorio de iconos"})
		return
	}

	iconPath := filepath.Join(logoDir, coin.ID+ext)
	if err := c.SaveUploadedFile(file, iconPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el icono"})
		return
	}

	if ext == ".svg" {
		coin.Icon = iconPath
	} else {
		coin.IconPNG = iconPath
	}

	if err := coinRepo.UpdateCoin(coin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la moneda"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Icono actualizado exitosamente", "coin": coin})
}

// DeleteCoin elimina una moneda y sus transacciones en cascada (admin)
func DeleteCoin(c *gin.Context) {
	coinID := c.Param("id")

	if err := coinRepo.DeleteCoin(coinID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la moneda"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda eliminada exitosamente"})
}
