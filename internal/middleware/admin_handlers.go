package middleware

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProfiles lista los perfiles del sistema. Admite búsqueda por nombre
// de usuario (?search=) y filtro por combinación de notificaciones
// (?combine_notifications=true|false).
func GetProfiles(c *gin.Context) {
	search := c.Query("search")

	var combineFilter *bool
	if value := c.Query("combine_notifications"); value != "" {
		combine := value == "true" || value == "1"
		combineFilter = &combine
	}

	profiles, err := profileRepo.GetAllProfiles(search, combineFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los perfiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
	})
}

func GetProfile(c *gin.Context) {
	profileID := c.Param("id")

	profile, err := profileRepo.GetProfileByID(profileID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
	})
}

func DeleteProfileByAdmin(c *gin.Context) {
	profileID := c.Param("id")

	if _, err := profileRepo.GetProfileByID(profileID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	if err := profileRepo.DeleteProfile(profileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil eliminado"})
}

// GetTelegramAccounts lista las cuentas de Telegram registradas
func GetTelegramAccounts(c *gin.Context) {
	accounts, err := telegramRepo.GetAllTelegramAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las cuentas de Telegram"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"telegram_accounts": accounts,
	})
}

// GetChannels lista los canales de notificación registrados
func GetChannels(c *gin.Context) {
	channels, err := telegramRepo.GetAllChannels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los canales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"channels": channels,
	})
}

// CreateTelegramAccount registra la cuenta de Telegram de un perfil
func CreateTelegramAccount(c *gin.Context) {
	var account models.TelegramAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := profileRepo.GetProfileByID(account.ProfileID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	account.ID = uuid.New().String()

	if err := telegramRepo.CreateTelegramAccount(&account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la cuenta de Telegram"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Cuenta de Telegram creada exitosamente",
		"telegram_account": account,
	})
}

// CreateChannel registra un canal de notificaciones de un perfil
func CreateChannel(c *gin.Context) {
	var channel models.Channel
	if err := c.ShouldBindJSON(&channel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := profileRepo.GetProfileByID(channel.ProfileID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	channel.ID = uuid.New().String()

	if err := telegramRepo.CreateChannel(&channel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el canal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Canal creado exitosamente",
		"channel": channel,
	})
}

// GetAllImporters lista todos los importadores del sistema
func GetAllImporters(c *gin.Context) {
	importers, err := importerRepo.GetAllImporters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los importadores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"importers": importers,
	})
}

// GetAdminTransactions lista las transacciones de un perfil con los campos
// derivados que se muestran en el panel de administración
func GetAdminTransactions(c *gin.Context) {
	profileID := c.Param("id")

	transactions, err := txRepo.GetProfileTransactionsWithDetails(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las transacciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
	})
}

// DeleteImporterByAdmin elimina un importador junto con su archivo
func DeleteImporterByAdmin(c *gin.Context) {
	importerID := c.Param("id")

	importer, err := importerRepo.GetImporter(importerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := importerRepo.DeleteImporter(importerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el importador"})
		return
	}

	if err := os.Remove(importer.FilePath); err != nil {
		log.Printf("No se pudo eliminar el archivo del importador %s: %v", importerID, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Importador eliminado exitosamente"})
}

// CreateTransactionByAdmin crea una transacción para el perfil indicado
func CreateTransactionByAdmin(c *gin.Context) {
	profileID := c.Param("id")

	if _, err := profileRepo.GetProfileByID(profileID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	var tx models.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin, err := coinRepo.GetCoinByCode(tx.CoinCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no encontrada"})
		return
	}

	tx.ID = uuid.New().String()
	tx.ProfileID = profileID
	tx.CoinID = coin.ID

	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}
	if tx.PlatformID == "" {
		tx.PlatformID = tx.ConstructPlatformID()
	}

	if err := txRepo.CreateTransaction(&tx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la transacción"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Transacción creada exitosamente",
		"transaction": tx,
	})
}

// UpdateTransactionByAdmin actualiza una transacción de cualquier perfil
func UpdateTransactionByAdmin(c *gin.Context) {
	transactionID := c.Param("id")

	existing, err := txRepo.GetTransaction(transactionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var updated models.Transaction
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coin, err := coinRepo.GetCoinByCode(updated.CoinCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no encontrada"})
		return
	}

	updated.ID = transactionID
	updated.ProfileID = existing.ProfileID
	updated.CoinID = coin.ID

	if updated.Date.IsZero() {
		updated.Date = existing.Date
	}
	updated.PlatformID = updated.ConstructPlatformID()

	if err := txRepo.UpdateTransaction(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción actualizada exitosamente", "transaction": updated})
}

// DeleteTransactionByAdmin elimina una transacción de cualquier perfil
func DeleteTransactionByAdmin(c *gin.Context) {
	transactionID := c.Param("id")

	existing, err := txRepo.GetTransaction(transactionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := txRepo.DeleteTransaction(existing.ProfileID, transactionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada exitosamente"})
}

// GetCacheStatus devuelve el estado del servicio de cacheo de precios
func GetCacheStatus(c *gin.Context) {
	cacher := GetPriceCacher()
	if cacher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "El servicio de cacheo no está iniciado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"last_updated": cacher.GetLastUpdated(),
		"last_cached":  cacher.GetLastCached(),
	})
}
