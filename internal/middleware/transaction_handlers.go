package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTransaction crea una nueva transacción para el perfil autenticado
func CreateTransaction(c *gin.Context) {
	var tx models.Transaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Obtener el ID del perfil del contexto (establecido por AuthMiddleware)
	profileID := c.GetString("profileId")
	tx.ProfileID = profileID
	tx.ID = uuid.New().String()

	// Validar que la moneda exista
	coin, err := coinRepo.GetCoinByCode(tx.CoinCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no encontrada"})
		return
	}
	tx.CoinID = coin.ID

	// Si no se proporciona fecha, usar la actual
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

// GetProfileTransactions obtiene las transacciones del perfil con los
// campos derivados del precio actual
func GetProfileTransactions(c *gin.Context) {
	profileID := c.GetString("profileId")

	transactions, err := txRepo.GetProfileTransactionsWithDetails(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las transacciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTransactionDetails obtiene los detalles de una transacción específica
func GetTransactionDetails(c *gin.Context) {
	profileID := c.GetString("profileId")
	transactionID := c.Param("id")

	transaction, err := txRepo.GetTransactionWithDetails(profileID, transactionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction actualiza una transacción existente del perfil
func UpdateTransaction(c *gin.Context) {
	profileID := c.GetString("profileId")
	transactionID := c.Param("id")

	// Verificar que la transacción pertenezca al perfil
	transaction, err := txRepo.GetTransaction(transactionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if transaction.ProfileID != profileID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para modificar esta transacción"})
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
	updated.ProfileID = profileID
	updated.CoinID = coin.ID

	if updated.Date.IsZero() {
		updated.Date = transaction.Date
	}
	updated.PlatformID = updated.ConstructPlatformID()

	if err := txRepo.UpdateTransaction(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción actualizada exitosamente", "transaction": updated})
}

// DeleteTransaction elimina una transacción existente del perfil
func DeleteTransaction(c *gin.Context) {
	profileID := c.GetString("profileId")
	transactionID := c.Param("id")

	// Verificar que la transacción pertenezca al perfil
	transaction, err := txRepo.GetTransaction(transactionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if transaction.ProfileID != profileID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para eliminar esta transacción"})
		return
	}

	if err := txRepo.DeleteTransaction(profileID, transactionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada exitosamente"})
}

// GetRecentTransactions obtiene las transacciones más recientes del perfil
func GetRecentTransactions(c *gin.Context) {
	profileID := c.GetString("profileId")

	// Obtener límite de la URL o usar valor predeterminado
	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 5 // Valor predeterminado
	}

	transactions, err := txRepo.GetRecentTransactions(profileID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las transacciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetHoldings obtiene el resumen de tenencias del perfil
func GetHoldings(c *gin.Context) {
	profileID := c.GetString("profileId")

	holdings, err := holdingsRepo.GetHoldings(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las tenencias"})
		return
	}

	c.JSON(http.StatusOK, holdings)
}
