package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetExchanges devuelve los exchanges registrados (admin)
func GetExchanges(c *gin.Context) {
	exchanges, err := exchangeRepo.GetAllExchanges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los exchanges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exchanges": exchanges})
}

// CreateExchange registra un nuevo exchange (admin)
func CreateExchange(c *gin.Context) {
	var exchange models.Exchange
	if err := c.ShouldBindJSON(&exchange); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exchange.ID = uuid.New().String()

	if err := exchangeRepo.CreateExchange(&exchange); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el exchange"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Exchange creado exitosamente", "exchange": exchange})
}

// UpdateExchange actualiza un exchange existente (admin)
func UpdateExchange(c *gin.Context) {
	exchangeID := c.Param("id")

	if _, err := exchangeRepo.GetExchange(exchangeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange no encontrado"})
		return
	}

	var exchange models.Exchange
	if err := c.ShouldBindJSON(&exchange); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exchange.ID = exchangeID

	if err := exchangeRepo.UpdateExchange(&exchange); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el exchange"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exchange actualizado exitosamente", "exchange": exchange})
}

// DeleteExchange elimina un exchange (admin)
func DeleteExchange(c *gin.Context) {
	exchangeID := c.Param("id")

	if err := exchangeRepo.DeleteExchange(exchangeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el exchange"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exchange eliminado exitosamente"})
}

// RefreshExchangePrices cachea todos los precios de la plataforma de un
// exchange de forma inmediata (admin)
func RefreshExchangePrices(c *gin.Context) {
	exchangeID := c.Param("id")

	exchange, err := exchangeRepo.GetExchange(exchangeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exchange no encontrado"})
		return
	}

	platform, err := services.GetPlatform(exchange.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := platform.CacheAllPrices()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cachear los precios"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Precios cacheados exitosamente",
		"exchange":      exchange.Name,
		"cached_prices": count,
	})
}
