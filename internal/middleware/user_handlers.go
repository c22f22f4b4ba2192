package middleware

import (
	"net/http"
	"os"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func UpdateProfile(c *gin.Context) {
	profileID := c.GetString("profileId")

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile.ID = profileID

	if err := profileRepo.UpdateProfile(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil actualizado"})
}

func DeleteProfile(c *gin.Context) {
	profileID := c.GetString("profileId")

	if err := profileRepo.DeleteProfile(profileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el perfil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil eliminado"})
}

func RequestResetPassword(c *gin.Context) {
	var request struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := profileRepo.GetProfileByEmail(request.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado"})
		return
	}

	token, err := GenerateResetToken(profile.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar token"})
		return
	}

	err = services.SendPasswordResetEmail(profile.Email, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al enviar email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email de recuperación enviado"})
}

func ResetPassword(c *gin.Context) {
	var request struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := jwt.Parse(request.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	email, ok := claims["email"].(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	err = profileRepo.UpdatePassword(email, request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar contraseña"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
