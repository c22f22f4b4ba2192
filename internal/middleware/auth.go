package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var profileRepo *repository.ProfileRepository

func InitAuth() {
	profileRepo = repository.NewProfileRepository()
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("profileId", claims["profileId"])
		c.Next()
	}
}

func GenerateToken(profileID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"profileId": profileID,
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateResetToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func Login(c *gin.Context) {
	var login struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar si el perfil existe
	profile, err := profileRepo.GetProfileByUsername(login.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Perfil no encontrado"})
		return
	}

	// Verificar la contraseña
	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Contraseña incorrecta"})
		return
	}

	token, err := GenerateToken(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inicio de sesión exitoso",
		"token":   token,
		"profile": gin.H{
			"id":       profile.ID,
			"username": profile.Username,
			"email":    profile.Email,
		},
	})
}

func Signup(c *gin.Context) {
	var signup struct {
		Username             string `json:"username" binding:"required"`
		Password             string `json:"password" binding:"required,min=6"`
		FirstName            string `json:"first_name"`
		LastName             string `json:"last_name"`
		MobileNumber         string `json:"mobile_number"`
		Email                string `json:"email" binding:"omitempty,email"`
		CombineNotifications bool   `json:"combine_notifications"`
	}

	if err := c.ShouldBindJSON(&signup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar si el nombre de usuario ya está registrado
	if _, err := profileRepo.GetProfileByUsername(signup.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "El nombre de usuario ya está registrado"})
		return
	}

	// Hash de la contraseña
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la contraseña"})
		return
	}

	// Crear nuevo perfil
	profile := &models.Profile{
		ID:                   uuid.New().String(),
		Username:             signup.Username,
		Password:             string(hashedPassword),
		FirstName:            signup.FirstName,
		LastName:             signup.LastName,
		MobileNumber:         signup.MobileNumber,
		Email:                signup.Email,
		CombineNotifications: signup.CombineNotifications,
	}

	// Guardar el perfil en la base de datos
	if err := profileRepo.CreateProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el perfil"})
		return
	}

	token, err := GenerateToken(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro exitoso",
		"token":   token,
		"profile": gin.H{
			"id":       profile.ID,
			"username": profile.Username,
			"email":    profile.Email,
		},
	})
}

// Logout no invalida el token (es JWT sin estado), solo confirma el cierre
// de sesión para que el cliente descarte el token.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}
