package middleware

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImporter recibe el archivo CSV de transacciones, lo guarda en el
// directorio de subidas, crea el importador y encola su procesamiento
// en segundo plano.
func UploadImporter(c *gin.Context) {
	profileID := c.GetString("profileId")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se proporcionó un archivo"})
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	importerDir := filepath.Join(uploadDir, "importer")
	if err := os.MkdirAll(importerDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al preparar el directorio de subidas"})
		return
	}

	importer := &models.Importer{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		FileName:  file.Filename,
		Status:    models.ImporterStatusPending,
	}
	importer.FilePath = filepath.Join(importerDir, importer.ID+".csv")

	if err := c.SaveUploadedFile(file, importer.FilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el archivo"})
		return
	}

	if err := importerRepo.CreateImporter(importer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el importador"})
		return
	}

	// Encolar el procesamiento asíncrono del archivo
	if worker := GetImporterWorker(); worker != nil {
		worker.Enqueue(importer.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Archivo recibido, el procesamiento comenzará en breve",
		"importer": importer,
	})
}

// GetProfileImporters obtiene los importadores del perfil autenticado
func GetProfileImporters(c *gin.Context) {
	profileID := c.GetString("profileId")

	importers, err := importerRepo.GetProfileImporters(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los importadores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"importers": importers})
}

// GetImporter obtiene el estado de un importador del perfil
func GetImporter(c *gin.Context) {
	profileID := c.GetString("profileId")
	importerID := c.Param("id")

	importer, err := importerRepo.GetImporter(importerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if importer.ProfileID != profileID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para ver este importador"})
		return
	}

	c.JSON(http.StatusOK, importer)
}
