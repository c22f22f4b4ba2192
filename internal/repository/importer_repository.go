package repository

import (
	"database/sql"
	"errors"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
)

type ImporterRepository struct {
	db *sql.DB
}

func NewImporterRepository() *ImporterRepository {
	return &ImporterRepository{
		db: database.DB,
	}
}

func (r *ImporterRepository) CreateImporter(importer *models.Importer) error {
	query := `
		INSERT INTO importers (id, profile_id, file_name, file_path, status)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		importer.ID,
		importer.ProfileID,
		importer.FileName,
		importer.FilePath,
		importer.Status,
	)
	return err
}

func (r *ImporterRepository) GetImporter(id string) (*models.Importer, error) {
	importer := &models.Importer{}
	var errorsText sql.NullString

	query := `
		SELECT id, profile_id, file_name, file_path, status, success_count, fail_count, errors, created_at
		FROM importers WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&importer.ID,
		&importer.ProfileID,
		&importer.FileName,
		&importer.FilePath,
		&importer.Status,
		&importer.SuccessCount,
		&importer.FailCount,
		&errorsText,
		&importer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.New("importador no encontrado")
	}
	if err != nil {
		return nil, err
	}

	importer.Errors = errorsText.String
	return importer, nil
}

func (r *ImporterRepository) DeleteImporter(id string) error {
	query := `DELETE FROM importers WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *ImporterRepository) GetProfileImporters(profileID string) ([]models.Importer, error) {
	query := `
		SELECT id, profile_id, file_name, file_path, status, success_count, fail_count, errors, created_at
		FROM importers
		WHERE profile_id = ?
		ORDER BY created_at DESC`

	return r.queryImporters(query, profileID)
}

func (r *ImporterRepository) GetAllImporters() ([]models.Importer, error) {
	query := `
		SELECT id, profile_id, file_name, file_path, status, success_count, fail_count, errors, created_at
		FROM importers
		ORDER BY created_at DESC`

	return r.queryImporters(query)
}

func (r *ImporterRepository) queryImporters(query string, args ...interface{}) ([]models.Importer, error) {
	importers := []models.Importer{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var importer models.Importer
		var errorsText sql.NullString

		err := rows.Scan(
			&importer.ID,
			&importer.ProfileID,
			&importer.FileName,
			&importer.FilePath,
			&importer.Status,
			&importer.SuccessCount,
			&importer.FailCount,
			&errorsText,
			&importer.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		importer.Errors = errorsText.String
		importers = append(importers, importer)
	}

	return importers, nil
}
