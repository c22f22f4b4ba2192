package repository

import (
	"database/sql"
	"errors"

	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/database"
	"github.com/AgusMolinaCode/Crypto_Assets_Api.git/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		db: database.DB,
	}
}

func (r *ProfileRepository) CreateProfile(profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, username, password, first_name, last_name, mobile_number, email, combine_notifications)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		profile.ID,
		profile.Username,
		profile.Password,
		profile.FirstName,
		profile.LastName,
		profile.MobileNumber,
		profile.Email,
		profile.CombineNotifications,
	)
	return err
}

// GetAllProfiles devuelve los perfiles del sistema. Se puede buscar por
// nombre de usuario y filtrar por combine_notifications.
func (r *ProfileRepository) GetAllProfiles(search string, combineNotifications *bool) ([]models.Profile, error) {
	profiles := []models.Profile{}

	query := `
		SELECT id, username, first_name, last_name, mobile_number, email, combine_notifications, created_at, updated_at
		FROM profiles
		WHERE 1 = 1`
	args := []interface{}{}

	if search != "" {
		query += ` AND username LIKE ?`
		args = append(args, "%"+search+"%")
	}

	if combineNotifications != nil {
		query += ` AND combine_notifications = ?`
		args = append(args, *combineNotifications)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var profile models.Profile
		err := rows.Scan(
			&profile.ID,
			&profile.Username,
			&profile.FirstName,
			&profile.LastName,
			&profile.MobileNumber,
			&profile.Email,
			&profile.CombineNotifications,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *ProfileRepository) GetProfileByID(id string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, username, first_name, last_name, mobile_number, email, combine_notifications, created_at, updated_at
		FROM profiles WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.MobileNumber,
		&profile.Email,
		&profile.CombineNotifications,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.New("perfil no encontrado")
	}

	return profile, err
}

func (r *ProfileRepository) GetProfileByUsername(username string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, username, password, first_name, last_name, mobile_number, email, combine_notifications, created_at, updated_at
		FROM profiles WHERE username = ?`

	err := r.db.QueryRow(query, username).Scan(
		&profile.ID,
		&profile.Username,
		&profile.Password,
		&profile.FirstName,
		&profile.LastName,
		&profile.MobileNumber,
		&profile.Email,
		&profile.CombineNotifications,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.New("perfil no encontrado")
	}

	return profile, err
}

func (r *ProfileRepository) GetProfileByEmail(email string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, username, first_name, last_name, mobile_number, email, combine_notifications, created_at, updated_at
		FROM profiles WHERE email = ?`

	err := r.db.QueryRow(query, email).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.MobileNumber,
		&profile.Email,
		&profile.CombineNotifications,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.New("perfil no encontrado")
	}

	return profile, err
}

func (r *ProfileRepository) UpdateProfile(profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET first_name = ?, last_name = ?, mobile_number = ?, email = ?, combine_notifications = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	_, err := r.db.Exec(query,
		profile.FirstName,
		profile.LastName,
		profile.MobileNumber,
		profile.Email,
		profile.CombineNotifications,
		profile.ID,
	)
	return err
}

func (r *ProfileRepository) DeleteProfile(id string) error {
	query := `DELETE FROM profiles WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *ProfileRepository) UpdatePassword(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query := `UPDATE profiles SET password = ?, updated_at = CURRENT_TIMESTAMP WHERE email = ?`

	_, err = r.db.Exec(query, string(hashedPassword), email)
	return err
}
