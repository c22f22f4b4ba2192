package models

import (
	"time"
)

type Profile struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	Password             string    `json:"-"` // El "-" evita que se serialice en JSON
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	MobileNumber         string    `json:"mobile_number"`
	Email                string    `json:"email"`
	CombineNotifications bool      `json:"combine_notifications"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TelegramAccount vincula un perfil con su chat de Telegram
type TelegramAccount struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id" binding:"required"`
	ChatID    string    `json:"chat_id" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Channel es un canal de notificaciones asociado a un perfil
type Channel struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" binding:"required"`
	ProfileID         string    `json:"profile_id" binding:"required"`
	ChannelIdentifier string    `json:"channel_identifier" binding:"required"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
