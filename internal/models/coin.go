package models

import "time"

type Coin struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title" binding:"required"`
	Code                string    `json:"code" binding:"required"`
	Enable              bool      `json:"enable"`
	Icon                string    `json:"icon,omitempty"`     // Icono SVG de la moneda
	IconPNG             string    `json:"icon_png,omitempty"` // Icono PNG de la moneda
	IconBackgroundColor string    `json:"icon_background_color,omitempty"`
	Market              string    `json:"market,omitempty"` // Mercado por defecto (irt o usdt)
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
