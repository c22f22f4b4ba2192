package models

import "time"

// Plataformas de intercambio soportadas
const (
	ExchangeWallex = "wallex"
	ExchangeBitpin = "bitpin"
)

type Exchange struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" binding:"required,oneof=wallex bitpin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
