package domain

import "time"

// Bakery representa uma padaria cliente do operador. O histórico de vendas
// guarda uma cópia desnormalizada de nome/telefone, então excluir uma padaria
// nunca corrompe vendas já registradas.
type Bakery struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Address    *string   `json:"address,omitempty"`
	LastUsedAt time.Time `json:"last_used_at"`
	CreatedBy  int       `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
