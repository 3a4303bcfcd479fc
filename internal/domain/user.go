package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é o operador autenticado dono dos registros. Todo acesso a padarias,
// itens e vendas é delimitado pelo seu ID.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserClaims é o conteúdo do token de sessão do operador.
type UserClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
