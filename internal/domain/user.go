package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o operador configurado que pode acessar a API
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	UserEmail string
	jwt.RegisteredClaims
}
