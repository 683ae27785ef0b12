package entity

import "time"

// Roles conocidos para User. El rol no se valida como enum: cualquier string
// se persiste, solo "admin" habilita las rutas de escritura.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // "user" | "admin"
	CreatedAt    time.Time
}
