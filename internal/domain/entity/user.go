package entity

import "time"

// User representa un operador del sistema (pertenece a un Tenant).
type User struct {
	ID           int64
	TenantID     int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operator
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
