package dto

import "time"

// UpdateTenantRequest entrada para actualizar el perfil del tenant (campos opcionales).
// El schema nunca es modificable.
type UpdateTenantRequest struct {
	Name      *string `json:"name"`
	LegalName *string `json:"legal_name"`
	TaxID     *string `json:"tax_id"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// TenantResponse perfil del tenant (sin datos internos como el schema).
type TenantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LegalName string    `json:"legal_name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}
