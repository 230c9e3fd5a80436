package entity

// Provider es la contraparte de las compras y de la facturación recibida.
type Provider struct {
	ID      int64
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
	Note    string
}
