package entity

// Client es la contraparte de las ventas.
type Client struct {
	ID      int64
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
	Note    string
}
