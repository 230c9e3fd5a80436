package inventory

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// LedgerRepos repositorios atados a la transacción en curso.
type LedgerRepos struct {
	Movements repository.MovementRepository
	Stock     repository.StockRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback: ni la fila del movimiento ni el stock quedan modificados.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos LedgerRepos) error) error
}
