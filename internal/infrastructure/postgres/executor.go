package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/tenant"
)

// tablePlaceholder marca en una sentencia las tablas a calificar con el namespace: {products}.
var tablePlaceholder = regexp.MustCompile(`\{([a-z_]+)\}`)

var allowedTables = func() map[string]struct{} {
	m := make(map[string]struct{}, len(entity.BusinessTables))
	for _, t := range entity.BusinessTables {
		m[t] = struct{}{}
	}
	return m
}()

var errNoNamespace = errors.New("executor: namespace no resuelto")

// Qualify reemplaza cada {tabla} de stmt por "namespace"."tabla". Solo se aceptan tablas de
// negocio conocidas; el namespace solo puede venir del resolver de tenants. Los valores nunca
// se interpolan: van como parámetros $n.
func Qualify(ns tenant.Namespace, stmt string) (string, error) {
	if ns.IsZero() {
		return "", errNoNamespace
	}
	var unknown string
	out := tablePlaceholder.ReplaceAllStringFunc(stmt, func(m string) string {
		table := m[1 : len(m)-1]
		if _, ok := allowedTables[table]; !ok {
			unknown = table
			return m
		}
		return pgx.Identifier{ns.String(), table}.Sanitize()
	})
	if unknown != "" {
		return "", fmt.Errorf("executor: tabla no permitida %q", unknown)
	}
	return out, nil
}

// Executor ejecuta sentencias parametrizadas calificadas por namespace (usable con pool o tx).
type Executor struct {
	q Querier
}

// NewExecutor construye el executor. Pasar pool o tx (Querier).
func NewExecutor(q Querier) *Executor {
	return &Executor{q: q}
}

// Query ejecuta una consulta que devuelve filas.
func (e *Executor) Query(ctx context.Context, ns tenant.Namespace, stmt string, args ...any) (pgx.Rows, error) {
	sql, err := Qualify(ns, stmt)
	if err != nil {
		return nil, err
	}
	return e.q.Query(ctx, sql, args...)
}

// QueryRow ejecuta una consulta de una fila. Los errores de calificación se devuelven en Scan.
func (e *Executor) QueryRow(ctx context.Context, ns tenant.Namespace, stmt string, args ...any) pgx.Row {
	sql, err := Qualify(ns, stmt)
	if err != nil {
		return errRow{err: err}
	}
	return e.q.QueryRow(ctx, sql, args...)
}

// Exec ejecuta una sentencia y devuelve la cantidad de filas afectadas.
func (e *Executor) Exec(ctx context.Context, ns tenant.Namespace, stmt string, args ...any) (int64, error) {
	sql, err := Qualify(ns, stmt)
	if err != nil {
		return 0, err
	}
	tag, err := e.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Count ejecuta un SELECT count(*) y devuelve el resultado.
func (e *Executor) Count(ctx context.Context, ns tenant.Namespace, stmt string, args ...any) (int64, error) {
	var n int64
	if err := e.QueryRow(ctx, ns, stmt, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete elimina la fila id de table según su política de borrado: las tablas con SoftDelete
// marcan active = false, el resto se borra físicamente. Devuelve domain.ErrNotFound si no
// afectó filas y domain.ErrConflict si otra fila la referencia.
func (e *Executor) Delete(ctx context.Context, ns tenant.Namespace, table string, id int64) error {
	var stmt string
	switch entity.DeletionPolicyFor(table) {
	case entity.SoftDelete:
		stmt = `UPDATE {` + table + `} SET active = false, updated_at = now() WHERE id = $1 AND active`
	default:
		stmt = `DELETE FROM {` + table + `} WHERE id = $1`
	}
	n, err := e.Exec(ctx, ns, stmt, id)
	if err != nil {
		return mapError(fmt.Sprintf("delete %s", table), err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
