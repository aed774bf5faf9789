package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)
var _ repository.MovimientoStockRepository = (*MovimientoStockRepo)(nil)

// ArticuloRepo implementación de ArticuloRepository (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const articuloColumns = `id, empresa_id, codigo, descripcion, COALESCE(unidad, ''), created_at, updated_at`

// Create persiste un artículo.
func (r *ArticuloRepo) Create(articulo *entity.Articulo) error {
	query := `
		INSERT INTO articulos (id, empresa_id, codigo, descripcion, unidad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		articulo.ID, articulo.EmpresaID, articulo.Codigo, articulo.Descripcion,
		nullIfEmpty(articulo.Unidad), articulo.CreatedAt, articulo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmpresaYCodigo obtiene un artículo por empresa y código.
func (r *ArticuloRepo) GetByEmpresaYCodigo(empresaID, codigo string) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE empresa_id = $1 AND codigo = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, empresaID, codigo))
}

// ListByEmpresa lista artículos de la empresa con paginación.
func (r *ArticuloRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE empresa_id = $1 ORDER BY codigo LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.EmpresaID, &a.Codigo, &a.Descripcion, &a.Unidad, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un artículo.
func (r *ArticuloRepo) Update(articulo *entity.Articulo) error {
	query := `
		UPDATE articulos SET descripcion = $2, unidad = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		articulo.ID, articulo.Descripcion, nullIfEmpty(articulo.Unidad), articulo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

func (r *ArticuloRepo) scanOne(row pgx.Row) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(&a.ID, &a.EmpresaID, &a.Codigo, &a.Descripcion, &a.Unidad, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}

// MovimientoStockRepo implementación de MovimientoStockRepository (usable con pool o tx).
type MovimientoStockRepo struct {
	q Querier
}

// NewMovimientoStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoStockRepository(q Querier) *MovimientoStockRepo {
	return &MovimientoStockRepo{q: q}
}

const movimientoStockColumns = `id, empresa_id, articulo_id, tipo, cantidad, COALESCE(referencia, ''), COALESCE(notas, ''), created_at, COALESCE(created_by, '')`

// Create persiste un movimiento de stock.
func (r *MovimientoStockRepo) Create(movimiento *entity.MovimientoStock) error {
	query := `
		INSERT INTO movimientos_stock (id, empresa_id, articulo_id, tipo, cantidad, referencia, notas, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.EmpresaID, movimiento.ArticuloID, movimiento.Tipo, movimiento.Cantidad,
		nullIfEmpty(movimiento.Referencia), nullIfEmpty(movimiento.Notas),
		movimiento.CreatedAt, nullIfEmpty(movimiento.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert movimiento de stock: %w", err)
	}
	return nil
}

// ListByArticulo lista los movimientos de un artículo. Con limit 0 devuelve
// todos (para calcular existencias).
func (r *MovimientoStockRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.MovimientoStock, error) {
	query := `SELECT ` + movimientoStockColumns + ` FROM movimientos_stock WHERE articulo_id = $1 ORDER BY created_at`
	args := []any{articuloID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de stock: %w", err)
	}
	return r.collect(rows)
}

// ListByEmpresa lista los movimientos de stock de la empresa.
func (r *MovimientoStockRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.MovimientoStock, error) {
	query := `SELECT ` + movimientoStockColumns + ` FROM movimientos_stock WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de stock: %w", err)
	}
	return r.collect(rows)
}

func (r *MovimientoStockRepo) collect(rows pgx.Rows) ([]*entity.MovimientoStock, error) {
	defer rows.Close()
	var list []*entity.MovimientoStock
	for rows.Next() {
		var m entity.MovimientoStock
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.ArticuloID, &m.Tipo, &m.Cantidad, &m.Referencia, &m.Notas, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movimiento de stock: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
