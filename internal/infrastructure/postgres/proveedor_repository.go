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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorColumns = `id, empresa_id, razon_social, cuit, condicion_ganancias, COALESCE(email, ''), COALESCE(telefono, ''), COALESCE(direccion, ''), created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, empresa_id, razon_social, cuit, condicion_ganancias, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.EmpresaID, proveedor.RazonSocial, proveedor.CUIT, proveedor.CondicionGanancias,
		nullIfEmpty(proveedor.Email), nullIfEmpty(proveedor.Telefono), nullIfEmpty(proveedor.Direccion),
		proveedor.CreatedAt, proveedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmpresaYCUIT obtiene un proveedor por empresa y CUIT.
func (r *ProveedorRepo) GetByEmpresaYCUIT(empresaID, cuit string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE empresa_id = $1 AND cuit = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, empresaID, cuit))
}

// ListByEmpresa lista proveedores de la empresa con paginación.
func (r *ProveedorRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorColumns + ` FROM proveedores WHERE empresa_id = $1 ORDER BY razon_social LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET razon_social = $2, condicion_ganancias = $3, email = $4, telefono = $5, direccion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.RazonSocial, proveedor.CondicionGanancias,
		nullIfEmpty(proveedor.Email), nullIfEmpty(proveedor.Telefono), nullIfEmpty(proveedor.Direccion),
		proveedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) scanOne(row pgx.Row) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := row.Scan(&p.ID, &p.EmpresaID, &p.RazonSocial, &p.CUIT, &p.CondicionGanancias, &p.Email, &p.Telefono, &p.Direccion, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

func (r *ProveedorRepo) scanRow(rows pgx.Rows) (*entity.Proveedor, error) {
	var p entity.Proveedor
	if err := rows.Scan(&p.ID, &p.EmpresaID, &p.RazonSocial, &p.CUIT, &p.CondicionGanancias, &p.Email, &p.Telefono, &p.Direccion, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan proveedor: %w", err)
	}
	return &p, nil
}
