package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.FacturaCompraRepository = (*FacturaCompraRepo)(nil)

// FacturaCompraRepo implementación de FacturaCompraRepository (usable con
// pool o tx). La cabecera va en facturas_compra y los impuestos discriminados
// en factura_impuestos.
type FacturaCompraRepo struct {
	q Querier
}

// NewFacturaCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaCompraRepository(q Querier) *FacturaCompraRepo {
	return &FacturaCompraRepo{q: q}
}

// Create persiste la cabecera y sus impuestos.
func (r *FacturaCompraRepo) Create(factura *entity.FacturaCompra) error {
	query := `
		INSERT INTO facturas_compra (id, empresa_id, proveedor_id, referencia, fecha, total, detalle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.EmpresaID, factura.ProveedorID, factura.Referencia,
		factura.Fecha, factura.Total, nullIfEmpty(factura.Detalle),
		factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	for _, imp := range factura.Impuestos {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO factura_impuestos (id, factura_id, nombre, monto) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), factura.ID, imp.Nombre, imp.Monto,
		)
		if err != nil {
			return fmt.Errorf("insert impuesto de factura: %w", err)
		}
	}
	return nil
}

const facturaColumns = `id, empresa_id, proveedor_id, referencia, fecha, total, COALESCE(detalle, ''), created_at, updated_at`

// GetByID obtiene una factura con sus impuestos.
func (r *FacturaCompraRepo) GetByID(id string) (*entity.FacturaCompra, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas_compra WHERE id = $1`
	var f entity.FacturaCompra
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.EmpresaID, &f.ProveedorID, &f.Referencia, &f.Fecha, &f.Total, &f.Detalle, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	if err := r.cargarImpuestos([]*entity.FacturaCompra{&f}); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByEmpresa lista facturas de la empresa con paginación.
func (r *FacturaCompraRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FacturaCompra, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas_compra WHERE empresa_id = $1 ORDER BY fecha DESC, referencia LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	return r.collect(rows)
}

// ListByEmpresaYRango lista las facturas del período [desde, hasta] inclusive,
// ordenadas por fecha. Alimenta el Libro IVA Digital.
func (r *FacturaCompraRepo) ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.FacturaCompra, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas_compra
		WHERE empresa_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha, referencia`
	rows, err := r.q.Query(context.Background(), query, empresaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list facturas por rango: %w", err)
	}
	return r.collect(rows)
}

// Delete elimina una factura y sus impuestos.
func (r *FacturaCompraRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM factura_impuestos WHERE factura_id = $1`, id); err != nil {
		return fmt.Errorf("delete impuestos de factura: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM facturas_compra WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

func (r *FacturaCompraRepo) collect(rows pgx.Rows) ([]*entity.FacturaCompra, error) {
	defer rows.Close()
	var list []*entity.FacturaCompra
	for rows.Next() {
		var f entity.FacturaCompra
		if err := rows.Scan(&f.ID, &f.EmpresaID, &f.ProveedorID, &f.Referencia, &f.Fecha, &f.Total, &f.Detalle, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.cargarImpuestos(list); err != nil {
		return nil, err
	}
	return list, nil
}

// cargarImpuestos carga los impuestos de todas las facturas en una sola query.
func (r *FacturaCompraRepo) cargarImpuestos(facturas []*entity.FacturaCompra) error {
	if len(facturas) == 0 {
		return nil
	}
	byID := make(map[string]*entity.FacturaCompra, len(facturas))
	ids := make([]string, 0, len(facturas))
	for _, f := range facturas {
		byID[f.ID] = f
		ids = append(ids, f.ID)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT factura_id, nombre, monto FROM factura_impuestos WHERE factura_id = ANY($1) ORDER BY nombre`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("list impuestos de facturas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var facturaID string
		var imp entity.ImpuestoLinea
		if err := rows.Scan(&facturaID, &imp.Nombre, &imp.Monto); err != nil {
			return fmt.Errorf("scan impuesto de factura: %w", err)
		}
		if f, ok := byID[facturaID]; ok {
			f.Impuestos = append(f.Impuestos, imp)
		}
	}
	return rows.Err()
}
