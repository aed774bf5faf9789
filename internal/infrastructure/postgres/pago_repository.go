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

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository (usable con pool o tx).
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

const pagoColumns = `id, empresa_id, proveedor_id, COALESCE(factura_id, ''), fecha, monto, medio_pago, COALESCE(certificado_id, ''), COALESCE(detalle, ''), created_at`

// Create persiste un pago.
func (r *PagoRepo) Create(pago *entity.Pago) error {
	query := `
		INSERT INTO pagos (id, empresa_id, proveedor_id, factura_id, fecha, monto, medio_pago, certificado_id, detalle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.EmpresaID, pago.ProveedorID, nullIfEmpty(pago.FacturaID),
		pago.Fecha, pago.Monto, pago.MedioPago, nullIfEmpty(pago.CertificadoID),
		nullIfEmpty(pago.Detalle), pago.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PagoRepo) GetByID(id string) (*entity.Pago, error) {
	query := `SELECT ` + pagoColumns + ` FROM pagos WHERE id = $1`
	var p entity.Pago
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.ProveedorID, &p.FacturaID, &p.Fecha, &p.Monto, &p.MedioPago, &p.CertificadoID, &p.Detalle, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return &p, nil
}

// ListByEmpresa lista pagos de la empresa con paginación.
func (r *PagoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Pago, error) {
	query := `SELECT ` + pagoColumns + ` FROM pagos WHERE empresa_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.ProveedorID, &p.FacturaID, &p.Fecha, &p.Monto, &p.MedioPago, &p.CertificadoID, &p.Detalle, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
