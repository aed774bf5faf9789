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

var _ repository.CertificadoRepository = (*CertificadoRepo)(nil)

// CertificadoRepo implementación de CertificadoRepository (usable con pool o
// tx). Los certificados emitidos son inmutables: solo insert y lectura.
type CertificadoRepo struct {
	q Querier
}

// NewCertificadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCertificadoRepository(q Querier) *CertificadoRepo {
	return &CertificadoRepo{q: q}
}

const certificadoColumns = `id, empresa_id, numero, fecha_emision, proveedor_id, proveedor_nombre, proveedor_cuit,
	numero_comprobante, fecha_comprobante, importe_total, importe_neto, iva,
	codigo_regimen, detalle_regimen, condicion_ganancias, importe_retenido, total_a_pagar, created_at`

// Create persiste un certificado emitido.
func (r *CertificadoRepo) Create(certificado *entity.CertificadoRetencion) error {
	query := `
		INSERT INTO certificados_retencion (id, empresa_id, numero, fecha_emision, proveedor_id, proveedor_nombre, proveedor_cuit,
			numero_comprobante, fecha_comprobante, importe_total, importe_neto, iva,
			codigo_regimen, detalle_regimen, condicion_ganancias, importe_retenido, total_a_pagar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		certificado.ID, certificado.EmpresaID, certificado.Numero, certificado.FechaEmision,
		certificado.ProveedorID, certificado.ProveedorNombre, certificado.ProveedorCUIT,
		certificado.NumeroComprobante, certificado.FechaComprobante,
		certificado.ImporteTotal, certificado.ImporteNeto, certificado.IVA,
		certificado.CodigoRegimen, certificado.DetalleRegimen, certificado.CondicionGanancias,
		certificado.ImporteRetenido, certificado.TotalAPagar, certificado.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert certificado: %w", err)
	}
	return nil
}

// GetByID obtiene un certificado por ID.
func (r *CertificadoRepo) GetByID(id string) (*entity.CertificadoRetencion, error) {
	query := `SELECT ` + certificadoColumns + ` FROM certificados_retencion WHERE id = $1`
	var c entity.CertificadoRetencion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.Numero, &c.FechaEmision, &c.ProveedorID, &c.ProveedorNombre, &c.ProveedorCUIT,
		&c.NumeroComprobante, &c.FechaComprobante, &c.ImporteTotal, &c.ImporteNeto, &c.IVA,
		&c.CodigoRegimen, &c.DetalleRegimen, &c.CondicionGanancias, &c.ImporteRetenido, &c.TotalAPagar, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificado: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista certificados de la empresa, los más recientes primero.
func (r *CertificadoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.CertificadoRetencion, error) {
	query := `SELECT ` + certificadoColumns + ` FROM certificados_retencion
		WHERE empresa_id = $1 ORDER BY fecha_emision DESC, numero DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list certificados: %w", err)
	}
	defer rows.Close()
	var list []*entity.CertificadoRetencion
	for rows.Next() {
		var c entity.CertificadoRetencion
		if err := rows.Scan(
			&c.ID, &c.EmpresaID, &c.Numero, &c.FechaEmision, &c.ProveedorID, &c.ProveedorNombre, &c.ProveedorCUIT,
			&c.NumeroComprobante, &c.FechaComprobante, &c.ImporteTotal, &c.ImporteNeto, &c.IVA,
			&c.CodigoRegimen, &c.DetalleRegimen, &c.CondicionGanancias, &c.ImporteRetenido, &c.TotalAPagar, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan certificado: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ProximoNumeroSecuencial devuelve el siguiente número secuencial para la
// empresa y año. Usa el contador certificado_secuencias con upsert atómico;
// debe llamarse dentro de la transacción que persiste el certificado para no
// quemar números si el insert falla.
func (r *CertificadoRepo) ProximoNumeroSecuencial(empresaID string, anio int) (int64, error) {
	query := `
		INSERT INTO certificado_secuencias (empresa_id, anio, ultimo_numero)
		VALUES ($1, $2, 1)
		ON CONFLICT (empresa_id, anio)
		DO UPDATE SET ultimo_numero = certificado_secuencias.ultimo_numero + 1
		RETURNING ultimo_numero`
	var n int64
	if err := r.q.QueryRow(context.Background(), query, empresaID, anio).Scan(&n); err != nil {
		return 0, fmt.Errorf("proximo numero de certificado: %w", err)
	}
	return n, nil
}
