package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.MovimientoCajaRepository = (*MovimientoCajaRepo)(nil)

// MovimientoCajaRepo implementación de MovimientoCajaRepository (usable con pool o tx).
type MovimientoCajaRepo struct {
	q Querier
}

// NewMovimientoCajaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoCajaRepository(q Querier) *MovimientoCajaRepo {
	return &MovimientoCajaRepo{q: q}
}

const movimientoColumns = `id, empresa_id, fecha, fecha_efectiva, tipo, monto, COALESCE(medio_pago, ''), COALESCE(detalle, ''), created_at, updated_at`

// Create persiste un movimiento de caja.
func (r *MovimientoCajaRepo) Create(movimiento *entity.MovimientoCaja) error {
	query := `
		INSERT INTO movimientos_caja (id, empresa_id, fecha, fecha_efectiva, tipo, monto, medio_pago, detalle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.EmpresaID, movimiento.Fecha, movimiento.FechaEfectiva,
		movimiento.Tipo, movimiento.Monto, nullIfEmpty(movimiento.MedioPago), nullIfEmpty(movimiento.Detalle),
		movimiento.CreatedAt, movimiento.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento de caja: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoCajaRepo) GetByID(id string) (*entity.MovimientoCaja, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_caja WHERE id = $1`
	var m entity.MovimientoCaja
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.EmpresaID, &m.Fecha, &m.FechaEfectiva, &m.Tipo, &m.Monto, &m.MedioPago, &m.Detalle, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento de caja: %w", err)
	}
	return &m, nil
}

// ListByEmpresa lista todos los movimientos de la empresa ordenados por fecha.
func (r *MovimientoCajaRepo) ListByEmpresa(empresaID string) ([]*entity.MovimientoCaja, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_caja WHERE empresa_id = $1 ORDER BY fecha, created_at`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de caja: %w", err)
	}
	return r.collect(rows)
}

// ListByEmpresaYRango lista los movimientos del período [desde, hasta] inclusive.
func (r *MovimientoCajaRepo) ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.MovimientoCaja, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientos_caja
		WHERE empresa_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha, created_at`
	rows, err := r.q.Query(context.Background(), query, empresaID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de caja por rango: %w", err)
	}
	return r.collect(rows)
}

// Update actualiza un movimiento de caja.
func (r *MovimientoCajaRepo) Update(movimiento *entity.MovimientoCaja) error {
	query := `
		UPDATE movimientos_caja
		SET fecha = $2, fecha_efectiva = $3, tipo = $4, monto = $5, medio_pago = $6, detalle = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movimiento.ID, movimiento.Fecha, movimiento.FechaEfectiva, movimiento.Tipo, movimiento.Monto,
		nullIfEmpty(movimiento.MedioPago), nullIfEmpty(movimiento.Detalle), movimiento.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movimiento de caja: %w", err)
	}
	return nil
}

// Delete elimina un movimiento de caja.
func (r *MovimientoCajaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movimientos_caja WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento de caja: %w", err)
	}
	return nil
}

func (r *MovimientoCajaRepo) collect(rows pgx.Rows) ([]*entity.MovimientoCaja, error) {
	defer rows.Close()
	var list []*entity.MovimientoCaja
	for rows.Next() {
		var m entity.MovimientoCaja
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.Fecha, &m.FechaEfectiva, &m.Tipo, &m.Monto, &m.MedioPago, &m.Detalle, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento de caja: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
