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

var _ repository.PedidoRepository = (*PedidoRepo)(nil)
var _ repository.RemitoRepository = (*RemitoRepo)(nil)

// PedidoRepo implementación de PedidoRepository (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoColumns = `id, empresa_id, cliente_id, fecha, estado, total, COALESCE(detalle, ''), created_at, updated_at`

// Create persiste un pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, empresa_id, cliente_id, fecha, estado, total, detalle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.EmpresaID, pedido.ClienteID, pedido.Fecha, pedido.Estado,
		pedido.Total, nullIfEmpty(pedido.Detalle), pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.ClienteID, &p.Fecha, &p.Estado, &p.Total, &p.Detalle, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// ListByEmpresa lista pedidos de la empresa, los más recientes primero.
func (r *PedidoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE empresa_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.ClienteID, &p.Fecha, &p.Estado, &p.Total, &p.Detalle, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de un pedido.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	result, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2, updated_at = NOW() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de pedido: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemitoRepo implementación de RemitoRepository (usable con pool o tx).
type RemitoRepo struct {
	q Querier
}

// NewRemitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRemitoRepository(q Querier) *RemitoRepo {
	return &RemitoRepo{q: q}
}

const remitoColumns = `id, empresa_id, pedido_id, numero, fecha, COALESCE(detalle, ''), created_at`

// Create persiste un remito.
func (r *RemitoRepo) Create(remito *entity.Remito) error {
	query := `
		INSERT INTO remitos (id, empresa_id, pedido_id, numero, fecha, detalle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		remito.ID, remito.EmpresaID, remito.PedidoID, remito.Numero, remito.Fecha,
		nullIfEmpty(remito.Detalle), remito.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert remito: %w", err)
	}
	return nil
}

// GetByID obtiene un remito por ID.
func (r *RemitoRepo) GetByID(id string) (*entity.Remito, error) {
	query := `SELECT ` + remitoColumns + ` FROM remitos WHERE id = $1`
	var rem entity.Remito
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rem.ID, &rem.EmpresaID, &rem.PedidoID, &rem.Numero, &rem.Fecha, &rem.Detalle, &rem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	return &rem, nil
}

// ListByPedido lista los remitos de un pedido.
func (r *RemitoRepo) ListByPedido(pedidoID string) ([]*entity.Remito, error) {
	query := `SELECT ` + remitoColumns + ` FROM remitos WHERE pedido_id = $1 ORDER BY fecha, numero`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Remito
	for rows.Next() {
		var rem entity.Remito
		if err := rows.Scan(&rem.ID, &rem.EmpresaID, &rem.PedidoID, &rem.Numero, &rem.Fecha, &rem.Detalle, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		list = append(list, &rem)
	}
	return list, rows.Err()
}
