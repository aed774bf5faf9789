package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gestion-pyme/internal/application/pagos"
	"github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// Ensure TxRunner implements pagos.PagoTxRunner and retenciones.CertificadoTxRunner.
var _ pagos.PagoTxRunner = (*TxRunner)(nil)
var _ retenciones.CertificadoTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPago inicia una transacción con los repos de pagos, caja y certificados
// (para RegistrarPago) y hace Commit o Rollback.
func (r *TxRunner) RunPago(ctx context.Context, fn func(
	pagoRepo repository.PagoRepository,
	cajaRepo repository.MovimientoCajaRepository,
	certRepo repository.CertificadoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pagoRepo := NewPagoRepository(tx)
	cajaRepo := NewMovimientoCajaRepository(tx)
	certRepo := NewCertificadoRepository(tx)

	if err := fn(pagoRepo, cajaRepo, certRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCertificado inicia una transacción con el repo de certificados, para que
// la toma del número secuencial y el insert sean atómicos.
func (r *TxRunner) RunCertificado(ctx context.Context, fn func(certRepo repository.CertificadoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCertificadoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
