package pagos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/pagos"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProveedorRepo struct {
	proveedores map[string]*entity.Proveedor
}

func (f *fakeProveedorRepo) Create(p *entity.Proveedor) error { return nil }
func (f *fakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return f.proveedores[id], nil
}
func (f *fakeProveedorRepo) GetByEmpresaYCUIT(empresaID, cuit string) (*entity.Proveedor, error) {
	return nil, nil
}
func (f *fakeProveedorRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Proveedor, error) {
	return nil, nil
}
func (f *fakeProveedorRepo) Update(p *entity.Proveedor) error { return nil }
func (f *fakeProveedorRepo) Delete(id string) error           { return nil }

type fakeFacturaRepo struct {
	facturas map[string]*entity.FacturaCompra
}

func (f *fakeFacturaRepo) Create(fc *entity.FacturaCompra) error { return nil }
func (f *fakeFacturaRepo) GetByID(id string) (*entity.FacturaCompra, error) {
	return f.facturas[id], nil
}
func (f *fakeFacturaRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.FacturaCompra, error) {
	return nil, nil
}
func (f *fakeFacturaRepo) ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.FacturaCompra, error) {
	return nil, nil
}
func (f *fakeFacturaRepo) Delete(id string) error { return nil }

type fakePagoRepo struct {
	pagos []*entity.Pago
}

func (f *fakePagoRepo) Create(p *entity.Pago) error { f.pagos = append(f.pagos, p); return nil }
func (f *fakePagoRepo) GetByID(id string) (*entity.Pago, error) {
	for _, p := range f.pagos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePagoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Pago, error) {
	return f.pagos, nil
}

type fakeCajaRepo struct {
	movimientos []*entity.MovimientoCaja
}

func (f *fakeCajaRepo) Create(m *entity.MovimientoCaja) error {
	f.movimientos = append(f.movimientos, m)
	return nil
}
func (f *fakeCajaRepo) GetByID(id string) (*entity.MovimientoCaja, error) { return nil, nil }
func (f *fakeCajaRepo) ListByEmpresa(empresaID string) ([]*entity.MovimientoCaja, error) {
	return f.movimientos, nil
}
func (f *fakeCajaRepo) ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.MovimientoCaja, error) {
	return nil, nil
}
func (f *fakeCajaRepo) Update(m *entity.MovimientoCaja) error { return nil }
func (f *fakeCajaRepo) Delete(id string) error                { return nil }

type fakeCertRepo struct {
	certs  []*entity.CertificadoRetencion
	ultimo int64
}

func (f *fakeCertRepo) Create(c *entity.CertificadoRetencion) error {
	f.certs = append(f.certs, c)
	return nil
}
func (f *fakeCertRepo) GetByID(id string) (*entity.CertificadoRetencion, error) { return nil, nil }
func (f *fakeCertRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.CertificadoRetencion, error) {
	return nil, nil
}
func (f *fakeCertRepo) ProximoNumeroSecuencial(empresaID string, anio int) (int64, error) {
	f.ultimo++
	return f.ultimo, nil
}

type fakePagoTxRunner struct {
	pagoRepo *fakePagoRepo
	cajaRepo *fakeCajaRepo
	certRepo *fakeCertRepo
}

func (f *fakePagoTxRunner) RunPago(ctx context.Context, fn func(repository.PagoRepository, repository.MovimientoCajaRepository, repository.CertificadoRepository) error) error {
	return fn(f.pagoRepo, f.cajaRepo, f.certRepo)
}

const (
	empresaA    = "empresa-a"
	proveedorID = "prov-1"
	facturaID   = "fact-1"
)

type fixture struct {
	uc       *pagos.UseCase
	pagoRepo *fakePagoRepo
	cajaRepo *fakeCajaRepo
	certRepo *fakeCertRepo
}

func buildFixture() fixture {
	proveedorRepo := &fakeProveedorRepo{proveedores: map[string]*entity.Proveedor{
		proveedorID: {
			ID:                 proveedorID,
			EmpresaID:          empresaA,
			RazonSocial:        "Distribuidora Austral SRL",
			CUIT:               "30-71222333-3",
			CondicionGanancias: afip.CondicionInscripto,
		},
	}}
	facturaRepo := &fakeFacturaRepo{facturas: map[string]*entity.FacturaCompra{
		facturaID: {
			ID:          facturaID,
			EmpresaID:   empresaA,
			ProveedorID: proveedorID,
			Referencia:  "A000100001234",
			Fecha:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}}
	pagoRepo := &fakePagoRepo{}
	cajaRepo := &fakeCajaRepo{}
	certRepo := &fakeCertRepo{}
	runner := &fakePagoTxRunner{pagoRepo: pagoRepo, cajaRepo: cajaRepo, certRepo: certRepo}
	uc := pagos.NewUseCase(runner, pagoRepo, proveedorRepo, facturaRepo)
	return fixture{uc: uc, pagoRepo: pagoRepo, cajaRepo: cajaRepo, certRepo: certRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarPago
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarPago_GeneraEgresoDeCaja(t *testing.T) {
	f := buildFixture()

	resp, err := f.uc.RegistrarPago(context.Background(), empresaA, dto.CreatePagoRequest{
		ProveedorID: proveedorID,
		Fecha:       "2026-03-10",
		Monto:       decimal.RequireFromString("5000"),
		MedioPago:   entity.MedioPagoTransferencia,
	})
	require.NoError(t, err)
	require.Len(t, f.pagoRepo.pagos, 1)
	require.Len(t, f.cajaRepo.movimientos, 1)
	assert.Empty(t, f.certRepo.certs, "sin emitir_retencion no debe crearse certificado")

	mov := f.cajaRepo.movimientos[0]
	assert.Equal(t, entity.MovimientoEgreso, mov.Tipo)
	assert.True(t, mov.Monto.Equal(decimal.RequireFromString("5000")), "egreso: %s", mov.Monto)
	assert.Contains(t, mov.Detalle, "Distribuidora Austral")
	assert.Empty(t, resp.CertificadoID)
}

func TestRegistrarPago_ConRetencion_EgresaElNeto(t *testing.T) {
	f := buildFixture()

	// Monto 12100, régimen 19 (3% inscripto): neto 10000, retención 300.
	resp, err := f.uc.RegistrarPago(context.Background(), empresaA, dto.CreatePagoRequest{
		ProveedorID:     proveedorID,
		FacturaID:       facturaID,
		Fecha:           "2026-03-10",
		Monto:           decimal.RequireFromString("12100"),
		MedioPago:       entity.MedioPagoTransferencia,
		EmitirRetencion: true,
		CodigoRegimen:   "19",
	})
	require.NoError(t, err)
	require.Len(t, f.certRepo.certs, 1)

	cert := f.certRepo.certs[0]
	assert.Equal(t, "CR-2026-00000001", cert.Numero)
	assert.True(t, cert.ImporteRetenido.Equal(decimal.RequireFromString("300")), "retención: %s", cert.ImporteRetenido)
	assert.True(t, cert.TotalAPagar.Equal(decimal.RequireFromString("11800")), "total a pagar: %s", cert.TotalAPagar)
	assert.Equal(t, "A000100001234", cert.NumeroComprobante)
	assert.Equal(t, cert.ID, resp.CertificadoID, "el pago debe quedar vinculado al certificado")

	// El efectivo que sale de caja es el neto a pagar, no el monto bruto.
	require.Len(t, f.cajaRepo.movimientos, 1)
	assert.True(t, f.cajaRepo.movimientos[0].Monto.Equal(decimal.RequireFromString("11800")), "egreso: %s", f.cajaRepo.movimientos[0].Monto)
}

func TestRegistrarPago_RetencionSinFactura_Invalido(t *testing.T) {
	f := buildFixture()

	_, err := f.uc.RegistrarPago(context.Background(), empresaA, dto.CreatePagoRequest{
		ProveedorID:     proveedorID,
		Fecha:           "2026-03-10",
		Monto:           decimal.RequireFromString("12100"),
		MedioPago:       entity.MedioPagoTransferencia,
		EmitirRetencion: true,
		CodigoRegimen:   "19",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.pagoRepo.pagos)
	assert.Empty(t, f.cajaRepo.movimientos)
}

func TestRegistrarPago_MedioPagoDesconocido_Invalido(t *testing.T) {
	f := buildFixture()

	_, err := f.uc.RegistrarPago(context.Background(), empresaA, dto.CreatePagoRequest{
		ProveedorID: proveedorID,
		Fecha:       "2026-03-10",
		Monto:       decimal.RequireFromString("5000"),
		MedioPago:   "CRIPTO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarPago_ProveedorDeOtraEmpresa_Forbidden(t *testing.T) {
	f := buildFixture()

	_, err := f.uc.RegistrarPago(context.Background(), "empresa-b", dto.CreatePagoRequest{
		ProveedorID: proveedorID,
		Fecha:       "2026-03-10",
		Monto:       decimal.RequireFromString("5000"),
		MedioPago:   entity.MedioPagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrarPago_FacturaInexistente_NotFound(t *testing.T) {
	f := buildFixture()

	_, err := f.uc.RegistrarPago(context.Background(), empresaA, dto.CreatePagoRequest{
		ProveedorID: proveedorID,
		FacturaID:   "fact-inexistente",
		Fecha:       "2026-03-10",
		Monto:       decimal.RequireFromString("5000"),
		MedioPago:   entity.MedioPagoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.pagoRepo.pagos)
}
