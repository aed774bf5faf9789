package retenciones_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
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

func (f *fakeProveedorRepo) Create(p *entity.Proveedor) error { f.proveedores[p.ID] = p; return nil }
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

type fakeCertRepo struct {
	certs      []*entity.CertificadoRetencion
	secuencias map[string]int64 // "empresa|anio" -> último número
}

func (f *fakeCertRepo) Create(c *entity.CertificadoRetencion) error {
	f.certs = append(f.certs, c)
	return nil
}

func (f *fakeCertRepo) GetByID(id string) (*entity.CertificadoRetencion, error) {
	for _, c := range f.certs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCertRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.CertificadoRetencion, error) {
	var out []*entity.CertificadoRetencion
	for _, c := range f.certs {
		if c.EmpresaID == empresaID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCertRepo) ProximoNumeroSecuencial(empresaID string, anio int) (int64, error) {
	key := fmt.Sprintf("%s|%d", empresaID, anio)
	f.secuencias[key]++
	return f.secuencias[key], nil
}

// fakeTxRunner ejecuta el closure directamente contra el repo fake, sin
// transacción real.
type fakeTxRunner struct {
	certRepo *fakeCertRepo
}

func (f *fakeTxRunner) RunCertificado(ctx context.Context, fn func(repository.CertificadoRepository) error) error {
	return fn(f.certRepo)
}

const (
	empresaA    = "empresa-a"
	empresaB    = "empresa-b"
	proveedorID = "prov-1"
)

func buildUseCase() (*retenciones.UseCase, *fakeCertRepo) {
	proveedorRepo := &fakeProveedorRepo{proveedores: map[string]*entity.Proveedor{
		proveedorID: {
			ID:                 proveedorID,
			EmpresaID:          empresaA,
			RazonSocial:        "Distribuidora Austral SRL",
			CUIT:               "30-71222333-3",
			CondicionGanancias: afip.CondicionInscripto,
		},
	}}
	certRepo := &fakeCertRepo{secuencias: map[string]int64{}}
	uc := retenciones.NewUseCase(&fakeTxRunner{certRepo: certRepo}, certRepo, proveedorRepo)
	return uc, certRepo
}

func validPreview() dto.PreviewRetencionRequest {
	return dto.PreviewRetencionRequest{
		ProveedorID:       proveedorID,
		NumeroComprobante: "A000100001234",
		FechaComprobante:  "2026-03-10",
		CodigoRegimen:     "19",
		ImporteTotal:      decimal.RequireFromString("10000"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_CalculaSinPersistir(t *testing.T) {
	uc, certRepo := buildUseCase()

	resp, err := uc.Preview(empresaA, validPreview())
	require.NoError(t, err)

	// Inscripto, régimen 19 (3%), sin monto no sujeto: sobre neto 8264.46
	assert.True(t, resp.ImporteNeto.Equal(decimal.RequireFromString("8264.46")), "neto: %s", resp.ImporteNeto)
	assert.True(t, resp.ImporteRetenido.Equal(decimal.RequireFromString("247.93")), "retención: %s", resp.ImporteRetenido)
	assert.True(t, resp.TotalAPagar.Equal(decimal.RequireFromString("9752.07")), "total a pagar: %s", resp.TotalAPagar)

	assert.Contains(t, resp.Numero, "PREVIEW", "el número de preview debe llevar el marcador")
	assert.Empty(t, certRepo.certs, "preview no debe persistir certificados")
}

func TestPreview_FechaComprobanteOpcional(t *testing.T) {
	uc, _ := buildUseCase()

	in := validPreview()
	in.FechaComprobante = ""
	resp, err := uc.Preview(empresaA, in)
	require.NoError(t, err)
	assert.Empty(t, resp.FechaComprobante)
}

func TestPreview_ProveedorDeOtraEmpresa_Forbidden(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Preview(empresaB, validPreview())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPreview_ProveedorInexistente_NotFound(t *testing.T) {
	uc, _ := buildUseCase()

	in := validPreview()
	in.ProveedorID = "no-existe"
	_, err := uc.Preview(empresaA, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreview_EntradaInvalida(t *testing.T) {
	uc, _ := buildUseCase()

	casos := []struct {
		nombre  string
		mutador func(*dto.PreviewRetencionRequest)
	}{
		{"comprobante malformado", func(in *dto.PreviewRetencionRequest) { in.NumeroComprobante = "0001-1234" }},
		{"importe cero", func(in *dto.PreviewRetencionRequest) { in.ImporteTotal = decimal.Zero }},
		{"régimen desconocido", func(in *dto.PreviewRetencionRequest) { in.CodigoRegimen = "999" }},
		{"fecha malformada", func(in *dto.PreviewRetencionRequest) { in.FechaComprobante = "10/03/2026" }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := validPreview()
			c.mutador(&in)
			_, err := uc.Preview(empresaA, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Emitir
// ──────────────────────────────────────────────────────────────────────────────

func TestEmitir_NumeraYPersiste(t *testing.T) {
	uc, certRepo := buildUseCase()
	anio := time.Now().Year()

	in := dto.EmitirRetencionRequest{
		ProveedorID:       proveedorID,
		NumeroComprobante: "A000100001234",
		FechaComprobante:  "2026-03-10",
		CodigoRegimen:     "19",
		ImporteTotal:      decimal.RequireFromString("10000"),
	}
	resp, err := uc.Emitir(context.Background(), empresaA, in)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("CR-%d-%08d", anio, 1), resp.Numero)
	require.Len(t, certRepo.certs, 1)
	assert.Equal(t, resp.Numero, certRepo.certs[0].Numero)

	// Segunda emisión: el secuencial avanza
	resp2, err := uc.Emitir(context.Background(), empresaA, in)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("CR-%d-%08d", anio, 2), resp2.Numero)
}

func TestEmitir_FechaComprobanteRequerida(t *testing.T) {
	uc, certRepo := buildUseCase()

	in := dto.EmitirRetencionRequest{
		ProveedorID:       proveedorID,
		NumeroComprobante: "A000100001234",
		CodigoRegimen:     "19",
		ImporteTotal:      decimal.RequireFromString("10000"),
	}
	_, err := uc.Emitir(context.Background(), empresaA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, certRepo.certs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_AislamientoPorEmpresa(t *testing.T) {
	uc, _ := buildUseCase()

	in := dto.EmitirRetencionRequest{
		ProveedorID:       proveedorID,
		NumeroComprobante: "A000100001234",
		FechaComprobante:  "2026-03-10",
		CodigoRegimen:     "19",
		ImporteTotal:      decimal.RequireFromString("10000"),
	}
	emitido, err := uc.Emitir(context.Background(), empresaA, in)
	require.NoError(t, err)

	_, err = uc.GetByID(empresaB, emitido.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	resp, err := uc.GetByID(empresaA, emitido.ID)
	require.NoError(t, err)
	assert.Equal(t, emitido.Numero, resp.Numero)
}

func TestRegimenes_DevuelveCatalogo(t *testing.T) {
	uc, _ := buildUseCase()

	regimenes := uc.Regimenes()
	require.NotEmpty(t, regimenes)

	codigos := make(map[string]bool, len(regimenes))
	for _, r := range regimenes {
		codigos[r.Codigo] = true
	}
	assert.True(t, codigos["19"], "el catálogo debe incluir el régimen 19")
	assert.True(t, codigos["31"], "el catálogo debe incluir el régimen 31")
}
