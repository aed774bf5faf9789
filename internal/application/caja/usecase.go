package caja

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/balance"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// UseCase casos de uso del libro de caja: CRUD de movimientos, listado con
// saldo acumulado, proyección mensual y filtro de futuros.
type UseCase struct {
	repo repository.MovimientoCajaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MovimientoCajaRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create registra un movimiento de caja.
func (uc *UseCase) Create(empresaID string, in dto.CreateMovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	if in.Tipo != entity.MovimientoIngreso && in.Tipo != entity.MovimientoEgreso {
		return nil, domain.ErrInvalidInput
	}
	if in.Monto.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var fechaEfectiva *time.Time
	if in.FechaEfectiva != "" {
		fe, err := time.Parse("2006-01-02", in.FechaEfectiva)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fechaEfectiva = &fe
	}
	impuestos := make([]entity.ImpuestoLinea, 0, len(in.Impuestos))
	for _, imp := range in.Impuestos {
		impuestos = append(impuestos, entity.ImpuestoLinea{Nombre: imp.Nombre, Monto: imp.Monto})
	}
	now := time.Now()
	movimiento := &entity.MovimientoCaja{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		Fecha:         fecha,
		FechaEfectiva: fechaEfectiva,
		Tipo:          in.Tipo,
		Monto:         in.Monto,
		MedioPago:     in.MedioPago,
		Detalle:       in.Detalle,
		Impuestos:     impuestos,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(movimiento); err != nil {
		return nil, err
	}
	return toMovimientoResponse(movimiento, balance.MontoConSigno(*movimiento)), nil
}

// Update actualiza un movimiento de caja.
func (uc *UseCase) Update(empresaID, id string, in dto.UpdateMovimientoCajaRequest) (*dto.MovimientoCajaResponse, error) {
	movimiento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movimiento == nil {
		return nil, domain.ErrNotFound
	}
	if movimiento.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.Fecha != "" {
		fecha, err := time.Parse("2006-01-02", in.Fecha)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		movimiento.Fecha = fecha
	}
	if in.FechaEfectiva != "" {
		fe, err := time.Parse("2006-01-02", in.FechaEfectiva)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		movimiento.FechaEfectiva = &fe
	}
	if in.Tipo != "" {
		if in.Tipo != entity.MovimientoIngreso && in.Tipo != entity.MovimientoEgreso {
			return nil, domain.ErrInvalidInput
		}
		movimiento.Tipo = in.Tipo
	}
	if !in.Monto.IsZero() {
		if in.Monto.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		movimiento.Monto = in.Monto
	}
	if in.MedioPago != "" {
		movimiento.MedioPago = in.MedioPago
	}
	if in.Detalle != "" {
		movimiento.Detalle = in.Detalle
	}
	movimiento.UpdatedAt = time.Now()
	if err := uc.repo.Update(movimiento); err != nil {
		return nil, err
	}
	return toMovimientoResponse(movimiento, decimal.Zero), nil
}

// Delete elimina un movimiento de caja.
func (uc *UseCase) Delete(empresaID, id string) error {
	movimiento, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if movimiento == nil {
		return domain.ErrNotFound
	}
	if movimiento.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ListConSaldo lista todos los movimientos de la empresa con el saldo
// acumulado fila a fila, ordenados por fecha.
func (uc *UseCase) ListConSaldo(empresaID string) ([]*dto.MovimientoCajaResponse, error) {
	movimientos, err := uc.movimientosDeEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	conSaldo := balance.SaldosAcumulados(movimientos)
	out := make([]*dto.MovimientoCajaResponse, 0, len(conSaldo))
	for _, m := range conSaldo {
		out = append(out, toMovimientoResponse(&m.MovimientoCaja, m.Saldo))
	}
	return out, nil
}

// Proyeccion devuelve la proyección mensual de caja con el horizonte dado
// (0 usa el horizonte por defecto).
func (uc *UseCase) Proyeccion(empresaID string, horizonteMeses int) ([]*dto.ProyeccionMesResponse, error) {
	if horizonteMeses <= 0 {
		horizonteMeses = balance.HorizonteDefecto
	}
	movimientos, err := uc.movimientosDeEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	meses := balance.ProyeccionMensual(movimientos, horizonteMeses)
	out := make([]*dto.ProyeccionMesResponse, 0, len(meses))
	for _, m := range meses {
		out = append(out, &dto.ProyeccionMesResponse{
			Mes:         m.Mes,
			Etiqueta:    m.Etiqueta,
			Ingresos:    m.Ingresos,
			Egresos:     m.Egresos,
			Variacion:   m.Variacion,
			SaldoCierre: m.SaldoCierre,
		})
	}
	return out, nil
}

// Futuros lista solo los movimientos cuya fecha de impacto es hoy o
// posterior, con saldo acumulado.
func (uc *UseCase) Futuros(empresaID string) ([]*dto.MovimientoCajaResponse, error) {
	movimientos, err := uc.movimientosDeEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	futuros := balance.SoloFuturos(movimientos, time.Now())
	conSaldo := balance.SaldosAcumulados(futuros)
	out := make([]*dto.MovimientoCajaResponse, 0, len(conSaldo))
	for _, m := range conSaldo {
		out = append(out, toMovimientoResponse(&m.MovimientoCaja, m.Saldo))
	}
	return out, nil
}

func (uc *UseCase) movimientosDeEmpresa(empresaID string) ([]entity.MovimientoCaja, error) {
	punteros, err := uc.repo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	movimientos := make([]entity.MovimientoCaja, 0, len(punteros))
	for _, m := range punteros {
		movimientos = append(movimientos, *m)
	}
	return movimientos, nil
}

func toMovimientoResponse(m *entity.MovimientoCaja, saldo decimal.Decimal) *dto.MovimientoCajaResponse {
	fechaEfectiva := ""
	if m.FechaEfectiva != nil {
		fechaEfectiva = m.FechaEfectiva.Format("2006-01-02")
	}
	return &dto.MovimientoCajaResponse{
		ID:            m.ID,
		EmpresaID:     m.EmpresaID,
		Fecha:         m.Fecha.Format("2006-01-02"),
		FechaEfectiva: fechaEfectiva,
		Tipo:          m.Tipo,
		Monto:         m.Monto,
		MedioPago:     m.MedioPago,
		Detalle:       m.Detalle,
		Saldo:         saldo,
	}
}
