package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos de venta y remitos.
type PedidoUseCase struct {
	pedidoRepo  repository.PedidoRepository
	remitoRepo  repository.RemitoRepository
	clienteRepo repository.ClienteRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, remitoRepo repository.RemitoRepository, clienteRepo repository.ClienteRepository) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, remitoRepo: remitoRepo, clienteRepo: clienteRepo}
}

// Create crea un pedido en estado pendiente.
func (uc *PedidoUseCase) Create(empresaID string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pedido := &entity.Pedido{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		ClienteID: in.ClienteID,
		Fecha:     fecha,
		Estado:    entity.PedidoPendiente,
		Total:     in.Total,
		Detalle:   in.Detalle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.pedidoRepo.Create(pedido); err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, cliente.RazonSocial), nil
}

// GetByID obtiene un pedido de la empresa.
func (uc *PedidoUseCase) GetByID(empresaID, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	nombre := ""
	if cliente, _ := uc.clienteRepo.GetByID(pedido.ClienteID); cliente != nil {
		nombre = cliente.RazonSocial
	}
	return toPedidoResponse(pedido, nombre), nil
}

// List lista los pedidos de la empresa.
func (uc *PedidoUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.PedidoResponse, error) {
	page = dto.DefaultPage(page)
	pedidos, err := uc.pedidoRepo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, toPedidoResponse(p, ""))
	}
	return out, nil
}

// UpdateEstado cambia el estado de un pedido. Un pedido cancelado no vuelve
// a pendiente ni se entrega.
func (uc *PedidoUseCase) UpdateEstado(empresaID, id string, in dto.UpdatePedidoEstadoRequest) (*dto.PedidoResponse, error) {
	switch in.Estado {
	case entity.PedidoPendiente, entity.PedidoEntregado, entity.PedidoCancelado:
	default:
		return nil, domain.ErrInvalidInput
	}
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if pedido.Estado == entity.PedidoCancelado {
		return nil, domain.ErrConflict
	}
	if err := uc.pedidoRepo.UpdateEstado(id, in.Estado); err != nil {
		return nil, err
	}
	pedido.Estado = in.Estado
	return toPedidoResponse(pedido, ""), nil
}

// CreateRemito emite un remito para un pedido y lo marca entregado.
func (uc *PedidoUseCase) CreateRemito(empresaID, pedidoID string, in dto.CreateRemitoRequest) (*dto.RemitoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if pedido.Estado == entity.PedidoCancelado {
		return nil, domain.ErrConflict
	}
	fecha, err := time.Parse("2006-01-02", in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	existentes, err := uc.remitoRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	remito := &entity.Remito{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		PedidoID:  pedidoID,
		Numero:    fmt.Sprintf("R-0001-%08d", len(existentes)+1),
		Fecha:     fecha,
		Detalle:   in.Detalle,
		CreatedAt: time.Now(),
	}
	if err := uc.remitoRepo.Create(remito); err != nil {
		return nil, err
	}
	if pedido.Estado == entity.PedidoPendiente {
		if err := uc.pedidoRepo.UpdateEstado(pedidoID, entity.PedidoEntregado); err != nil {
			return nil, err
		}
	}
	return toRemitoResponse(remito), nil
}

// ListRemitos lista los remitos de un pedido.
func (uc *PedidoUseCase) ListRemitos(empresaID, pedidoID string) ([]*dto.RemitoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil || pedido == nil {
		return nil, domain.ErrNotFound
	}
	if pedido.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	remitos, err := uc.remitoRepo.ListByPedido(pedidoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RemitoResponse, 0, len(remitos))
	for _, r := range remitos {
		out = append(out, toRemitoResponse(r))
	}
	return out, nil
}

func toPedidoResponse(p *entity.Pedido, clienteNombre string) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		ID:            p.ID,
		EmpresaID:     p.EmpresaID,
		ClienteID:     p.ClienteID,
		ClienteNombre: clienteNombre,
		Fecha:         p.Fecha.Format("2006-01-02"),
		Estado:        p.Estado,
		Total:         p.Total,
		Detalle:       p.Detalle,
	}
}

func toRemitoResponse(r *entity.Remito) *dto.RemitoResponse {
	return &dto.RemitoResponse{
		ID:        r.ID,
		EmpresaID: r.EmpresaID,
		PedidoID:  r.PedidoID,
		Numero:    r.Numero,
		Fecha:     r.Fecha.Format("2006-01-02"),
		Detalle:   r.Detalle,
	}
}
