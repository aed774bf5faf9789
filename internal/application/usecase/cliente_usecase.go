package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. El CUIT es opcional (consumidor final) pero si viene
// debe ser válido y único en la empresa.
func (uc *ClienteUseCase) Create(empresaID string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	cuit := ""
	if in.CUIT != "" {
		cuit = afip.NormalizeCUIT(in.CUIT)
		if err := afip.ValidateCUIT(cuit); err != nil {
			return nil, domain.ErrInvalidInput
		}
		existing, _ := uc.repo.GetByEmpresaYCUIT(empresaID, cuit)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:           uuid.New().String(),
		EmpresaID:    empresaID,
		RazonSocial:  in.RazonSocial,
		CUIT:         cuit,
		CondicionIVA: in.CondicionIVA,
		Email:        in.Email,
		Telefono:     in.Telefono,
		Direccion:    in.Direccion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente de la empresa.
func (uc *ClienteUseCase) GetByID(empresaID, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toClienteResponse(cliente), nil
}

// List lista los clientes de la empresa.
func (uc *ClienteUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.ClienteResponse, error) {
	page = dto.DefaultPage(page)
	clientes, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente.
func (uc *ClienteUseCase) Update(empresaID, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.RazonSocial != "" {
		cliente.RazonSocial = in.RazonSocial
	}
	if in.CondicionIVA != "" {
		cliente.CondicionIVA = in.CondicionIVA
	}
	if in.Email != "" {
		cliente.Email = in.Email
	}
	if in.Telefono != "" {
		cliente.Telefono = in.Telefono
	}
	if in.Direccion != "" {
		cliente.Direccion = in.Direccion
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente de la empresa.
func (uc *ClienteUseCase) Delete(empresaID, id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	if cliente.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID,
		EmpresaID:    c.EmpresaID,
		RazonSocial:  c.RazonSocial,
		CUIT:         c.CUIT,
		CondicionIVA: c.CondicionIVA,
		Email:        c.Email,
		Telefono:     c.Telefono,
		Direccion:    c.Direccion,
	}
}
