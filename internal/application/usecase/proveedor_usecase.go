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

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor. Valida el CUIT y rechaza duplicados por CUIT
// dentro de la empresa.
func (uc *ProveedorUseCase) Create(empresaID string, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.RazonSocial == "" {
		return nil, domain.ErrInvalidInput
	}
	cuit := afip.NormalizeCUIT(in.CUIT)
	if err := afip.ValidateCUIT(cuit); err != nil {
		return nil, domain.ErrInvalidInput
	}
	condicion := in.CondicionGanancias
	if condicion == "" {
		condicion = afip.CondicionNoInscripto
	}
	if condicion != afip.CondicionInscripto && condicion != afip.CondicionNoInscripto {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmpresaYCUIT(empresaID, cuit)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:                 uuid.New().String(),
		EmpresaID:          empresaID,
		RazonSocial:        in.RazonSocial,
		CUIT:               cuit,
		CondicionGanancias: condicion,
		Email:              in.Email,
		Telefono:           in.Telefono,
		Direccion:          in.Direccion,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor de la empresa.
func (uc *ProveedorUseCase) GetByID(empresaID, id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return toProveedorResponse(proveedor), nil
}

// List lista los proveedores de la empresa.
func (uc *ProveedorUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.ProveedorResponse, error) {
	page = dto.DefaultPage(page)
	proveedores, err := uc.repo.ListByEmpresa(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// Update actualiza un proveedor. El CUIT no se modifica: un CUIT distinto es
// otro proveedor.
func (uc *ProveedorUseCase) Update(empresaID, id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	if in.RazonSocial != "" {
		proveedor.RazonSocial = in.RazonSocial
	}
	if in.CondicionGanancias != "" {
		if in.CondicionGanancias != afip.CondicionInscripto && in.CondicionGanancias != afip.CondicionNoInscripto {
			return nil, domain.ErrInvalidInput
		}
		proveedor.CondicionGanancias = in.CondicionGanancias
	}
	if in.Email != "" {
		proveedor.Email = in.Email
	}
	if in.Telefono != "" {
		proveedor.Telefono = in.Telefono
	}
	if in.Direccion != "" {
		proveedor.Direccion = in.Direccion
	}
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Delete elimina un proveedor de la empresa.
func (uc *ProveedorUseCase) Delete(empresaID, id string) error {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNotFound
	}
	if proveedor.EmpresaID != empresaID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:                 p.ID,
		EmpresaID:          p.EmpresaID,
		RazonSocial:        p.RazonSocial,
		CUIT:               p.CUIT,
		CondicionGanancias: p.CondicionGanancias,
		Email:              p.Email,
		Telefono:           p.Telefono,
		Direccion:          p.Direccion,
	}
}
