package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// PagoRepository define el puerto de persistencia para Pago.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	GetByID(id string) (*entity.Pago, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Pago, error)
}
