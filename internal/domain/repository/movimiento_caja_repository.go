package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// MovimientoCajaRepository define el puerto de persistencia para MovimientoCaja.
type MovimientoCajaRepository interface {
	Create(movimiento *entity.MovimientoCaja) error
	GetByID(id string) (*entity.MovimientoCaja, error)
	ListByEmpresa(empresaID string) ([]*entity.MovimientoCaja, error)
	ListByEmpresaYRango(empresaID string, desde, hasta time.Time) ([]*entity.MovimientoCaja, error)
	Update(movimiento *entity.MovimientoCaja) error
	Delete(id string) error
}
