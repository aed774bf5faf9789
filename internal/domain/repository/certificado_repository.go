package repository

import "github.com/tu-usuario/gestion-pyme/internal/domain/entity"

// CertificadoRepository define el puerto de persistencia para
// CertificadoRetencion. Los certificados son inmutables una vez emitidos:
// no hay Update ni Delete.
type CertificadoRepository interface {
	Create(certificado *entity.CertificadoRetencion) error
	GetByID(id string) (*entity.CertificadoRetencion, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.CertificadoRetencion, error)
	// ProximoNumeroSecuencial devuelve el siguiente número secuencial de
	// certificado para la empresa y el año dados. Debe invocarse dentro de la
	// transacción que persiste el certificado para no quemar números.
	ProximoNumeroSecuencial(empresaID string, anio int) (int64, error)
}
