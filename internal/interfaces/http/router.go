package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	"github.com/tu-usuario/gestion-pyme/internal/application/caja"
	"github.com/tu-usuario/gestion-pyme/internal/application/libro"
	"github.com/tu-usuario/gestion-pyme/internal/application/pagos"
	"github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProveedorUC *usecase.ProveedorUseCase
	ClienteUC   *usecase.ClienteUseCase
	FacturaUC   *usecase.FacturaCompraUseCase
	PagoUC      *pagos.UseCase
	CajaUC      *caja.UseCase
	RetencionUC *retenciones.UseCase
	PDFUC       *retenciones.PDFUseCase
	LibroUC     *libro.UseCase
	StockUC     *usecase.StockUseCase
	PedidoUC    *usecase.PedidoUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Alta de empresa (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	api.Post("/empresas", authHandler.CreateEmpresa)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", RequireRole("admin"), proveedorHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", RequireRole("admin"), clienteHandler.Delete)

	// Facturas de compra (protegido)
	facturas := protected.Group("/facturas-compra")
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Delete("/:id", RequireRole("admin", "contador"), facturaHandler.Delete)

	// Pagos a proveedores (protegido)
	pagosGroup := protected.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagoUC)
	pagosGroup.Post("/", pagoHandler.Create)
	pagosGroup.Get("/", pagoHandler.List)
	pagosGroup.Get("/:id", pagoHandler.GetByID)

	// Caja y proyección (protegido)
	cajaGroup := protected.Group("/caja")
	cajaHandler := NewCajaHandler(deps.CajaUC)
	cajaGroup.Post("/movimientos", cajaHandler.Create)
	cajaGroup.Get("/movimientos", cajaHandler.List)
	cajaGroup.Put("/movimientos/:id", cajaHandler.Update)
	cajaGroup.Delete("/movimientos/:id", cajaHandler.Delete)
	cajaGroup.Get("/proyeccion", cajaHandler.Proyeccion)
	cajaGroup.Get("/futuros", cajaHandler.Futuros)

	// Certificados de retención RG 830 (protegido; emitir requiere rol contable)
	retGroup := protected.Group("/retenciones")
	retencionHandler := NewRetencionHandler(deps.RetencionUC, deps.PDFUC)
	retGroup.Get("/regimenes", retencionHandler.Regimenes)
	retGroup.Post("/preview", retencionHandler.Preview)
	retGroup.Post("/", RequireRole("admin", "contador"), retencionHandler.Emitir)
	retGroup.Get("/", retencionHandler.List)
	retGroup.Get("/:id", retencionHandler.GetByID)
	retGroup.Get("/:id/pdf", retencionHandler.DownloadPDF)

	// Libro IVA Digital de compras (protegido)
	libroGroup := protected.Group("/libro-iva")
	libroHandler := NewLibroHandler(deps.LibroUC)
	libroGroup.Get("/compras", libroHandler.ExportarCompras)
	libroGroup.Get("/compras-alicuotas", libroHandler.ExportarComprasAlicuotas)

	// Artículos y stock (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	articulos := protected.Group("/articulos")
	articulos.Post("/", stockHandler.CreateArticulo)
	articulos.Get("/", stockHandler.ListArticulos)
	articulos.Get("/:id", stockHandler.GetArticulo)
	articulos.Get("/:id/movimientos", stockHandler.ListMovimientos)
	protected.Post("/stock/movimientos", stockHandler.RegisterMovimiento)

	// Pedidos y remitos (protegido)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Patch("/:id/estado", pedidoHandler.UpdateEstado)
	pedidos.Post("/:id/remitos", pedidoHandler.CreateRemito)
	pedidos.Get("/:id/remitos", pedidoHandler.ListRemitos)
}
