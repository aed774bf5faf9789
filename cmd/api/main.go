package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	appcaja "github.com/tu-usuario/gestion-pyme/internal/application/caja"
	applibro "github.com/tu-usuario/gestion-pyme/internal/application/libro"
	apppagos "github.com/tu-usuario/gestion-pyme/internal/application/pagos"
	appret "github.com/tu-usuario/gestion-pyme/internal/application/retenciones"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	infrapdf "github.com/tu-usuario/gestion-pyme/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pyme/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
	"github.com/tu-usuario/gestion-pyme/pkg/config"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("afip_ambiente", cfg.AFIP.Ambiente).
		Msg("iniciando aplicación")

	// El CUIT del agente de retención es opcional en desarrollo, pero si está
	// configurado tiene que ser válido: los certificados emitidos lo imprimen.
	if cfg.AFIP.AgenteCUIT != "" {
		if err := afip.ValidateCUIT(afip.NormalizeCUIT(cfg.AFIP.AgenteCUIT)); err != nil {
			log.Warn().Err(err).Str("cuit", cfg.AFIP.AgenteCUIT).Msg("CUIT de agente de retención inválido")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	facturaRepo := postgres.NewFacturaCompraRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	cajaRepo := postgres.NewMovimientoCajaRepository(pool)
	certRepo := postgres.NewCertificadoRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	movStockRepo := postgres.NewMovimientoStockRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	remitoRepo := postgres.NewRemitoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	facturaUC := usecase.NewFacturaCompraUseCase(facturaRepo, proveedorRepo)
	pagoUC := apppagos.NewUseCase(txRunner, pagoRepo, proveedorRepo, facturaRepo)
	cajaUC := appcaja.NewUseCase(cajaRepo)
	retencionUC := appret.NewUseCase(txRunner, certRepo, proveedorRepo)
	libroUC := applibro.NewUseCase(facturaRepo, proveedorRepo, log)
	stockUC := usecase.NewStockUseCase(articuloRepo, movStockRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, remitoRepo, clienteRepo)

	// PDF: representación gráfica del certificado de retención RG 830
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appret.NewPDFUseCase(certRepo, empresaRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProveedorUC: proveedorUC,
		ClienteUC:   clienteUC,
		FacturaUC:   facturaUC,
		PagoUC:      pagoUC,
		CajaUC:      cajaUC,
		RetencionUC: retencionUC,
		PDFUC:       pdfUC,
		LibroUC:     libroUC,
		StockUC:     stockUC,
		PedidoUC:    pedidoUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
