package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/health"
	"github.com/valbrand/crm-backend/internal/http/handler"
	"github.com/valbrand/crm-backend/internal/http/middleware"
	"github.com/valbrand/crm-backend/internal/http/response"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/service"
	"gorm.io/gorm"
)

type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	AuditHandler   *handler.AuditHandler
	UserHandler    *handler.UserHandler
	AuditService   *service.AuditService
	DB             *gorm.DB
	APIKey         string
	Logger         *slog.Logger
	Readiness      *health.ProbeRunner
	EnableOTelHTTP bool
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.Audit(dep.AuditService, dep.Logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"message": "Bienvenido a ValBrand CRM API",
			"version": "1.0.0",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "ValBrand CRM API",
		})
	})
	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.JSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unready", "checks": results})
	})

	// Everything below requires the shared API key.
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(dep.APIKey))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", dep.AuthHandler.Login)
			r.Post("/logout", dep.AuthHandler.Logout)
			r.Post("/refresh", dep.AuthHandler.Refresh)
			r.Post("/forgot-password", dep.AuthHandler.ForgotPassword)
			r.Post("/reset-password", dep.AuthHandler.ResetPassword)
			r.Get("/me", dep.AuthHandler.Me)
		})

		r.Route("/audit", func(r chi.Router) {
			r.Get("/logs", dep.AuditHandler.ListLogs)
			r.Delete("/logs/cleanup", dep.AuditHandler.Cleanup)
			r.Get("/logs/{id}", dep.AuditHandler.GetLog)
			r.Get("/stats", dep.AuditHandler.Stats)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", dep.UserHandler.Create)
			r.Get("/", dep.UserHandler.List)
			r.Get("/{id}", dep.UserHandler.Get)
			r.Put("/{id}", dep.UserHandler.Update)
			r.Delete("/{id}", dep.UserHandler.Delete)
		})

		mountCRUD(r, dep.DB, "/clients", "client", "Cliente no encontrado", func(c *domain.Client, id uint) { c.ID = id })
		mountCRUD(r, dep.DB, "/project-types", "project_type", "Tipo de proyecto no encontrado", func(p *domain.ProjectType, id uint) { p.ID = id })
		mountCRUD(r, dep.DB, "/projects", "project", "Proyecto no encontrado", func(p *domain.Project, id uint) { p.ID = id })
		mountCRUD(r, dep.DB, "/moldes", "mold", "Molde no encontrado", func(m *domain.Mold, id uint) { m.ID = id })
		mountCRUD(r, dep.DB, "/muestras", "sample", "Muestra no encontrada", func(s *domain.Sample, id uint) { s.ID = id })
		mountCRUD(r, dep.DB, "/produccion/planes", "production_plan", "Plan de producción no encontrado", func(p *domain.ProductionPlan, id uint) { p.ID = id })
		mountCRUD(r, dep.DB, "/branding/proyectos", "branding_project", "Proyecto de branding no encontrado", func(b *domain.BrandingProject, id uint) { b.ID = id })
		mountCRUD(r, dep.DB, "/ecommerce/proyectos", "ecommerce_project", "Proyecto de ecommerce no encontrado", func(e *domain.EcommerceProject, id uint) { e.ID = id })
		mountCRUD(r, dep.DB, "/financiero/facturas", "invoice", "Factura no encontrada", func(i *domain.Invoice, id uint) { i.ID = id })
		mountCRUD(r, dep.DB, "/financiero/pagos", "payment", "Pago no encontrado", func(p *domain.Payment, id uint) { p.ID = id })
		mountCRUD(r, dep.DB, "/financiero/gastos", "expense", "Gasto no encontrado", func(e *domain.Expense, id uint) { e.ID = id })
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}

func mountCRUD[T any](r chi.Router, db *gorm.DB, prefix, entity, notFound string, setID func(*T, uint)) {
	h := handler.NewCRUDHandler(repository.NewCRUDRepository[T](db, entity), notFound, setID)
	r.Route(prefix, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
