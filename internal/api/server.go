package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/fleet-inventory-api/docs"
	v1 "github.com/vietanh2810/fleet-inventory-api/internal/api/handler/v1"
	"github.com/vietanh2810/fleet-inventory-api/internal/api/middleware"
	"github.com/vietanh2810/fleet-inventory-api/internal/config"
	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/metrics"
	"github.com/vietanh2810/fleet-inventory-api/internal/reconcile"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository/dao"
	"github.com/vietanh2810/fleet-inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// NewServer wires one inventory registry per server; it lives as long as
// the process.
func NewServer(conf *config.AppConfig, visionClient service.VisionClient, registry *prometheus.Registry) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	if conf.API.MaxUploadBytes > 0 {
		engine.MaxMultipartMemory = conf.API.MaxUploadBytes
	}

	s := &Server{
		Config:   conf,
		Router:   engine,
		metrics:  metrics.New(registry),
		registry: registry,
	}

	s.MountMiddlewares()

	catalogSvc := service.NewCatalogService(s.catalogItems())
	inventorySvc := s.initInventoryService(catalogSvc)
	inventoryHandler := v1.NewInventoryHandler(inventorySvc, catalogSvc)
	analysisHandler := s.initAnalysisHandler(visionClient, inventorySvc)
	s.MountHandlers(inventoryHandler, analysisHandler)

	return s
}

func (s *Server) initInventoryService(catalog *service.CatalogService) *service.InventoryService {
	inventoryDAO := dao.NewInventoryDAO()
	repo := repository.NewInventoryRepository(inventoryDAO)

	return service.NewInventoryService(repo, catalog, s.metrics)
}

func (s *Server) initAnalysisHandler(visionClient service.VisionClient, inventory *service.InventoryService) *v1.AnalysisHandler {
	engine := reconcile.NewEngine(reconcile.SubstringMatcher{})
	svc := service.NewAnalysisService(visionClient, engine, inventory, s.metrics)

	return v1.NewAnalysisHandler(svc, s.Config.API.MaxUploadBytes)
}

func (s *Server) catalogItems() []domain.CatalogItem {
	if s.Config.Catalog == nil {
		return nil
	}

	items := make([]domain.CatalogItem, 0, len(s.Config.Catalog.Items))
	for _, item := range s.Config.Catalog.Items {
		items = append(items, domain.CatalogItem{ID: item.ID, Name: item.Name})
	}

	return items
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(inventoryHandler *v1.InventoryHandler, analysisHandler *v1.AnalysisHandler) {
	const basePath = "/api/v1"

	api := s.Router.Group(basePath)
	{
		api.GET("/catalog", inventoryHandler.HandleGetCatalog)

		api.GET("/inventory", inventoryHandler.HandleGetInventory)
		api.POST("/inventory", inventoryHandler.HandleAddInventoryItem)
		api.DELETE("/inventory", inventoryHandler.HandleClearInventory)
		api.DELETE("/inventory/:itemID", inventoryHandler.HandleRemoveInventoryItem)
		api.POST("/inventory/analysis", analysisHandler.HandleInventoryCheck)

		api.POST("/vision-analysis", analysisHandler.HandleVisionAnalysis)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Fleet Inventory API"
	docs.SwaggerInfo.Description = "Registers expected compartment inventory and checks it against a photo."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
