package handlers

import (
	"bookreviews/internal/logger"
	"bookreviews/internal/service"
	"bookreviews/web"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(web.Templates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Open routes: account creation, login, logout
	router.GET("/register", h.registerPage)
	router.POST("/register", h.register)
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	// Everything else sits behind the session guard
	authed := router.Group("/", h.sessionGuard)
	{
		authed.GET("/", h.index)
		authed.GET("/search", h.searchPage)
		authed.POST("/search", h.search)
		authed.GET("/book/:isbn", h.bookPage)
		authed.POST("/book/:isbn", h.submitReview)
		authed.GET("/api/:isbn", h.bookInfo)
	}

	return router
}
