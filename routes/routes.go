package routes

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/portfolio-simple/api/v1"
	"github.com/portfolio-simple/app"
	"github.com/portfolio-simple/controllers"
	"github.com/portfolio-simple/logging"
	"github.com/portfolio-simple/middleware"
)

// UploadsURLPath serves the upload directory
const UploadsURLPath = "/static/uploads"

// NewRouter builds the gin engine with every route registered
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	router.Use(
		logging.GinLogger(a.Logger.Named("http")),
		gin.Recovery(),
		a.Metrics.GinMiddleware(),
	)
	router.SetHTMLTemplate(a.Templates)
	router.MaxMultipartMemory = a.Config.Uploads.MaxBytes

	SetupRoutes(router, a)
	return router
}

// SetupRoutes registers all routes
func SetupRoutes(router *gin.Engine, a *app.App) {
	projects := controllers.NewProjectController(a.Projects, a.Logger.Named("pages"), a.Config.Uploads.MaxBytes)
	auth := controllers.NewAuthController(a.Auth, a.Logger.Named("auth"), a.Config.Session.SecureCookie)
	limitBody := middleware.LimitRequestBody(a.Config.Uploads.MaxBytes)

	router.Use(controllers.CookieOptions(a.Config.Session.SecureCookie))

	router.Static(UploadsURLPath, a.Files.Dir())
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	// API routes
	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, v1.NewHandler(a.Projects, a.Logger.Named("api"), a.Config.Server.Version, UploadsURLPath))

	// Page routes carry the session
	pages := router.Group("")
	pages.Use(middleware.Session(a.Auth))
	{
		pages.GET("/", controllers.Home)
		pages.GET("/projects", projects.List)

		pages.GET("/login", auth.ShowLogin)
		pages.POST("/login", limitBody, auth.Login)
		pages.GET("/logout", auth.Logout)
	}

	// Admin routes
	admin := pages.Group("")
	admin.Use(middleware.RequireLogin())
	{
		admin.GET("/upload", projects.ShowUpload)
		admin.POST("/upload", limitBody, projects.Upload)
		admin.GET("/edit/:id", projects.ShowEdit)
		admin.POST("/edit/:id", limitBody, projects.Edit)
		admin.POST("/delete/:id", projects.Delete)
	}

	router.NoRoute(middleware.Session(a.Auth), controllers.NotFound)
}
