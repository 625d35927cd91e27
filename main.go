package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"dapur-mama/config"
	"dapur-mama/controllers"
	_ "dapur-mama/docs"
	"dapur-mama/libs"
	"dapur-mama/middleware"
	"dapur-mama/models"
	"dapur-mama/repositories"
	"dapur-mama/routes"
	"dapur-mama/services"
)

// @title Dapur Mama API
// @version 1.0
// @description Menu catalog and WhatsApp ordering API for Dapur Mama.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var storage repositories.CatalogStorage
	if config.AppConfig.MenuStorage == "postgres" {
		config.ConnectDB()
		defer config.CloseDB()
		storage = repositories.NewPostgresStorage(config.DB, config.AppConfig.MenuSlot)
	} else {
		storage = repositories.NewFileStorage(config.AppConfig.MenuFile)
	}

	models.InitRedis()
	defer models.CloseRedis()

	var email *models.EmailService
	if svc, err := models.NewEmailService(); err == nil {
		email = svc
		log.Println("Order copy emails enabled")
	} else {
		log.Println("Order copy emails disabled:", err)
	}

	var cloud *libs.CloudinaryService
	if svc, err := libs.NewCloudinaryService(); err == nil {
		cloud = svc
		log.Println("Cloudinary image hosting enabled")
	} else {
		log.Println("Cloudinary disabled, uploads stored as data URIs:", err)
	}

	catalog := services.NewCatalogService(storage)
	carts := services.NewCartService()
	checkout := services.NewCheckoutService(config.AppConfig.WhatsAppNumber, email, config.AppConfig.OwnerEmail)
	gates := services.NewAdminGateRegistry(config.AppConfig.AdminPassword, config.AppConfig.AdminPasswordHash)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router,
		&controllers.MenuController{Catalog: catalog},
		&controllers.AdminController{Catalog: catalog, Gates: gates, Cloud: cloud},
		&controllers.CartController{Catalog: catalog, Carts: carts, Checkout: checkout},
	)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
