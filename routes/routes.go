package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dapur-mama/controllers"
	"dapur-mama/middleware"
)

func SetupRoutes(router *gin.Engine, menuCtrl *controllers.MenuController, adminCtrl *controllers.AdminController, cartCtrl *controllers.CartController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/:id", menuCtrl.GetMenuItem)

	cart := router.Group("/cart")
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.POST("/checkout", cartCtrl.CheckoutCart)
	}

	router.POST("/admin/session/request", adminCtrl.RequestSession)
	router.POST("/admin/session", adminCtrl.SubmitPassword)
	router.DELETE("/admin/session", adminCtrl.CloseSession)

	admin := router.Group("/admin/menu")
	admin.Use(middleware.AdminAuth())
	{
		admin.POST("", adminCtrl.CreateMenuItem)
		admin.PATCH("/:id", adminCtrl.UpdateMenuItem)
		admin.DELETE("/:id", adminCtrl.DeleteMenuItem)
	}
}
