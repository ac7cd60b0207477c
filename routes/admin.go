package routes

import (
	"github.com/gin-gonic/gin"
	availabilitycontroller "github.com/prabeth/vovos-pedidos-online/controllers/availability"
	ordercontroller "github.com/prabeth/vovos-pedidos-online/controllers/order"
	productcontroller "github.com/prabeth/vovos-pedidos-online/controllers/product"
	settingscontroller "github.com/prabeth/vovos-pedidos-online/controllers/settings"
	uploadcontroller "github.com/prabeth/vovos-pedidos-online/controllers/upload"
	"github.com/prabeth/vovos-pedidos-online/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the shared
// secret.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdminSecret(cfg.AdminSecret))
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.SaveProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		availabilityAdmin := adminGroup.Group("/availability")
		{
			availabilityAdmin.POST("", availabilitycontroller.UpsertDay(db))
			availabilityAdmin.DELETE("/:date", availabilitycontroller.DeleteDay(db))
		}

		adminGroup.POST("/settings", settingscontroller.UpsertSetting(db))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(db))
			orderAdmin.POST("/update", ordercontroller.UpdateOrderHandler(db))
			orderAdmin.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
			orderAdmin.GET("/export-excel", ordercontroller.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", ordercontroller.OrderWebSocketHandler)
		}

		adminGroup.POST("/upload", uploadcontroller.UploadFile(cfg.UploadDir, cfg.PublicBaseURL))
	}
}
