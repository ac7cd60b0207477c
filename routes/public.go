package routes

import (
	"github.com/gin-gonic/gin"
	availabilitycontroller "github.com/prabeth/vovos-pedidos-online/controllers/availability"
	ordercontroller "github.com/prabeth/vovos-pedidos-online/controllers/order"
	productcontroller "github.com/prabeth/vovos-pedidos-online/controllers/product"
	settingscontroller "github.com/prabeth/vovos-pedidos-online/controllers/settings"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything the intake workflow consumes.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/availability", availabilitycontroller.GetAvailability(db))
	r.GET("/settings", settingscontroller.GetSettings(db))
	r.POST("/orders", ordercontroller.CreateOrderHandler(db))
}
