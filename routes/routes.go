package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config carries the startup values the route handlers need.
type Config struct {
	AdminSecret   string
	UploadDir     string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point that wires up the public storefront
// and the admin surface.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg Config) {
	SetupPublicRoutes(r, db)
	SetupAdminRoutes(r, db, cfg)
}
