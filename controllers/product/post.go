package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prabeth/vovos-pedidos-online/models"
	"gorm.io/gorm"
)

type saveProductRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// SaveProduct creates or updates a catalog entry; the presence of an id
// distinguishes the two. Ids are assigned server-side and never reassigned.
func SaveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product payload"})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		if req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
			return
		}

		if req.ID == "" {
			product := models.Product{
				ID:          uuid.NewString(),
				Name:        req.Name,
				Price:       req.Price,
				Description: req.Description,
				Image:       req.Image,
			}
			if err := db.Create(&product).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			c.JSON(http.StatusCreated, product)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		product.Name = req.Name
		product.Price = req.Price
		product.Description = req.Description
		product.Image = req.Image
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
