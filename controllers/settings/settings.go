package settingscontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prabeth/vovos-pedidos-online/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSettings returns every setting as a flat string map. Numeric settings
// (capacity_limit) are parsed by whoever consumes them, never by the store.
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.Setting
		if err := db.Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		result := make(map[string]string, len(settings))
		for _, s := range settings {
			result[s.Key] = s.Value
		}
		c.JSON(http.StatusOK, result)
	}
}

type upsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpsertSetting writes one key per call (admin).
func UpsertSetting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertSettingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid setting payload"})
			return
		}
		if strings.TrimSpace(req.Key) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Key is required"})
			return
		}

		setting := models.Setting{Key: req.Key, Value: req.Value}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}
