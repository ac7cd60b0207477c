package availabilitycontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prabeth/vovos-pedidos-online/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// GetAvailability returns the day->status map for the inclusive ?start&end
// range. Only explicitly marked days appear; absent days are implicitly
// available (Sundays are handled by the intake rules, not the store).
func GetAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := c.Query("start")
		end := c.Query("end")
		if _, err := time.Parse(dateLayout, start); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		if _, err := time.Parse(dateLayout, end); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}

		var days []models.DayAvailability
		if err := db.Where("date >= ? AND date <= ?", start, end).Find(&days).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
			return
		}

		result := make(map[string]models.DayStatus, len(days))
		for _, d := range days {
			result[d.Date] = d.Status
		}
		c.JSON(http.StatusOK, result)
	}
}

type upsertDayRequest struct {
	Date   string           `json:"date"`
	Status models.DayStatus `json:"status"`
}

// UpsertDay marks a single day available or sold_out (admin).
func UpsertDay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertDayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid availability payload"})
			return
		}
		if _, err := time.Parse(dateLayout, req.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		if req.Status != models.StatusAvailable && req.Status != models.StatusSoldOut {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be available or sold_out"})
			return
		}

		day := models.DayAvailability{Date: req.Date, Status: req.Status}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status"}),
		}).Create(&day).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save availability"})
			return
		}
		c.JSON(http.StatusOK, day)
	}
}

// DeleteDay removes an explicit mark, returning the day to the implicit
// default (admin).
func DeleteDay(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		if _, err := time.Parse(dateLayout, date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		if err := db.Where("date = ?", date).Delete(&models.DayAvailability{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Availability cleared"})
	}
}
