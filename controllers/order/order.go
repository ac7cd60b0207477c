package ordercontroller

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prabeth/vovos-pedidos-online/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

// -------- Request Structs --------

type lineInput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerName  string      `json:"customer_name" binding:"required"`
	CustomerPhone string      `json:"customer_phone" binding:"required"`
	OrderDate     string      `json:"order_date" binding:"required"`
	OrderTime     string      `json:"order_time" binding:"required"`
	Items         string      `json:"items"`
	Lines         []lineInput `json:"lines"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
}

type UpdateOrderRequest struct {
	ID            uint        `json:"id" binding:"required"`
	CustomerName  string      `json:"customer_name" binding:"required"`
	CustomerPhone string      `json:"customer_phone" binding:"required"`
	OrderDate     string      `json:"order_date" binding:"required"`
	OrderTime     string      `json:"order_time" binding:"required"`
	Items         string      `json:"items"`
	Lines         []lineInput `json:"lines"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
}

// -------- Helpers --------

func mapPaymentMethod(m string) (models.PaymentMethod, error) {
	switch strings.ToLower(m) {
	case string(models.PaymentZelle):
		return models.PaymentZelle, nil
	case string(models.PaymentCash):
		return models.PaymentCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// linesTotal sums the submitted lines using the unit prices they carry. Admin
// edits reprice from these stored prices, never from the current catalog, so
// editing an old order cannot silently reprice the sale.
func linesTotal(lines []lineInput) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// linesSummary renders the canonical "QTYxNAME" text from normalized lines.
func linesSummary(lines []lineInput) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%dx%s", l.Quantity, l.Name))
	}
	return strings.Join(parts, "\n")
}

func toOrderLines(lines []lineInput) []models.OrderLine {
	out := make([]models.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, models.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// capacityFor parses the capacity_limit setting. Absent, empty or unparsable
// values mean unlimited.
func capacityFor(db *gorm.DB) int {
	var setting models.Setting
	if err := db.First(&setting, "key = ?", models.SettingCapacityLimit).Error; err != nil {
		return 0
	}
	limit, err := strconv.Atoi(strings.TrimSpace(setting.Value))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// -------- Handlers --------

// CreateOrderHandler accepts a submission from the intake workflow. The day
// must be open: Sundays never are, a day marked sold_out is closed, and a
// day at its capacity limit answers the same way a sold-out day does.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		date, err := time.Parse(dateLayout, req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order date"})
			return
		}
		if !phonePattern.MatchString(req.CustomerPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone format"})
			return
		}
		if date.Weekday() == time.Sunday {
			c.JSON(http.StatusConflict, gin.H{"error": "Não abrimos aos domingos"})
			return
		}
		if req.Total <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order total must be greater than zero"})
			return
		}
		paymentMethod, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var day models.DayAvailability
		if err := db.First(&day, "date = ?", req.OrderDate).Error; err == nil {
			if day.Status == models.StatusSoldOut {
				c.JSON(http.StatusConflict, gin.H{"error": "Dia esgotado"})
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
			return
		}

		if limit := capacityFor(db); limit > 0 {
			var count int64
			if err := db.Model(&models.Order{}).Where("order_date = ?", req.OrderDate).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check capacity"})
				return
			}
			if count >= int64(limit) {
				c.JSON(http.StatusConflict, gin.H{"error": "Dia esgotado"})
				return
			}
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			OrderDate:     req.OrderDate,
			OrderTime:     req.OrderTime,
			Items:         req.Items,
			Lines:         toOrderLines(req.Lines),
			Total:         req.Total,
			PaymentMethod: paymentMethod,
			CreatedAt:     time.Now(),
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GetAllOrdersHandler lists every order, newest first (admin).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Lines").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderHandler replaces a full order record (admin). When lines are
// submitted, the total and the items text are recomputed from those lines'
// stored unit prices; the submitted total is ignored in that case.
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}
		paymentMethod, err := mapPaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		order.CustomerName = req.CustomerName
		order.CustomerPhone = req.CustomerPhone
		order.OrderDate = req.OrderDate
		order.OrderTime = req.OrderTime
		order.PaymentMethod = paymentMethod

		if len(req.Lines) > 0 {
			order.Total = linesTotal(req.Lines)
			order.Items = linesSummary(req.Lines)
		} else {
			order.Total = req.Total
			order.Items = req.Items
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			if len(req.Lines) > 0 {
				lines := toOrderLines(req.Lines)
				for i := range lines {
					lines[i].OrderID = order.ID
				}
				if err := tx.Create(&lines).Error; err != nil {
					return err
				}
			}
			order.Lines = nil
			return tx.Save(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
	}
}

// DeleteOrderHandler removes an order and its lines (admin).
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderLine{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
