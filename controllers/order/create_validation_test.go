package ordercontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These cases all fail before any store access, so the handler can run
// against a nil DB.
func postOrder(t *testing.T, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", CreateOrderHandler(nil))

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"customer_name":  "Ana",
		"customer_phone": "(770) 111-2222",
		"order_date":     "2026-03-02",
		"order_time":     "10:00",
		"items":          "2xBolo",
		"total":          10.0,
		"payment_method": "zelle",
	}
}

func TestCreateOrderRejectsSunday(t *testing.T) {
	body := validBody()
	body["order_date"] = "2026-03-01"
	w := postOrder(t, body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Não abrimos aos domingos")
}

func TestCreateOrderRejectsZeroTotal(t *testing.T) {
	body := validBody()
	body["total"] = 0.0
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsBadDate(t *testing.T) {
	body := validBody()
	body["order_date"] = "03/02/2026"
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsBadPhone(t *testing.T) {
	body := validBody()
	body["customer_phone"] = "7701112222"
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsUnknownPaymentMethod(t *testing.T) {
	body := validBody()
	body["payment_method"] = "card"
	w := postOrder(t, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	w := postOrder(t, map[string]any{"customer_name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
