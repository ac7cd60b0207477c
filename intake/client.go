package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prabeth/vovos-pedidos-online/models"
)

// The source never bounded its store calls; here every call shares one
// timeout and a timeout surfaces as a TransportError.
const requestTimeout = 10 * time.Second

// OrderPayload is the create-order request body. Items is the preformatted
// "QTYxNAME" summary in cart order; Lines is the normalized copy.
type OrderPayload struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	OrderDate     string               `json:"order_date"`
	OrderTime     string               `json:"order_time"`
	Items         string               `json:"items"`
	Lines         []models.OrderLine   `json:"lines,omitempty"`
	Total         float64              `json:"total"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

// Client talks to the storefront API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Products fetches the catalog.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Availability fetches the day->status map for the inclusive date range.
func (c *Client) Availability(ctx context.Context, start, end string) (map[string]models.DayStatus, error) {
	path := fmt.Sprintf("/availability?start=%s&end=%s", url.QueryEscape(start), url.QueryEscape(end))
	avail := make(map[string]models.DayStatus)
	if err := c.getJSON(ctx, path, &avail); err != nil {
		return nil, err
	}
	return avail, nil
}

// Settings fetches the flat site settings map.
func (c *Client) Settings(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string)
	if err := c.getJSON(ctx, "/settings", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// PlaceOrder submits the order. A non-success status yields a ServerError
// carrying the store's message verbatim, or MsgServerFallback when the body
// cannot be parsed; a request that got no response yields a TransportError.
func (c *Client) PlaceOrder(ctx context.Context, payload OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errBody struct {
		Error string `json:"error"`
	}
	msg := MsgServerFallback
	if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
		msg = errBody.Error
	}
	return &ServerError{Status: resp.StatusCode, Message: msg}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &ServerError{Status: resp.StatusCode, Message: MsgServerFallback}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
