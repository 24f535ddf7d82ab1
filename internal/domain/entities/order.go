package entities

import (
	"fmt"
	"time"
)

const (
	PaymentMethodCashOnDelivery    = "cash_on_delivery"
	PaymentMethodEasypaisaJazzcash = "easypaisa_jazzcash"
)

const (
	PaymentStatusPendingVerification = "pending_verification"
	PaymentStatusPendingDelivery     = "pending_delivery"
	PaymentStatusPaid                = "paid"
	PaymentStatusFailed              = "failed"
)

const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// EasypaisaDiscountRate is applied to the subtotal when the order is paid
// via easypaisa/jazzcash transfer.
const EasypaisaDiscountRate = 0.15

type Order struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"orderId"`
	UserID          string          `json:"userId"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	DiscountApplied string          `json:"discountApplied"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	OrderStatus     string          `json:"orderStatus"`
	Files           []string        `json:"files"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem is a snapshot of a product at order time. Name, SKU and Price
// are copied from the catalog so later product edits or deletions never
// change what the customer actually bought.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sku       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func ValidOrderStatus(status string) bool {
	validStatuses := map[string]bool{
		OrderStatusProcessing: true,
		OrderStatusShipped:    true,
		OrderStatusDelivered:  true,
		OrderStatusCancelled:  true,
	}
	return validStatuses[status]
}

func ValidPaymentMethod(method string) bool {
	return method == PaymentMethodCashOnDelivery || method == PaymentMethodEasypaisaJazzcash
}

// FormatOrderID renders the human-readable order identifier, e.g. #ORD-2025-0042.
func FormatOrderID(year int, seq int64) string {
	return fmt.Sprintf("#ORD-%d-%04d", year, seq)
}
