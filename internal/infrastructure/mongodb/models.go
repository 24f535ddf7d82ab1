package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderDocument struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	OrderUUID       string              `bson:"order_uuid"`
	OrderID         string              `bson:"order_id"`
	UserID          string              `bson:"user_id"`
	Items           []OrderItemDocument `bson:"items"`
	TotalAmount     float64             `bson:"total_amount"`
	DiscountApplied string              `bson:"discount_applied"`
	ShippingAddress AddressDocument     `bson:"shipping_address"`
	PaymentMethod   string              `bson:"payment_method"`
	PaymentStatus   string              `bson:"payment_status"`
	OrderStatus     string              `bson:"order_status"`
	Files           []string            `bson:"files"`
	CreatedAt       time.Time           `bson:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at"`
}

type OrderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	Sku       string  `bson:"sku"`
	Quantity  int     `bson:"quantity"`
	Price     float64 `bson:"price"`
}

type AddressDocument struct {
	Street     string `bson:"street"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ProductID     string             `bson:"product_id"`
	Name          string             `bson:"name"`
	Sku           string             `bson:"sku"`
	Images        []string           `bson:"images"`
	Stock         int                `bson:"stock"`
	CategoryID    string             `bson:"category_id"`
	Rating        float64            `bson:"rating"`
	CurrentPrice  float64            `bson:"current_price"`
	OriginalPrice float64            `bson:"original_price,omitempty"`
	Colors        []string           `bson:"colors"`
	Sizes         []string           `bson:"sizes"`
	Description   string             `bson:"description,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

type CategoryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID string             `bson:"category_id"`
	Name       string             `bson:"name"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type AdminDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	AdminID          string             `bson:"admin_id"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash"`
	ResetTokenHash   string             `bson:"reset_token_hash,omitempty"`
	ResetTokenExpiry time.Time          `bson:"reset_token_expiry,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
}
