package entities

// CustomerRow is the admin "Customers" projection. It is derived one row
// per order, not per user: a user with three orders appears three times.
// The admin table's pagination and counts depend on that shape.
type CustomerRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Location      string  `json:"location"`
	Orders        int     `json:"orders"`
	Status        string  `json:"status"`
	LastOrder     string  `json:"lastOrder"`
	OrderID       string  `json:"orderId"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
}

// CustomerDetail is the single-order projection, additionally exposing the
// full shipping address and the user's registration date.
type CustomerDetail struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Street        string      `json:"street"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	PostalCode    string      `json:"postalCode"`
	Country       string      `json:"country"`
	JoiningDate   string      `json:"joiningDate"`
	Items         []OrderItem `json:"orders"`
	Status        string      `json:"status"`
	LastOrder     string      `json:"lastOrder"`
	OrderID       string      `json:"orderId"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus"`
}
