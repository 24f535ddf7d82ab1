package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

// maxOrderIDAttempts bounds the retry loop when two concurrent checkouts
// compute the same sequence number and collide on the unique index.
const maxOrderIDAttempts = 3

type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order) error
	Close()
}

type FileStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

type FileUpload struct {
	Filename string
	Content  io.Reader
}

// CartItem is a checkout line as submitted by the storefront. Only the
// product reference and quantity are trusted; unit prices, names and SKUs
// are re-read from the catalog at order time.
type CartItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	UserID          string
	Items           []CartItem
	ShippingAddress entities.ShippingAddress
	PaymentMethod   string
	ProofFiles      []FileUpload
}

// OrderView is an order joined with the owning user's contact fields for
// immediate display.
type OrderView struct {
	entities.Order
	Customer entities.UserContact `json:"customer"`
}

type OrderUseCase struct {
	orders   repositories.OrderRepository
	users    repositories.UserRepository
	products repositories.ProductRepository
	files    FileStore
	events   EventPublisher
	logger   *logger.Logger
}

func NewOrderUseCase(
	orders repositories.OrderRepository,
	users repositories.UserRepository,
	products repositories.ProductRepository,
	files FileStore,
	events EventPublisher,
	logger *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		users:    users,
		products: products,
		files:    files,
		events:   events,
		logger:   logger,
	}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error) {
	if input.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !entities.ValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if err := validateAddress(input.ShippingAddress); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	items := make([]entities.OrderItem, len(input.Items))
	subtotal := 0.0
	for i, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has invalid quantity", ErrInvalidItem, i)
		}

		product, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %q: %w", item.ProductID, err)
		}

		items[i] = entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Sku:       product.Sku,
			Quantity:  item.Quantity,
			Price:     product.CurrentPrice,
		}
		subtotal += float64(item.Quantity) * product.CurrentPrice
	}

	discountApplied := "0%"
	discountAmount := 0.0
	paymentStatus := entities.PaymentStatusPendingDelivery
	if input.PaymentMethod == entities.PaymentMethodEasypaisaJazzcash {
		discountAmount = subtotal * entities.EasypaisaDiscountRate
		discountApplied = "15%"
		paymentStatus = entities.PaymentStatusPendingVerification
	}

	// Payment-proof screenshots only accompany the transfer method.
	var storedFiles []string
	if input.PaymentMethod == entities.PaymentMethodEasypaisaJazzcash {
		storedFiles, err = uc.storeProofFiles(ctx, input.ProofFiles)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	order := &entities.Order{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Items:           items,
		TotalAmount:     subtotal - discountAmount,
		DiscountApplied: discountApplied,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		OrderStatus:     entities.OrderStatusProcessing,
		Files:           storedFiles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.persistWithOrderID(ctx, order); err != nil {
		uc.removeFiles(storedFiles)
		return nil, err
	}

	if uc.events != nil {
		go func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := uc.events.PublishOrderCreated(pubCtx, order); err != nil {
				uc.logger.Warn("Failed to publish order.created event", "order_id", order.OrderID, "error", err)
			}
		}()
	}

	view := uc.toOrderView(order, entities.UserContact{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	})
	return view, nil
}

// persistWithOrderID assigns the sequential year-scoped identifier and
// inserts the order, retrying on a duplicate-key conflict. A retry re-reads
// the count, which has moved past the colliding writer's insert.
func (uc *OrderUseCase) persistWithOrderID(ctx context.Context, order *entities.Order) error {
	for attempt := 1; attempt <= maxOrderIDAttempts; attempt++ {
		count, err := uc.orders.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count orders: %w", err)
		}

		order.OrderID = entities.FormatOrderID(time.Now().Year(), count+1)

		err = uc.orders.Create(ctx, order)
		if err == nil {
			return nil
		}
		if errors.Is(err, repositories.ErrOrderIDTaken) {
			uc.logger.Warn("Order id collision, retrying",
				"order_id", order.OrderID,
				"attempt", attempt)
			continue
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return fmt.Errorf("failed to assign order id after %d attempts: %w",
		maxOrderIDAttempts, repositories.ErrOrderIDTaken)
}

func (uc *OrderUseCase) storeProofFiles(ctx context.Context, uploads []FileUpload) ([]string, error) {
	var stored []string
	for _, upload := range uploads {
		path, err := uc.files.Save(ctx, upload.Filename, upload.Content)
		if err != nil {
			uc.removeFiles(stored)
			return nil, fmt.Errorf("failed to store payment proof: %w", err)
		}
		stored = append(stored, path)
	}
	return stored, nil
}

// removeFiles best-effort deletes blobs that would otherwise be orphaned
// by a failed order persistence.
func (uc *OrderUseCase) removeFiles(paths []string) {
	if len(paths) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, path := range paths {
		if err := uc.files.Remove(ctx, path); err != nil {
			uc.logger.Warn("Failed to remove orphaned upload", "path", path, "error", err)
		}
	}
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*OrderView, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	contacts := map[string]entities.UserContact{}
	return uc.toOrderView(order, uc.lookupContact(ctx, contacts, order.UserID)), nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]*OrderView, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return uc.toOrderViews(ctx, orders), nil
}

func (uc *OrderUseCase) ListOrdersByUser(ctx context.Context, userID string) ([]*OrderView, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	orders, err := uc.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return uc.toOrderViews(ctx, orders), nil
}

// UpdateOrderStatus accepts any valid status as the next state. There is
// no transition table: the admin panel offers a free-form selector and
// backward moves (delivered back to processing) are allowed.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, id, status string) (*OrderView, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if !entities.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order for update: %w", err)
	}

	if err := uc.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.OrderStatus = status
	order.UpdatedAt = time.Now()

	contacts := map[string]entities.UserContact{}
	return uc.toOrderView(order, uc.lookupContact(ctx, contacts, order.UserID)), nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidOrderID
	}

	if err := uc.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// ListCustomers derives the admin "Customers" table: one row per order.
// A user with three orders appears three times; the admin UI's counts and
// pagination depend on that shape.
func (uc *OrderUseCase) ListCustomers(ctx context.Context) ([]*entities.CustomerRow, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	contacts := map[string]entities.UserContact{}
	rows := make([]*entities.CustomerRow, len(orders))
	for i, order := range orders {
		contact := uc.lookupContact(ctx, contacts, order.UserID)
		rows[i] = &entities.CustomerRow{
			ID:            order.ID,
			Name:          contact.Name,
			Email:         contact.Email,
			Phone:         contact.Phone,
			Location:      order.ShippingAddress.City + ", " + order.ShippingAddress.Country,
			Orders:        len(order.Items),
			Status:        order.OrderStatus,
			LastOrder:     order.CreatedAt.Format("2006-01-02"),
			OrderID:       order.OrderID,
			TotalAmount:   order.TotalAmount,
			PaymentStatus: order.PaymentStatus,
		}
	}

	return rows, nil
}

func (uc *OrderUseCase) GetCustomer(ctx context.Context, orderID string) (*entities.CustomerDetail, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	detail := &entities.CustomerDetail{
		ID:            order.ID,
		Street:        order.ShippingAddress.Street,
		City:          order.ShippingAddress.City,
		State:         order.ShippingAddress.State,
		PostalCode:    order.ShippingAddress.PostalCode,
		Country:       order.ShippingAddress.Country,
		Items:         order.Items,
		Status:        order.OrderStatus,
		LastOrder:     order.CreatedAt.Format("2006-01-02"),
		OrderID:       order.OrderID,
		TotalAmount:   order.TotalAmount,
		PaymentStatus: order.PaymentStatus,
	}

	user, err := uc.users.GetByID(ctx, order.UserID)
	if err == nil {
		detail.Name = user.Name
		detail.Email = user.Email
		detail.Phone = user.Phone
		detail.JoiningDate = user.CreatedAt.Format("2006-01-02")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return detail, nil
}

func (uc *OrderUseCase) toOrderViews(ctx context.Context, orders []*entities.Order) []*OrderView {
	contacts := map[string]entities.UserContact{}
	views := make([]*OrderView, len(orders))
	for i, order := range orders {
		views[i] = uc.toOrderView(order, uc.lookupContact(ctx, contacts, order.UserID))
	}
	return views
}

func (uc *OrderUseCase) toOrderView(order *entities.Order, contact entities.UserContact) *OrderView {
	return &OrderView{Order: *order, Customer: contact}
}

// lookupContact resolves a user's display fields, caching per request. A
// user deleted after ordering yields empty contact fields, not an error.
func (uc *OrderUseCase) lookupContact(ctx context.Context, cache map[string]entities.UserContact, userID string) entities.UserContact {
	if contact, ok := cache[userID]; ok {
		return contact
	}

	contact := entities.UserContact{}
	user, err := uc.users.GetByID(ctx, userID)
	if err == nil {
		contact = entities.UserContact{Name: user.Name, Email: user.Email, Phone: user.Phone}
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		uc.logger.Warn("Failed to resolve user for order join", "user_id", userID, "error", err)
	}

	cache[userID] = contact
	return contact
}

func validateAddress(addr entities.ShippingAddress) error {
	fields := map[string]string{
		"street":     addr.Street,
		"city":       addr.City,
		"state":      addr.State,
		"postalCode": addr.PostalCode,
		"country":    addr.Country,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrMissingAddressField, name)
		}
	}
	return nil
}

var (
	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidOrderID       = errors.New("invalid order ID")
	ErrEmptyItems           = errors.New("items list cannot be empty")
	ErrInvalidItem          = errors.New("invalid item")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingAddressField  = errors.New("incomplete shipping address")
)
