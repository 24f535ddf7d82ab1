package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

type OrderRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewOrderRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*OrderRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("orders")

	// The human-readable order id is assigned from a count, which is racy
	// under concurrent checkouts. The unique index turns a collision into
	// a duplicate-key error the usecase retries on.
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "order_uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order indexes: %w", err)
	}

	return &OrderRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *OrderRepositoryMongo) Create(ctx context.Context, order *entities.Order) error {
	doc := toOrderDocument(order)

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrOrderIDTaken
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *OrderRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"order_uuid": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return toOrderEntity(&doc), nil
}

func (r *OrderRepositoryMongo) List(ctx context.Context) ([]*entities.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepositoryMongo) ListByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepositoryMongo) find(ctx context.Context, filter bson.M) ([]*entities.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]*entities.Order, len(docs))
	for i := range docs {
		orders[i] = toOrderEntity(&docs[i])
	}

	return orders, nil
}

func (r *OrderRepositoryMongo) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"order_uuid": id},
		bson.M{"$set": bson.M{"order_status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if result.MatchedCount == 0 {
		return repositories.ErrOrderNotFound
	}

	r.logger.Info("Order status updated",
		"order_uuid", id,
		"new_status", status,
		"modified_count", result.ModifiedCount)

	return nil
}

func (r *OrderRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"order_uuid": id})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if result.DeletedCount == 0 {
		return repositories.ErrOrderNotFound
	}

	return nil
}

func (r *OrderRepositoryMongo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		OrderUUID:       order.ID,
		OrderID:         order.OrderID,
		UserID:          order.UserID,
		TotalAmount:     order.TotalAmount,
		DiscountApplied: order.DiscountApplied,
		ShippingAddress: AddressDocument{
			Street:     order.ShippingAddress.Street,
			City:       order.ShippingAddress.City,
			State:      order.ShippingAddress.State,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.OrderStatus,
		Files:         order.Files,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Items:         make([]OrderItemDocument, len(order.Items)),
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			ProductID: item.ProductID,
			Name:      item.Name,
			Sku:       item.Sku,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return doc
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	items := make([]entities.OrderItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Sku:       item.Sku,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return &entities.Order{
		ID:              doc.OrderUUID,
		OrderID:         doc.OrderID,
		UserID:          doc.UserID,
		Items:           items,
		TotalAmount:     doc.TotalAmount,
		DiscountApplied: doc.DiscountApplied,
		ShippingAddress: entities.ShippingAddress{
			Street:     doc.ShippingAddress.Street,
			City:       doc.ShippingAddress.City,
			State:      doc.ShippingAddress.State,
			PostalCode: doc.ShippingAddress.PostalCode,
			Country:    doc.ShippingAddress.Country,
		},
		PaymentMethod: doc.PaymentMethod,
		PaymentStatus: doc.PaymentStatus,
		OrderStatus:   doc.OrderStatus,
		Files:         doc.Files,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
