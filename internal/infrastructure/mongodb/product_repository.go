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
)

type ProductRepositoryMongo struct {
	collection *mongo.Collection
}

func NewProductRepositoryMongo(db *mongo.Database) (*ProductRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("products")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product index: %w", err)
	}

	return &ProductRepositoryMongo{collection: collection}, nil
}

func (r *ProductRepositoryMongo) Create(ctx context.Context, product *entities.Product) error {
	_, err := r.collection.InsertOne(ctx, toProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"product_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return toProductEntity(&doc), nil
}

func (r *ProductRepositoryMongo) List(ctx context.Context) ([]*entities.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]*entities.Product, len(docs))
	for i := range docs {
		products[i] = toProductEntity(&docs[i])
	}
	return products, nil
}

func (r *ProductRepositoryMongo) Update(ctx context.Context, product *entities.Product) error {
	doc := toProductDocument(product)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"product_id": product.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"product_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrProductNotFound
	}
	return nil
}

func toProductDocument(p *entities.Product) *ProductDocument {
	return &ProductDocument{
		ProductID:     p.ID,
		Name:          p.Name,
		Sku:           p.Sku,
		Images:        p.Images,
		Stock:         p.Stock,
		CategoryID:    p.CategoryID,
		Rating:        p.Rating,
		CurrentPrice:  p.CurrentPrice,
		OriginalPrice: p.OriginalPrice,
		Colors:        p.Colors,
		Sizes:         p.Sizes,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductEntity(doc *ProductDocument) *entities.Product {
	return &entities.Product{
		ID:            doc.ProductID,
		Name:          doc.Name,
		Sku:           doc.Sku,
		Images:        doc.Images,
		Stock:         doc.Stock,
		CategoryID:    doc.CategoryID,
		Rating:        doc.Rating,
		CurrentPrice:  doc.CurrentPrice,
		OriginalPrice: doc.OriginalPrice,
		Colors:        doc.Colors,
		Sizes:         doc.Sizes,
		Description:   doc.Description,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}
