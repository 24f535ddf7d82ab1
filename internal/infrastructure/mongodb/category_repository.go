package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Muneeb10/AK-Fashion/internal/domain/entities"
	"github.com/Muneeb10/AK-Fashion/internal/domain/repositories"
)

type CategoryRepositoryMongo struct {
	collection *mongo.Collection
}

func NewCategoryRepositoryMongo(db *mongo.Database) *CategoryRepositoryMongo {
	return &CategoryRepositoryMongo{collection: db.Collection("categories")}
}

func (r *CategoryRepositoryMongo) Create(ctx context.Context, category *entities.Category) error {
	_, err := r.collection.InsertOne(ctx, toCategoryDocument(category))
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Category, error) {
	var doc CategoryDocument
	err := r.collection.FindOne(ctx, bson.M{"category_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return toCategoryEntity(&doc), nil
}

func (r *CategoryRepositoryMongo) List(ctx context.Context) ([]*entities.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []CategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]*entities.Category, len(docs))
	for i := range docs {
		categories[i] = toCategoryEntity(&docs[i])
	}
	return categories, nil
}

func (r *CategoryRepositoryMongo) Update(ctx context.Context, category *entities.Category) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"category_id": category.ID},
		bson.M{"$set": bson.M{"name": category.Name}},
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrCategoryNotFound
	}
	return nil
}

// Delete removes the category document. There is deliberately no guard
// against products still referencing it; see DESIGN.md.
func (r *CategoryRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"category_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrCategoryNotFound
	}
	return nil
}

func toCategoryDocument(c *entities.Category) *CategoryDocument {
	return &CategoryDocument{
		CategoryID: c.ID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
	}
}

func toCategoryEntity(doc *CategoryDocument) *entities.Category {
	return &entities.Category{
		ID:        doc.CategoryID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
	}
}
