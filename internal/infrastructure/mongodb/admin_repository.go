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

type AdminRepositoryMongo struct {
	collection *mongo.Collection
}

func NewAdminRepositoryMongo(db *mongo.Database) (*AdminRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("admins")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin index: %w", err)
	}

	return &AdminRepositoryMongo{collection: collection}, nil
}

func (r *AdminRepositoryMongo) Create(ctx context.Context, admin *entities.Admin) error {
	_, err := r.collection.InsertOne(ctx, toAdminDocument(admin))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

func (r *AdminRepositoryMongo) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AdminRepositoryMongo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*entities.Admin, error) {
	return r.findOne(ctx, bson.M{"reset_token_hash": tokenHash})
}

func (r *AdminRepositoryMongo) Update(ctx context.Context, admin *entities.Admin) error {
	doc := toAdminDocument(admin)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"admin_id": admin.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepositoryMongo) findOne(ctx context.Context, filter bson.M) (*entities.Admin, error) {
	var doc AdminDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return toAdminEntity(&doc), nil
}

func toAdminDocument(a *entities.Admin) *AdminDocument {
	return &AdminDocument{
		AdminID:          a.ID,
		Name:             a.Name,
		Email:            a.Email,
		PasswordHash:     a.PasswordHash,
		ResetTokenHash:   a.ResetTokenHash,
		ResetTokenExpiry: a.ResetTokenExpiry,
		CreatedAt:        a.CreatedAt,
	}
}

func toAdminEntity(doc *AdminDocument) *entities.Admin {
	return &entities.Admin{
		ID:               doc.AdminID,
		Name:             doc.Name,
		Email:            doc.Email,
		PasswordHash:     doc.PasswordHash,
		ResetTokenHash:   doc.ResetTokenHash,
		ResetTokenExpiry: doc.ResetTokenExpiry,
		CreatedAt:        doc.CreatedAt,
	}
}
