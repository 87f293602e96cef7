package admins

import (
	"context"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdminMongoRepository(db *mongo.Client, dbName string) contracts.AdminRepository {
	return &AdminMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdminUsers),
	}
}

func (repo *AdminMongoRepository) Create(ctx context.Context, admin *models.AdminUser) (*models.AdminUser, error) {
	result, err := repo.Collection.InsertOne(ctx, admin)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return admin, nil
}

func (repo *AdminMongoRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := repo.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}
