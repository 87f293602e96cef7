package testimonials

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

type TestimonialMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestimonialMongoRepository(db *mongo.Client, dbName string) contracts.TestimonialRepository {
	return &TestimonialMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestimonials),
	}
}

func (repo *TestimonialMongoRepository) Create(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	result, err := repo.Collection.InsertOne(ctx, testimonial)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	testimonial.ID = result.InsertedID.(primitive.ObjectID)
	return testimonial, nil
}

func (repo *TestimonialMongoRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Testimonial, error) {
	objectID, err := primitive.ObjectIDFromHex(professionalID)
	if err != nil {
		return []models.Testimonial{}, nil
	}
	cursor, err := repo.Collection.Find(ctx, bson.M{"professional_id": objectID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	testimonials := make([]models.Testimonial, 0)
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return testimonials, nil
}
