package payments

import (
	"context"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (repo *PaymentMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "appointment_id", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexPaymentAppointment).
			SetUnique(true),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

// Create inserts the settlement. The unique index on appointment_id turns a
// second settlement attempt into a conflict instead of a double booking of
// funds.
func (repo *PaymentMongoRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	result, err := repo.Collection.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrPaymentAlreadySettled(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)
	return payment, nil
}

func (repo *PaymentMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, nil
	}
	var payment models.Payment
	err = repo.Collection.FindOne(ctx, bson.M{"appointment_id": objectID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (repo *PaymentMongoRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}

func (repo *PaymentMongoRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(professionalID)
	if err != nil {
		return []models.Payment{}, nil
	}
	cursor, err := repo.Collection.Find(ctx, bson.M{"professional_id": objectID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}
