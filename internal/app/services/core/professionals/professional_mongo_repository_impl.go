package professionals

import (
	"context"
	"strconv"

	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfessionalMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfessionalMongoRepository(db *mongo.Client, dbName string) contracts.ProfessionalRepository {
	return &ProfessionalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfessionals),
	}
}

func (repo *ProfessionalMongoRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "subdomain", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexProfessionalSubdomain).
			SetUnique(true),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, index)
	if err != nil {
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

// subdomainCandidate derives the handle probed at a given attempt. Attempt
// zero is the bare base, each following attempt appends its number.
func subdomainCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return base + strconv.Itoa(attempt)
}

// CreateWithUniqueSubdomain lets the unique index arbitrate handle ownership:
// each candidate is claimed by inserting the full document, and a duplicate
// key answer moves on to the next suffix. Concurrent onboardings with the
// same name never end up sharing a handle.
func (repo *ProfessionalMongoRepository) CreateWithUniqueSubdomain(ctx context.Context, professional *models.Professional, baseSubdomain string) (*models.Professional, error) {
	for attempt := 0; attempt < constvars.MaxSubdomainAttempts; attempt++ {
		professional.ID = primitive.NilObjectID
		professional.Subdomain = subdomainCandidate(baseSubdomain, attempt)

		result, err := repo.Collection.InsertOne(ctx, professional)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		professional.ID = result.InsertedID.(primitive.ObjectID)
		return professional, nil
	}
	return nil, exceptions.ErrSubdomainExhausted(nil)
}

func (repo *ProfessionalMongoRepository) FindAll(ctx context.Context) ([]models.Professional, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	professionals := make([]models.Professional, 0)
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return professionals, nil
}

func (repo *ProfessionalMongoRepository) FindByStatus(ctx context.Context, status string) ([]models.Professional, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	professionals := make([]models.Professional, 0)
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return professionals, nil
}

func (repo *ProfessionalMongoRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	objectID, err := primitive.ObjectIDFromHex(professionalID)
	if err != nil {
		return nil, nil
	}
	var professional models.Professional
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&professional)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &professional, nil
}

func (repo *ProfessionalMongoRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	var professional models.Professional
	err := repo.Collection.FindOne(ctx, bson.M{"subdomain": subdomain}).Decode(&professional)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &professional, nil
}

func (repo *ProfessionalMongoRepository) Update(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	filter := bson.M{"_id": professional.ID}
	update := bson.M{"$set": bson.M{
		"first_name":       professional.FirstName,
		"last_name":        professional.LastName,
		"email":            professional.Email,
		"phone":            professional.Phone,
		"speciality":       professional.Speciality,
		"experience_years": professional.ExperienceYears,
		"consulting_fees":  professional.ConsultingFee,
		"theme_color":      professional.ThemeColor,
		"status":           professional.Status,
		"profile_picture":  professional.ProfilePicture,
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return professional, nil
}
