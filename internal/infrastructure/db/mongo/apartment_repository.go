package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

const apartmentsCollection = "apartments"

type ApartmentRepository struct {
	coll *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) *ApartmentRepository {
	return &ApartmentRepository{coll: db.Collection(apartmentsCollection)}
}

// buildFilter translates a domain filter into a bson query. String facets
// match case-insensitively; division and district only narrow the query when
// the country facet is present, mirroring the storefront's cascading search.
func buildFilter(f domain.ApartmentFilter) bson.M {
	query := bson.M{}

	if f.Country != "" {
		query["address.country"] = regexFold(f.Country)
		if f.Division != "" {
			query["address.division_or_thana"] = regexFold(f.Division)
		}
		if f.District != "" {
			query["address.district"] = regexFold(f.District)
		}
	}
	if f.Objective != "" {
		query["objective"] = regexFold(f.Objective)
	}
	if f.PropertyType != "" {
		query["property_type"] = regexFold(f.PropertyType)
	}
	if f.HasSizeRange {
		query["apartment_details.size_sqft"] = bson.M{"$gte": f.SizeMin, "$lte": f.SizeMax}
	}

	return query
}

func regexFold(v string) bson.M {
	return bson.M{"$regex": v, "$options": "i"}
}

func (r *ApartmentRepository) Find(ctx context.Context, filter domain.ApartmentFilter) ([]*domain.Apartment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count apartments: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(filter.Page * filter.Size)).
		SetLimit(int64(filter.Size))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find apartments: %w", err)
	}
	defer cursor.Close(ctx)

	var apartments []*domain.Apartment
	for cursor.Next(ctx) {
		var a domain.Apartment
		if err := cursor.Decode(&a); err != nil {
			return nil, 0, fmt.Errorf("decode apartment: %w", err)
		}
		apartments = append(apartments, &a)
	}
	return apartments, total, cursor.Err()
}

func (r *ApartmentRepository) FindByLocation(ctx context.Context, location string) (*domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"address.division_or_thana": location},
		bson.M{"address.country": location},
	}}

	var a domain.Apartment
	if err := r.coll.FindOne(ctx, query).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("find apartment by location: %w", err)
	}
	return &a, nil
}

func (r *ApartmentRepository) FindByID(ctx context.Context, id string) (*domain.Apartment, error) {
	// Listings keep their ObjectID as a hex string _id; the hex check still
	// distinguishes a malformed identifier from a missing document.
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Apartment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("find apartment: %w", err)
	}
	return &a, nil
}

func (r *ApartmentRepository) Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *apartment
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert apartment: %w", err)
	}
	return &created, nil
}

func (r *ApartmentRepository) UpdateByID(ctx context.Context, id string, apartment *domain.Apartment) (*domain.Apartment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"address":           apartment.Address,
		"apartment_details": apartment.Details,
		"building_details":  apartment.Building,
		"price":             apartment.Price,
		"orientation":       apartment.Orientation,
		"completion_status": apartment.Completion,
		"property_type":     apartment.PropertyType,
		"objective":         apartment.Objective,
		"updated_at":        apartment.UpdatedAt,
	}

	var updated domain.Apartment
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("update apartment: %w", err)
	}
	return &updated, nil
}

func (r *ApartmentRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete apartment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApartmentNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the search facets.
func (r *ApartmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "address.country", Value: 1}}},
		{Keys: bson.D{{Key: "address.division_or_thana", Value: 1}}},
		{Keys: bson.D{{Key: "objective", Value: 1}}},
		{Keys: bson.D{{Key: "apartment_details.size_sqft", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
