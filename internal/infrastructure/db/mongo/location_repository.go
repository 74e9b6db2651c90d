package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naimul9/sufiza-backend-render/internal/core/domain"
)

const locationsCollection = "locations"

type LocationRepository struct {
	coll *mongo.Collection
}

func NewLocationRepository(db *mongo.Database) *LocationRepository {
	return &LocationRepository{coll: db.Collection(locationsCollection)}
}

func (r *LocationRepository) FindAll(ctx context.Context) ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []*domain.Location
	for cursor.Next(ctx) {
		var l domain.Location
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, cursor.Err()
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*domain.Location, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Location
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("find location: %w", err)
	}
	return &l, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *location
	created.ID = primitive.NewObjectID().Hex()
	created.Divisions = withDivisionIDs(location.Divisions)

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	return &created, nil
}

func (r *LocationRepository) UpdateByID(ctx context.Context, id string, location *domain.Location) (*domain.Location, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"country":    location.Country,
		"divisions":  withDivisionIDs(location.Divisions),
		"updated_at": location.UpdatedAt,
	}

	var updated domain.Location
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("update location: %w", err)
	}
	return &updated, nil
}

func (r *LocationRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

// withDivisionIDs assigns an identifier to any division that lacks one, so
// the districts lookup can address divisions directly.
func withDivisionIDs(divisions []domain.Division) []domain.Division {
	out := make([]domain.Division, len(divisions))
	for i, d := range divisions {
		out[i] = d
		if out[i].ID == "" {
			out[i].ID = primitive.NewObjectID().Hex()
		}
	}
	return out
}
