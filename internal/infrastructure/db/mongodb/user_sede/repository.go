package user_sede

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/db/mongodb"
)

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) domain.Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionUsersSedes)}
}

func (r *Repository) find(ctx context.Context, filter bson.D) (domain.UserSedes, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []*userSedeDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make(domain.UserSedes, len(docs))
	for i, d := range docs {
		out[i] = fromDocument(d)
	}
	return out, nil
}

func (r *Repository) FindAll(ctx context.Context) (domain.UserSedes, error) {
	return r.find(ctx, bson.D{})
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) (domain.UserSedes, error) {
	return r.find(ctx, bson.D{{Key: "status", Value: string(status)}})
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.UserSede, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var d userSedeDocument
	if err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDocument(&d), nil
}

func (r *Repository) Save(ctx context.Context, us *domain.UserSede) (*domain.UserSede, error) {
	oid, err := mongodb.ObjectIDFor(us.ID)
	if err != nil {
		return nil, fmt.Errorf("save user sede: %w", err)
	}

	d := toDocument(oid, us)
	if _, err = r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, d, options.Replace().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("save user sede: %w", err)
	}

	return fromDocument(d), nil
}
