package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domain "vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/infrastructure/db/mongodb"
)

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) domain.Repository {
	return &Repository{coll: db.Collection(mongodb.CollectionUsers)}
}

func (r *Repository) find(ctx context.Context, filter bson.D) (domain.Users, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var docs []*userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	us := make(domain.Users, len(docs))
	for i, d := range docs {
		us[i] = fromDocument(d)
	}
	return us, nil
}

func (r *Repository) FindAll(ctx context.Context) (domain.Users, error) {
	return r.find(ctx, bson.D{})
}

func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) (domain.Users, error) {
	return r.find(ctx, bson.D{{Key: "status", Value: string(status)}})
}

func (r *Repository) FindByRole(ctx context.Context, role domain.Role) (domain.Users, error) {
	return r.find(ctx, bson.D{{Key: "role", Value: string(role)}})
}

func (r *Repository) FindByRoleAndStatus(ctx context.Context, role domain.Role, status domain.Status) (domain.Users, error) {
	return r.find(ctx, bson.D{
		{Key: "role", Value: string(role)},
		{Key: "status", Value: string(status)},
	})
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// not an id this store could have issued
		return nil, nil
	}

	var d userDocument
	if err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return fromDocument(&d), nil
}

func (r *Repository) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	oid, err := mongodb.ObjectIDFor(u.ID)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	d := toDocument(oid, u)
	if _, err = r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, d, options.Replace().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return fromDocument(d), nil
}

// SaveAll upserts the users in one ordered bulk write.
func (r *Repository) SaveAll(ctx context.Context, us domain.Users) (domain.Users, error) {
	if len(us) == 0 {
		return domain.Users{}, nil
	}

	docs := make([]*userDocument, len(us))
	models := make([]mongo.WriteModel, len(us))
	for i, u := range us {
		oid, err := mongodb.ObjectIDFor(u.ID)
		if err != nil {
			return nil, fmt.Errorf("save users: %w", err)
		}
		docs[i] = toDocument(oid, u)
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: "_id", Value: oid}}).
			SetReplacement(docs[i]).
			SetUpsert(true)
	}

	if _, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}

	out := make(domain.Users, len(docs))
	for i, d := range docs {
		out[i] = fromDocument(d)
	}
	return out, nil
}
