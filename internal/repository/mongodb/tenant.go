package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const TenantCollection = "tenants"

type tenantDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Apartment string             `bson:"apartment"`
	Contact   string             `bson:"contact"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d tenantDocument) toDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Apartment: d.Apartment,
		Contact:   d.Contact,
		Status:    domain.TenantStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type TenantRepository struct {
	coll *mongo.Collection
}

func NewTenantRepository(db *mongo.Database) *TenantRepository {
	return &TenantRepository{coll: db.Collection(TenantCollection)}
}

func (r *TenantRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Tenant, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cur, err := r.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("could not list tenants: %w", err)
	}

	var docs []tenantDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("could not decode tenants: %w", err)
	}

	tenants := make([]*domain.Tenant, 0, len(docs))
	for _, d := range docs {
		tenants = append(tenants, d.toDomain())
	}
	return tenants, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	// Mongo keeps millisecond precision.
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := tenantDocument{
		ID:        primitive.NewObjectID(),
		Name:      t.Name,
		Apartment: t.Apartment,
		Contact:   t.Contact,
		Status:    string(t.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("could not insert tenant: %w", err)
	}

	t.ID = doc.ID.Hex()
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

func (r *TenantRepository) ToggleStatus(ctx context.Context, id string) (*domain.Tenant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	// Pipeline update so the flip happens server-side in one round trip.
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$status", string(domain.TenantActive)}}},
				string(domain.TenantInactive),
				string(domain.TenantActive),
			}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
	return r.findOneAndUpdate(ctx, oid, pipeline)
}

func (r *TenantRepository) Update(ctx context.Context, id string, patch domain.TenantPatch) (*domain.Tenant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Apartment != nil {
		set = append(set, bson.E{Key: "apartment", Value: *patch.Apartment})
	}
	if patch.Contact != nil {
		set = append(set, bson.E{Key: "contact", Value: *patch.Contact})
	}
	return r.findOneAndUpdate(ctx, oid, bson.D{{Key: "$set", Value: set}})
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("could not delete tenant %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TenantRepository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update any) (*domain.Tenant, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc tenantDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not update tenant %s: %w", oid.Hex(), err)
	}
	return doc.toDomain(), nil
}
