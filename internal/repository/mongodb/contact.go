package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/fekalegi/property-management-system/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ContactCollection = "contacts"

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(ContactCollection)}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	doc := contactDocument{
		ID:        primitive.NewObjectID(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("could not insert contact: %w", err)
	}

	c.ID = doc.ID.Hex()
	c.CreatedAt = doc.CreatedAt
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("could not list contacts: %w", err)
	}

	var docs []contactDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("could not decode contacts: %w", err)
	}

	contacts := make([]*domain.Contact, 0, len(docs))
	for _, d := range docs {
		contacts = append(contacts, &domain.Contact{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Email:     d.Email,
			Phone:     d.Phone,
			Message:   d.Message,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return contacts, nil
}
