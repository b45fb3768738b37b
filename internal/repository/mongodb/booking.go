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

const BookingCollection = "bookings"

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Date      time.Time          `bson:"date"`
	House     string             `bson:"house"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(BookingCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	doc := bookingDocument{
		ID:        primitive.NewObjectID(),
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date,
		House:     b.House,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("could not insert booking: %w", err)
	}

	b.ID = doc.ID.Hex()
	b.CreatedAt = doc.CreatedAt
	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("could not list bookings: %w", err)
	}

	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("could not decode bookings: %w", err)
	}

	bookings := make([]*domain.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, &domain.Booking{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Email:     d.Email,
			Date:      d.Date.UTC(),
			House:     d.House,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return bookings, nil
}
