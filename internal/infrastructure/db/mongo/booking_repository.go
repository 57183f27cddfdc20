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

	"github.com/tablebook/reservation-system/internal/core/domain"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

type mongoBooking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"userId"`
	Date           time.Time          `bson:"date"`
	Time           string             `bson:"time"`
	NumberOfPeople int                `bson:"numberOfPeople"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             mb.ID.Hex(),
		UserID:         mb.UserID,
		Date:           mb.Date.UTC(),
		Time:           mb.Time,
		NumberOfPeople: mb.NumberOfPeople,
	}
}

// Insert persists a new booking document and returns it with the assigned id.
func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		UserID:         booking.UserID,
		Date:           booking.Date,
		Time:           booking.Time,
		NumberOfPeople: booking.NumberOfPeople,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.findMany(ctx, bson.M{"userId": userID})
}

// FindAll returns every booking, or only those on the given calendar date
// when date is non-nil. Dates are stored normalized to midnight UTC, so the
// filter is plain equality.
func (r *BookingRepository) FindAll(ctx context.Context, date *time.Time) ([]domain.Booking, error) {
	filter := bson.M{}
	if date != nil {
		filter["date"] = *date
	}
	return r.findMany(ctx, filter)
}

func (r *BookingRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []domain.Booking
	for cursor.Next(ctx) {
		var mb mongoBooking
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, *mb.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

// Update replaces the mutable fields of the booking with the given id and
// returns the updated document. The userId field is never part of the update.
func (r *BookingRepository) Update(ctx context.Context, id string, date time.Time, timeSlot string, numberOfPeople int) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":           date,
		"time":           timeSlot,
		"numberOfPeople": numberOfPeople,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mb mongoBooking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return mb.toDomain(), nil
}

// Delete removes the booking with the given id. A zero delete count is not
// an error; the operation is a no-op for ids that do not exist.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids cannot match any document.
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// EnsureIndexes creates the query-path indexes on the bookings collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
