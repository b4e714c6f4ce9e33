package waitlist

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Subscriber lifecycle states. New signups start as StatusActive; the later
// states are reserved for confirmation and unsubscribe flows.
const (
	StatusActive       = "active"
	StatusConfirmed    = "confirmed"
	StatusUnsubscribed = "unsubscribed"
)

// ErrDuplicateEmail is returned by Insert when the email already has a
// record. The unique index makes this check race-free even under concurrent
// signups for the same address.
var ErrDuplicateEmail = errors.New("email already on waitlist")

// Record is a stored waitlist signup. Email is always lowercase.
type Record struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Email       string        `bson:"email"`
	Status      string        `bson:"status"`
	JoinedAt    time.Time     `bson:"joinedAt"`
	IPAddress   string        `bson:"ipAddress,omitempty"`
	UTMSource   string        `bson:"utmSource,omitempty"`
	UTMMedium   string        `bson:"utmMedium,omitempty"`
	UTMCampaign string        `bson:"utmCampaign,omitempty"`
}

// Repository is the waitlist persistence boundary.
type Repository interface {
	// FindByEmail returns the record for the email, or (nil, nil) when no
	// record exists.
	FindByEmail(ctx context.Context, email string) (*Record, error)
	// Insert stores a new record, returning ErrDuplicateEmail when the
	// unique index rejects it.
	Insert(ctx context.Context, rec Record) error
	// EnsureIndexes creates the indexes the repository relies on.
	EnsureIndexes(ctx context.Context) error
	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewRepository creates a MongoDB-backed repository over the given collection.
func NewRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*Record, error) {
	var rec Record
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *mongoRepository) Insert(ctx context.Context, rec Record) error {
	_, err := r.coll.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
