package registrationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/solarfair/internal/app/system/htmlsanitize"
	"github.com/dalemusser/solarfair/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registrations")}
}

var (
	// ErrDuplicateEmail is returned when a registration with this email
	// already exists. The unique index on email makes this authoritative:
	// even if two submissions race past the pre-insert lookup, only one
	// insert succeeds.
	ErrDuplicateEmail = errors.New("a registration with this email already exists")

	// ErrNotFound is returned for lookups and deletes that target an id
	// with no matching record.
	ErrNotFound = errors.New("registration not found")

	errBadGender   = errors.New(`gender must be "Male"|"Female"|"Prefer not to say"`)
	errBadAge      = errors.New(`age must be "18 to 23"|"24 to 35"|"Above 35"`)
	errBadCategory = errors.New(`categorisation must be "Customer"|"Business"|"Solar company"|"Financiers"|"Development Agency"`)
)

// Create inserts a new registration after sanitizing its text fields.
// ID and CreatedAt are always assigned here; anything the caller put in
// those fields is discarded.
func (s *Store) Create(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.ID = primitive.NewObjectID()
	reg.OrganisationName = htmlsanitize.Strip(reg.OrganisationName)
	reg.Email = htmlsanitize.Strip(reg.Email)
	reg.Phone = htmlsanitize.Strip(reg.Phone)
	reg.FirstName = htmlsanitize.Strip(reg.FirstName)
	reg.LastName = htmlsanitize.Strip(reg.LastName)
	reg.Interests = htmlsanitize.Strip(reg.Interests)

	// Enum checks mirror the collection validator so writes fail the same
	// way on servers where collMod is unsupported.
	if reg.Gender != "" && !models.IsValidGender(reg.Gender) {
		return models.Registration{}, errBadGender
	}
	if !models.IsValidAgeRange(reg.Age) {
		return models.Registration{}, errBadAge
	}
	if !models.IsValidCategorisation(reg.Categorisation) {
		return models.Registration{}, errBadCategory
	}

	reg.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, reg); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Registration{}, ErrDuplicateEmail
		}
		return models.Registration{}, err
	}
	return reg, nil
}

// GetByID loads a registration by its hex id. A malformed id is reported as
// ErrNotFound, the same as a well-formed id with no matching record.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var reg models.Registration
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&reg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// ListAll returns every registration, newest first. The created_at ordering
// is a contract the admin table and the exports rely on; _id breaks ties
// between records created in the same instant.
func (s *Store) ListAll(ctx context.Context) ([]models.Registration, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	regs := []models.Registration{}
	if err := cur.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// DeleteByID removes a registration permanently and returns the deleted
// record. Returns ErrNotFound when no record matches or the id is malformed.
func (s *Store) DeleteByID(ctx context.Context, id string) (*models.Registration, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var reg models.Registration
	if err := s.c.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&reg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

// EmailExists reports whether a registration with exactly this email exists
// (case-sensitive match). Used as a pre-insert check so most duplicates get
// a friendly conflict before touching the unique index.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// BackfillAge sets the default age range on records created before the age
// field became required. Returns the number of records updated. Run by
// cmd/migrate, never at request time.
func (s *Store) BackfillAge(ctx context.Context, defaultAge string) (int64, error) {
	res, err := s.c.UpdateMany(ctx,
		bson.M{"age": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"age": defaultAge}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
