package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/solarfair/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// ValidRegistration returns a registration with every required field filled,
// using n to keep the email unique across calls within a test.
func ValidRegistration(n int) models.Registration {
	return models.Registration{
		OrganisationName:          fmt.Sprintf("Sunrise Energy %d", n),
		Email:                     fmt.Sprintf("contact%d@sunrise.example", n),
		Phone:                     "+250788000000",
		FirstName:                 "Aline",
		LastName:                  "Uwase",
		Gender:                    "Female",
		Age:                       "24 to 35",
		Categorisation:            "Business",
		Interests:                 "Solar water heaters",
		PermissionForFutureEvents: true,
	}
}

// CreateRegistration inserts a registration directly into the collection,
// bypassing the store. createdAt controls list ordering in tests.
func (f *Fixtures) CreateRegistration(ctx context.Context, reg models.Registration, createdAt time.Time) models.Registration {
	f.t.Helper()

	if reg.ID.IsZero() {
		reg.ID = primitive.NewObjectID()
	}
	reg.CreatedAt = createdAt

	if _, err := f.db.Collection("registrations").InsertOne(ctx, reg); err != nil {
		f.t.Fatalf("failed to create test registration: %v", err)
	}

	return reg
}
