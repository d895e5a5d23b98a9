// internal/domain/models/registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration is a single Solar Fair registration record.
//
// NOTE:
//   - ID and CreatedAt are assigned by the store on insert; values supplied
//     by a client are discarded.
//   - Email is unique across the collection (enforced by a unique index on
//     the registrations collection, see system/indexes).
type Registration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganisationName string             `bson:"organisation_name" json:"organisationName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone,omitempty" json:"phone,omitempty"`
	FirstName        string             `bson:"first_name" json:"firstName"`
	LastName         string             `bson:"last_name" json:"lastName"`
	Gender           string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Age              string             `bson:"age" json:"age"`
	Categorisation   string             `bson:"categorisation" json:"categorisation"`

	// RegisteredOnMarketplace survives from an earlier schema revision; it is
	// optional on new writes but still exported (Yes/No) for old records.
	RegisteredOnMarketplace bool `bson:"registered_on_marketplace,omitempty" json:"registeredOnMarketplace,omitempty"`

	Interests                 string `bson:"interests,omitempty" json:"interests,omitempty"`
	PermissionForFutureEvents bool   `bson:"permission_for_future_events" json:"permissionForFutureEvents"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Genders is the canonical set of accepted gender values.
var Genders = []string{"Male", "Female", "Prefer not to say"}

// AgeRanges is the canonical set of accepted age-range values.
var AgeRanges = []string{"18 to 23", "24 to 35", "Above 35"}

// Categorisations is the canonical set of accepted categorisation values.
var Categorisations = []string{"Customer", "Business", "Solar company", "Financiers", "Development Agency"}

// DefaultAgeRange is the value the migration backfills onto records created
// before the age field became required.
const DefaultAgeRange = "18 to 23"

// IsValidGender reports whether g is one of the accepted gender values.
func IsValidGender(g string) bool { return contains(Genders, g) }

// IsValidAgeRange reports whether a is one of the accepted age-range values.
func IsValidAgeRange(a string) bool { return contains(AgeRanges, a) }

// IsValidCategorisation reports whether c is one of the accepted categorisation values.
func IsValidCategorisation(c string) bool { return contains(Categorisations, c) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
