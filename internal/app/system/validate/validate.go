// Package validate implements the registration form's validation policy.
//
// The policy is pure: it inspects a submitted payload and returns an ordered
// list of human-readable violations, one per missing or invalid field, in the
// same order the form presents the fields. It is stricter than the
// collection-level schema (which leaves phone, gender, and interests
// optional); the schema remains the authoritative second line of defense at
// write time.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Payload is a candidate registration submission. Fields are declared in the
// order violations must be reported. Boolean answers are pointers so an
// explicit false survives decoding; nil means the question was not answered.
type Payload struct {
	OrganisationName string `json:"organisationName" validate:"required" label:"Organization Name"`
	Categorisation   string `json:"categorisation" validate:"required,oneof=Customer Business 'Solar company' Financiers 'Development Agency'" label:"Category"`
	FirstName        string `json:"firstName" validate:"required" label:"First Name"`
	LastName         string `json:"lastName" validate:"required" label:"Last Name"`
	Email            string `json:"email" validate:"required,email" label:"Email"`
	Phone            string `json:"phone" validate:"required" label:"Phone"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female 'Prefer not to say'" label:"Gender"`
	Age              string `json:"age" validate:"required,oneof='18 to 23' '24 to 35' 'Above 35'" label:"Age"`
	Interests        string `json:"interests" validate:"required" label:"Interests field"`

	PermissionForFutureEvents *bool `json:"permissionForFutureEvents" validate:"required" label:"Permission for future events"`

	// Optional carry-over from the earlier schema revision.
	RegisteredOnMarketplace *bool `json:"registeredOnMarketplace"`
}

var v = validator.New()

// Check returns the ordered violation messages for p, or nil when p is
// well-formed. Whitespace-only text values count as missing; a nil boolean
// counts as missing while false is a valid explicit answer.
//
// Check judges the Normalized form of p, so a payload that passes must be
// normalized before it is stored — otherwise padded enum values the policy
// accepted would fail downstream checks.
func Check(p Payload) []string {
	p = Normalize(p)

	err := v.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid submission"}
	}

	t := reflect.TypeOf(p)
	var out []string
	for _, fe := range verrs {
		label := fe.StructField()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if l := f.Tag.Get("label"); l != "" {
				label = l
			}
		}
		out = append(out, message(label, fe.Tag()))
	}
	return out
}

func message(label, tag string) string {
	switch tag {
	case "required":
		return label + " is required"
	case "oneof":
		return label + " has an invalid value"
	case "email":
		return label + " is invalid"
	default:
		return label + " is invalid"
	}
}

// Normalize returns p with surrounding whitespace stripped from every text
// field, so whitespace-only values fail the required check and padded enum
// values match their canonical form.
func Normalize(p Payload) Payload {
	p.OrganisationName = strings.TrimSpace(p.OrganisationName)
	p.Categorisation = strings.TrimSpace(p.Categorisation)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Gender = strings.TrimSpace(p.Gender)
	p.Age = strings.TrimSpace(p.Age)
	p.Interests = strings.TrimSpace(p.Interests)
	return p
}
