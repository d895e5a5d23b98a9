// internal/app/features/registration/types.go
package registration

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/solarfair/internal/app/system/validate"
	"github.com/dalemusser/solarfair/internal/domain/models"
)

// Response bodies. Every endpoint except export answers JSON; errors use
// the shared {"error": ...} shape from the errors feature.
type createResponse struct {
	Registration models.Registration `json:"registration"`
}

type listResponse struct {
	Registrations []models.Registration `json:"registrations"`
}

type viewResponse struct {
	Registration models.Registration `json:"registration"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

type searchResponse struct {
	Registrations []models.Registration `json:"registrations"`
	Total         int                   `json:"total"`
	TotalPages    int                   `json:"totalPages"`
	Page          int                   `json:"page"`
	Categories    []string              `json:"categories"`
}

// validationResponse carries the full ordered violation list so form errors
// stay actionable.
type validationResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations"`
}

// toModel maps a validated payload onto the stored record shape. id and
// createdAt are intentionally absent: the store assigns both.
func toModel(p validate.Payload) models.Registration {
	reg := models.Registration{
		OrganisationName: p.OrganisationName,
		Email:            p.Email,
		Phone:            p.Phone,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Gender:           p.Gender,
		Age:              p.Age,
		Categorisation:   p.Categorisation,
		Interests:        p.Interests,
	}
	if p.PermissionForFutureEvents != nil {
		reg.PermissionForFutureEvents = *p.PermissionForFutureEvents
	}
	if p.RegisteredOnMarketplace != nil {
		reg.RegisteredOnMarketplace = *p.RegisteredOnMarketplace
	}
	return reg
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
