package listing_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dalemusser/solarfair/internal/app/system/listing"
	"github.com/dalemusser/solarfair/internal/domain/models"
)

func makeRecords(n int) []models.Registration {
	out := make([]models.Registration, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Registration{
			OrganisationName: fmt.Sprintf("Org %02d", i),
			FirstName:        fmt.Sprintf("First%02d", i),
			LastName:         fmt.Sprintf("Last%02d", i),
			Email:            fmt.Sprintf("org%02d@example.com", i),
			Categorisation:   "Business",
		})
	}
	return out
}

func TestApply_Pagination(t *testing.T) {
	records := makeRecords(25)

	tests := []struct {
		page        int
		wantVisible int
	}{
		{page: 1, wantVisible: 10},
		{page: 2, wantVisible: 10},
		{page: 3, wantVisible: 5},
		{page: 4, wantVisible: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page_%d", tt.page), func(t *testing.T) {
			res := listing.Apply(records, listing.Params{Page: tt.page, PageSize: 10})
			if len(res.Visible) != tt.wantVisible {
				t.Errorf("expected %d visible, got %d", tt.wantVisible, len(res.Visible))
			}
			if res.Total != 25 {
				t.Errorf("expected total 25, got %d", res.Total)
			}
			if res.TotalPages != 3 {
				t.Errorf("expected 3 total pages, got %d", res.TotalPages)
			}
		})
	}
}

func TestApply_PreservesOrderWithinPage(t *testing.T) {
	records := makeRecords(15)
	res := listing.Apply(records, listing.Params{Page: 2, PageSize: 10})

	if len(res.Visible) != 5 {
		t.Fatalf("expected 5 visible, got %d", len(res.Visible))
	}
	if res.Visible[0].OrganisationName != "Org 10" {
		t.Errorf("expected page 2 to start at Org 10, got %q", res.Visible[0].OrganisationName)
	}
}

func TestApply_ClampsAndDefaults(t *testing.T) {
	records := makeRecords(3)

	res := listing.Apply(records, listing.Params{Page: 0, PageSize: 0})
	if res.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", res.Page)
	}
	if len(res.Visible) != 3 {
		t.Errorf("expected all 3 visible with default page size, got %d", len(res.Visible))
	}

	res = listing.Apply(records, listing.Params{Page: -5, PageSize: -1})
	if res.Page != 1 || len(res.Visible) != 3 {
		t.Errorf("negative params should fall back to defaults, got page %d, %d visible", res.Page, len(res.Visible))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	res := listing.Apply(nil, listing.Params{Page: 1, PageSize: 10})
	if res.Total != 0 {
		t.Errorf("expected total 0, got %d", res.Total)
	}
	if res.TotalPages != 1 {
		t.Errorf("expected minimum 1 total page, got %d", res.TotalPages)
	}
	if len(res.Visible) != 0 {
		t.Errorf("expected no visible records, got %d", len(res.Visible))
	}
}

func TestApply_CategoryFilterBeforeSearch(t *testing.T) {
	records := []models.Registration{
		{OrganisationName: "Solar One", Email: "one@example.com", Categorisation: "Business"},
		{OrganisationName: "Solar Two", Email: "two@example.com", Categorisation: "Customer"},
		{OrganisationName: "Wind Farm", Email: "wind@example.com", Categorisation: "Business"},
	}

	res := listing.Apply(records, listing.Params{Search: "solar", Category: "Business", Page: 1, PageSize: 10})
	if res.Total != 1 {
		t.Fatalf("expected 1 match after category+search, got %d", res.Total)
	}
	if res.Visible[0].OrganisationName != "Solar One" {
		t.Errorf("expected Solar One, got %q", res.Visible[0].OrganisationName)
	}
}

func TestApply_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	records := []models.Registration{
		{OrganisationName: "GreenGrid", FirstName: "Peter", LastName: "Mwangi", Email: "peter@greengrid.example"},
		{OrganisationName: "Acme", FirstName: "Rita", LastName: "Greene", Email: "rita@acme.example"},
		{OrganisationName: "Other", FirstName: "Omar", LastName: "Diop", Email: "green.omar@other.example"},
		{OrganisationName: "Plain", FirstName: "Sam", LastName: "Okello", Email: "sam@plain.example"},
	}

	tests := []struct {
		search string
		want   int
	}{
		{search: "GREEN", want: 3}, // org name, last name, email
		{search: "mwangi", want: 1},
		{search: "rita", want: 1},
		{search: "nomatch", want: 0},
		{search: "", want: 4},
	}

	for _, tt := range tests {
		t.Run("search_"+tt.search, func(t *testing.T) {
			res := listing.Apply(records, listing.Params{Search: tt.search, Page: 1, PageSize: 10})
			if res.Total != tt.want {
				t.Errorf("search %q: expected %d matches, got %d", tt.search, tt.want, res.Total)
			}
		})
	}
}

func TestApply_TrimsSearchTerm(t *testing.T) {
	records := makeRecords(5)
	res := listing.Apply(records, listing.Params{Search: "  org 01  ", Page: 1, PageSize: 10})
	if res.Total != 1 {
		t.Errorf("expected 1 match for padded search term, got %d", res.Total)
	}
}

func TestCategories_DistinctFirstSeen(t *testing.T) {
	records := []models.Registration{
		{Categorisation: "Business"},
		{Categorisation: "Customer"},
		{Categorisation: "Business"},
		{Categorisation: ""},
		{Categorisation: "Financiers"},
		{Categorisation: "Customer"},
	}

	got := listing.Categories(records)
	want := []string{"Business", "Customer", "Financiers"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCategories_Empty(t *testing.T) {
	got := listing.Categories(nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no categories, got %v", got)
	}
}
