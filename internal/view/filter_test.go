package view

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/MKhiriev/go-maintenance-search/models"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: "r1", ClientName: "Tanaka Taro", RegistrationNumber: "品川 300 あ 12-34", ChassisNumber: "ZVW30-1234567", Status: models.StatusCompleted},
		{ID: "r2", ClientName: "Suzuki Hanako", RegistrationNumber: "横浜 500 さ 56-78", ChassisNumber: "NHP10-7654321", Status: models.StatusDraft},
		{ID: "r3", ClientName: "tanaka jiro", RegistrationNumber: "品川 300 い 99-01", ChassisNumber: "zvw30-0000001", Status: models.StatusArchived},
		{ID: "r4", ClientName: "", RegistrationNumber: "", ChassisNumber: "", Status: "on_hold"},
	}
}

func ids(records []models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.Criteria
		want     []string
	}{
		{name: "blank returns everything", criteria: models.Criteria{}, want: []string{"r1", "r2", "r3", "r4"}},
		{name: "whitespace only is blank", criteria: models.Criteria{ClientName: "  ", Chassis: "\t"}, want: []string{"r1", "r2", "r3", "r4"}},
		{name: "name is case-insensitive", criteria: models.Criteria{ClientName: "TANAKA"}, want: []string{"r1", "r3"}},
		{name: "name is trimmed", criteria: models.Criteria{ClientName: "  suzuki "}, want: []string{"r2"}},
		{name: "registration substring", criteria: models.Criteria{Registration: "品川"}, want: []string{"r1", "r3"}},
		{name: "chassis case-insensitive", criteria: models.Criteria{Chassis: "ZVW30"}, want: []string{"r1", "r3"}},
		{name: "status exact", criteria: models.Criteria{Status: models.StatusDraft}, want: []string{"r2"}},
		{name: "status is not substring", criteria: models.Criteria{Status: "complete"}, want: []string{}},
		{name: "unknown status on record matches verbatim", criteria: models.Criteria{Status: "on_hold"}, want: []string{"r4"}},
		{name: "predicates are ANDed", criteria: models.Criteria{ClientName: "tanaka", Status: models.StatusArchived}, want: []string{"r3"}},
		{name: "no match", criteria: models.Criteria{ClientName: "Sato"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(sampleRecords(), tt.criteria)))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := slices.Clone(records)

	got := Filter(records, models.Criteria{ClientName: "tanaka"})
	got[0].ClientName = "changed"

	assert.Equal(t, before, records)
}

// =============================================================================
// Properties
// =============================================================================

func recordGenerator() *rapid.Generator[models.Record] {
	return rapid.Custom(func(t *rapid.T) models.Record {
		return models.Record{
			ClientName:         rapid.StringMatching(`[A-Za-z ]{0,8}`).Draw(t, "client_name"),
			RegistrationNumber: rapid.StringMatching(`[A-Za-z0-9-]{0,8}`).Draw(t, "registration_number"),
			ChassisNumber:      rapid.StringMatching(`[A-Za-z0-9-]{0,8}`).Draw(t, "chassis_number"),
			Status:             rapid.SampledFrom([]models.Status{models.StatusDraft, models.StatusCompleted, models.StatusArchived, "on_hold"}).Draw(t, "status"),
		}
	})
}

func recordsGenerator() *rapid.Generator[[]models.Record] {
	return rapid.Custom(func(t *rapid.T) []models.Record {
		records := rapid.SliceOfN(recordGenerator(), 0, 30).Draw(t, "records")
		for i := range records {
			records[i].ID = fmt.Sprintf("r%d", i)
		}
		return records
	})
}

func criteriaGenerator() *rapid.Generator[models.Criteria] {
	return rapid.Custom(func(t *rapid.T) models.Criteria {
		return models.Criteria{
			ClientName:   rapid.StringMatching(`[A-Za-z]{0,2}`).Draw(t, "name"),
			Registration: rapid.StringMatching(`[A-Za-z0-9]{0,1}`).Draw(t, "registration"),
			Chassis:      rapid.StringMatching(`[A-Za-z0-9]{0,1}`).Draw(t, "chassis"),
			Status:       rapid.SampledFrom(models.Statuses).Draw(t, "status"),
		}
	})
}

func TestFilter_SubsequenceInOrder_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")
		criteria := criteriaGenerator().Draw(t, "criteria")

		got := Filter(records, criteria)

		next := 0
		for _, r := range got {
			idx := slices.IndexFunc(records[next:], func(c models.Record) bool { return c.ID == r.ID })
			if idx < 0 {
				t.Fatalf("record %q is not an in-order element of the input", r.ID)
			}
			next += idx + 1
		}
	})
}

func TestFilter_Idempotent_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")
		criteria := criteriaGenerator().Draw(t, "criteria")

		once := Filter(records, criteria)
		twice := Filter(once, criteria)

		if !slices.Equal(ids(once), ids(twice)) {
			t.Fatalf("filter is not idempotent: %v vs %v", ids(once), ids(twice))
		}
	})
}

func TestFilter_CaseInsensitive_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")
		criteria := criteriaGenerator().Draw(t, "criteria")

		upper := criteria
		upper.ClientName = strings.ToUpper(criteria.ClientName)
		upper.Registration = strings.ToUpper(criteria.Registration)
		upper.Chassis = strings.ToUpper(criteria.Chassis)

		lower := criteria
		lower.ClientName = strings.ToLower(criteria.ClientName)
		lower.Registration = strings.ToLower(criteria.Registration)
		lower.Chassis = strings.ToLower(criteria.Chassis)

		if !slices.Equal(ids(Filter(records, upper)), ids(Filter(records, lower))) {
			t.Fatalf("case changes the result for %+v", criteria)
		}
	})
}

func TestFilter_ExactStatus_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")
		status := rapid.SampledFrom([]models.Status{models.StatusDraft, models.StatusCompleted, models.StatusArchived}).Draw(t, "status")

		got := Filter(records, models.Criteria{Status: status})

		want := 0
		for _, r := range records {
			if r.Status == status {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("expected %d records with status %q, got %d", want, status, len(got))
		}
		for _, r := range got {
			if r.Status != status {
				t.Fatalf("record %q has status %q, want %q", r.ID, r.Status, status)
			}
		}
	})
}

func TestFilter_BlankCriteriaKeepsEverything_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := recordsGenerator().Draw(t, "records")

		if !slices.Equal(ids(records), ids(Filter(records, models.Criteria{}))) {
			t.Fatal("blank criteria dropped records")
		}
	})
}
