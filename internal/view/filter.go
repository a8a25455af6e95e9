package view

import (
	"strings"

	"github.com/MKhiriev/go-maintenance-search/models"
	"golang.org/x/text/cases"
)

// Filter returns the records matching every non-blank predicate of criteria,
// in their original order. The three text predicates are case-insensitive
// substring matches; the status predicate is an exact match. records is not
// modified and the result never aliases it.
func Filter(records []models.Record, criteria models.Criteria) []models.Record {
	c := criteria.Normalize()
	fold := cases.Fold()

	name := fold.String(c.ClientName)
	registration := fold.String(c.Registration)
	chassis := fold.String(c.Chassis)

	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if !containsFolded(fold, r.ClientName, name) {
			continue
		}
		if !containsFolded(fold, r.RegistrationNumber, registration) {
			continue
		}
		if !containsFolded(fold, r.ChassisNumber, chassis) {
			continue
		}
		if c.Status != models.StatusAny && r.Status != c.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

// containsFolded reports whether needle, already case folded, occurs in the
// folded haystack. An empty needle always matches.
func containsFolded(fold cases.Caser, haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(haystack), needle)
}
