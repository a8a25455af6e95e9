package view

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/metrics"
	"github.com/MKhiriev/go-maintenance-search/models"
)

// Load fetches the working set from the records API and shows it unfiltered.
//
// On failure both sets are emptied, the empty state shows the localised load
// error and a wrapped [ErrLoadFailed] is returned. The loading indicator is
// released on every path.
func (v *RecordSearchView) Load(ctx context.Context) error {
	v.setLoading(true)
	defer v.setLoading(false)

	resp, err := v.api.ListRecords(ctx, models.ResourceMaintenanceRecords, models.ListOptions{
		Limit: ListLimit,
		Sort:  ListSort,
	})
	if err != nil {
		v.logger.Err(err).
			Str("resource", models.ResourceMaintenanceRecords).
			Msg("error loading records")
		v.metrics.LoadDone(metrics.StatusFailed)

		v.mu.Lock()
		v.working = nil
		v.filtered = nil
		v.loaded = true
		v.errorMessage = v.printer.Sprintf(i18n.MsgLoadFailed)
		v.publishSizesLocked()
		v.mu.Unlock()

		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	records := v.addressable(ctx, resp.Data)
	v.metrics.LoadDone(metrics.StatusOK)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.working = records
	v.filtered = slices.Clone(records)
	v.criteria = models.Criteria{}
	v.loaded = true
	v.errorMessage = ""
	v.publishSizesLocked()

	return nil
}

// addressable drops records that row actions could not refer to and clears
// field values that cannot be shown.
func (v *RecordSearchView) addressable(ctx context.Context, records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for i, r := range records {
		if err := v.validator.Validate(ctx, r, "ID"); err != nil {
			v.logger.Warn().
				Err(err).
				Int("position", i).
				Str("resource", models.ResourceMaintenanceRecords).
				Msg("dropping record without id")
			continue
		}

		for _, issue := range r.DecodeIssues() {
			v.logger.Warn().
				Str("record_id", r.ID).
				Str("issue", issue).
				Msg("record field dropped while decoding")
		}

		if r.Mileage != nil {
			if err := v.validator.Validate(ctx, r, "Mileage"); err != nil {
				v.logger.Warn().
					Err(err).
					Str("record_id", r.ID).
					Float64("mileage", *r.Mileage).
					Msg("ignoring invalid mileage")
				r.Mileage = nil
			}
		}

		out = append(out, r)
	}
	return out
}

func (v *RecordSearchView) setLoading(loading bool) {
	v.mu.Lock()
	v.loading = loading
	v.mu.Unlock()
}
