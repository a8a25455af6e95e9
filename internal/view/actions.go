package view

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/metrics"
	"github.com/MKhiriev/go-maintenance-search/models"
)

// OpenDetail returns the navigation to the detail view of record id.
func (v *RecordSearchView) OpenDetail(id string) models.Navigation {
	return models.Navigation{URL: withQuery(v.nav.DetailURL, "id", id)}
}

// Edit returns the navigation to the edit view of record id. Editing happens
// on the detail view.
func (v *RecordSearchView) Edit(id string) models.Navigation {
	return models.Navigation{URL: withQuery(v.nav.DetailURL, "id", id)}
}

// ExportPDF returns the navigation to the PDF export view of record id.
func (v *RecordSearchView) ExportPDF(id string) models.Navigation {
	return models.Navigation{URL: withQuery(v.nav.PDFURL, "id", id)}
}

// OpenCustomerPage returns the navigation to the customer page identified by
// token. The page opens in a new browsing context.
func (v *RecordSearchView) OpenCustomerPage(token string) models.Navigation {
	return models.Navigation{URL: withQuery(v.nav.CustomerURL, "token", token), NewContext: true}
}

// withQuery appends key=value to base, URL-encoding the value.
func withQuery(base, key, value string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + url.Values{key: []string{value}}.Encode()
}

// Delete removes record id after the user confirmed it through c.
//
// A declined or failed confirmation changes nothing and returns
// [ErrDeleteDeclined] without contacting the API. An API failure pushes a
// failure toast, keeps both sets intact and returns a wrapped
// [ErrDeleteFailed]. On success the record disappears from both sets and a
// success toast is pushed.
func (v *RecordSearchView) Delete(ctx context.Context, id string, c Confirmer) error {
	ok, err := c.Confirm(ctx, v.printer.Sprintf(i18n.MsgConfirmDelete))
	if err != nil || !ok {
		v.metrics.DeleteDone(metrics.StatusDeclined)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteDeclined, err)
		}
		return ErrDeleteDeclined
	}

	if err = v.api.DeleteRecord(ctx, models.ResourceMaintenanceRecords, id); err != nil {
		v.logger.Err(err).
			Str("resource", models.ResourceMaintenanceRecords).
			Str("id", id).
			Msg("error deleting record")
		v.metrics.DeleteDone(metrics.StatusFailed)

		v.mu.Lock()
		v.pushToastLocked(models.ToastFailure, v.printer.Sprintf(i18n.MsgDeleteFailed))
		v.mu.Unlock()

		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	v.metrics.DeleteDone(metrics.StatusOK)

	v.mu.Lock()
	defer v.mu.Unlock()

	byID := func(r models.Record) bool { return r.ID == id }
	v.working = slices.DeleteFunc(v.working, byID)
	v.filtered = slices.DeleteFunc(v.filtered, byID)
	v.pushToastLocked(models.ToastSuccess, v.printer.Sprintf(i18n.MsgDeleteSucceeded))
	v.publishSizesLocked()

	return nil
}
