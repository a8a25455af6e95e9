package render

import (
	"math"
	"strconv"

	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/models"
	"golang.org/x/text/message"
)

// Placeholder is shown for absent values.
const Placeholder = "-"

// MaxShownTags is the number of tags rendered before the overflow marker.
const MaxShownTags = 2

var dateLayouts = map[string]string{
	config.LocaleJapanese: "2006/01/02",
	config.LocaleEnglish:  "01/02/2006",
}

// FormatDate renders d in the locale's short date form, or [Placeholder]
// when d is absent.
func FormatDate(d *models.Date, locale string) string {
	if d == nil || d.IsZero() {
		return Placeholder
	}

	return d.Format(dateLayouts[i18n.Tag(locale).String()])
}

// FormatMileage renders a kilometre count rounded to a locale-grouped
// integer, or [Placeholder] when mileage is absent. Zero is a real reading
// and is rendered.
func FormatMileage(p *message.Printer, mileage *float64) string {
	if mileage == nil || math.IsNaN(*mileage) || math.IsInf(*mileage, 0) {
		return Placeholder
	}
	return p.Sprintf(i18n.MsgMileage, int64(math.Round(*mileage)))
}

// Badge is a rendered record status.
type Badge struct {
	Label string
	Class string
}

var statusLabels = map[models.Status]string{
	models.StatusDraft:     i18n.MsgStatusDraft,
	models.StatusCompleted: i18n.MsgStatusCompleted,
	models.StatusArchived:  i18n.MsgStatusArchived,
}

// StatusLabel returns the localised name of s. Unknown values are returned
// verbatim; the blank value is the "any status" option.
func StatusLabel(p *message.Printer, s models.Status) string {
	if s == models.StatusAny {
		return p.Sprintf(i18n.MsgStatusAny)
	}
	if key, ok := statusLabels[s]; ok {
		return p.Sprintf(key)
	}
	return string(s)
}

// StatusBadge returns the badge of a record status. The CSS class always
// carries the raw value.
func StatusBadge(p *message.Printer, s models.Status) Badge {
	label := string(s)
	if key, ok := statusLabels[s]; ok {
		label = p.Sprintf(key)
	}
	return Badge{Label: label, Class: "status-" + string(s)}
}

// SplitTags returns the tags to show and the overflow marker ("+N"), which is
// empty when every tag fits.
func SplitTags(tags models.Tags) ([]string, string) {
	if len(tags) <= MaxShownTags {
		return append([]string(nil), tags...), ""
	}
	shown := append([]string(nil), tags[:MaxShownTags]...)
	return shown, "+" + strconv.Itoa(len(tags)-MaxShownTags)
}
