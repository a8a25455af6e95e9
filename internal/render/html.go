package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/models"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HTML writes page as a complete HTML document. Every record field is
// escaped by html/template; only action icons are trusted markup.
func HTML(w io.Writer, page Page) error {
	if err := templates.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// ConfirmPage is the delete confirmation step of the HTML front end.
type ConfirmPage struct {
	Lang    string
	Title   string
	Message string
	Labels  Labels
	Row     Row
	// Action is the form target receiving confirm=yes or confirm=no.
	Action string
	Yes    string
	No     string
}

// NewConfirmPage builds the confirmation step for deleting r.
func NewConfirmPage(r models.Record, p *message.Printer, locale, action string) ConfirmPage {
	return ConfirmPage{
		Lang:    i18n.Tag(locale).String(),
		Title:   p.Sprintf(i18n.MsgTitle),
		Message: p.Sprintf(i18n.MsgConfirmDelete),
		Labels:  labels(p),
		Row:     NewRow(r, p, locale, nil),
		Action:  action,
		Yes:     p.Sprintf(i18n.MsgConfirmYes),
		No:      p.Sprintf(i18n.MsgConfirmNo),
	}
}

// ConfirmHTML writes the delete confirmation step.
func ConfirmHTML(w io.Writer, page ConfirmPage) error {
	if err := templates.ExecuteTemplate(w, "confirm", page); err != nil {
		return fmt.Errorf("render confirm page: %w", err)
	}
	return nil
}
