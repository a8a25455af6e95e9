// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns a [view.State] snapshot into a front-end neutral
// [Page] and writes it as HTML.
//
// The terminal front end consumes the same [Page] and draws it with
// lipgloss; only hrefs differ between the two, which is why links are
// obtained through [Routes].
package render

import (
	"html/template"

	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/view"
	"github.com/MKhiriev/go-maintenance-search/models"
	"golang.org/x/text/message"
)

// Mode selects which of the three mutually exclusive areas is displayed.
type Mode int

const (
	ModeLoading Mode = iota
	ModeEmpty
	ModeResults
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeEmpty:
		return "empty"
	default:
		return "results"
	}
}

// ActionKind identifies a row action.
type ActionKind string

const (
	ActionView     ActionKind = "view"
	ActionEdit     ActionKind = "edit"
	ActionPDF      ActionKind = "pdf"
	ActionCustomer ActionKind = "customer"
	ActionDelete   ActionKind = "delete"
)

// Routes builds front-end specific links for row actions.
type Routes interface {
	Detail(id string) string
	Edit(id string) string
	PDF(id string) string
	Customer(token string) string
	Delete(id string) string
}

type noRoutes struct{}

func (noRoutes) Detail(string) string   { return "" }
func (noRoutes) Edit(string) string     { return "" }
func (noRoutes) PDF(string) string      { return "" }
func (noRoutes) Customer(string) string { return "" }
func (noRoutes) Delete(string) string   { return "" }

// Action is one button of a row's action cell.
type Action struct {
	Kind  ActionKind
	Label string
	Href  string
	// Icon is trusted glyph markup; it never contains record data.
	Icon template.HTML
	// NewContext opens Href in a new browsing context.
	NewContext bool
	// Danger marks destructive actions.
	Danger bool
}

// Row is one rendered record.
type Row struct {
	ID           string
	Href         string
	Date         string
	ClientName   string
	Registration string
	CarModel     string
	Mileage      string
	Status       Badge
	Tags         []string
	TagOverflow  string
	Actions      []Action
	// Token is the customer page access token, empty when the customer
	// action is not offered.
	Token string
}

// StatusOption is one entry of the status filter.
type StatusOption struct {
	Value    models.Status
	Label    string
	Selected bool
}

// Labels are the localised static texts of the page.
type Labels struct {
	Title         string
	FilterClient  string
	FilterReg     string
	FilterChassis string
	FilterStatus  string
	Search        string
	Clear         string
	Loading       string
	ColumnDate    string
	ColumnClient  string
	ColumnReg     string
	ColumnModel   string
	ColumnMileage string
	ColumnStatus  string
	ColumnTags    string
	ColumnActions string
}

// Page is everything a front end needs to draw the search view.
type Page struct {
	Lang          string
	Mode          Mode
	EmptyMessage  string
	Count         string
	Criteria      models.Criteria
	StatusOptions []StatusOption
	Labels        Labels
	Rows          []Row
	Toasts        []models.Toast
}

// IsLoading, IsEmpty and IsResults are template helpers.
func (p Page) IsLoading() bool { return p.Mode == ModeLoading }
func (p Page) IsEmpty() bool   { return p.Mode == ModeEmpty }
func (p Page) IsResults() bool { return p.Mode == ModeResults }

var icons = map[ActionKind]template.HTML{
	ActionView:     `<i class="fas fa-eye"></i>`,
	ActionEdit:     `<i class="fas fa-edit"></i>`,
	ActionPDF:      `<i class="fas fa-file-pdf"></i>`,
	ActionCustomer: `<i class="fas fa-external-link-alt"></i>`,
	ActionDelete:   `<i class="fas fa-trash"></i>`,
}

// NewPage builds the page for st. routes may be nil, in which case every
// href is empty.
func NewPage(st view.State, p *message.Printer, locale string, routes Routes) Page {
	if routes == nil {
		routes = noRoutes{}
	}

	page := Page{
		Lang:          i18n.Tag(locale).String(),
		Count:         p.Sprintf(i18n.MsgResultCount, len(st.Records)),
		Criteria:      st.Criteria,
		StatusOptions: statusOptions(p, st.Criteria.Status),
		Labels:        labels(p),
		Toasts:        st.Toasts,
		EmptyMessage:  st.ErrorMessage,
	}
	if page.EmptyMessage == "" {
		page.EmptyMessage = p.Sprintf(i18n.MsgNoResults)
	}

	switch {
	case st.Loading || !st.Loaded:
		page.Mode = ModeLoading
	case len(st.Records) == 0:
		page.Mode = ModeEmpty
	default:
		page.Mode = ModeResults
	}

	page.Rows = make([]Row, 0, len(st.Records))
	for _, r := range st.Records {
		page.Rows = append(page.Rows, NewRow(r, p, locale, routes))
	}

	return page
}

// NewRow renders a single record.
func NewRow(r models.Record, p *message.Printer, locale string, routes Routes) Row {
	if routes == nil {
		routes = noRoutes{}
	}

	tags, overflow := SplitTags(r.Tags)
	row := Row{
		ID:           r.ID,
		Href:         routes.Detail(r.ID),
		Date:         FormatDate(r.InspectionDate, locale),
		ClientName:   r.ClientName,
		Registration: r.RegistrationNumber,
		CarModel:     r.CarModel,
		Mileage:      FormatMileage(p, r.Mileage),
		Status:       StatusBadge(p, r.Status),
		Tags:         tags,
		TagOverflow:  overflow,
	}

	row.Actions = append(row.Actions,
		newAction(ActionView, p.Sprintf(i18n.MsgActionView), routes.Detail(r.ID)),
		newAction(ActionEdit, p.Sprintf(i18n.MsgActionEdit), routes.Edit(r.ID)),
	)
	if r.Status == models.StatusCompleted {
		row.Actions = append(row.Actions, newAction(ActionPDF, p.Sprintf(i18n.MsgActionPDF), routes.PDF(r.ID)))
		if r.AccessToken != "" {
			customer := newAction(ActionCustomer, p.Sprintf(i18n.MsgActionCustomer), routes.Customer(r.AccessToken))
			customer.NewContext = true
			row.Actions = append(row.Actions, customer)
			row.Token = r.AccessToken
		}
	}
	deleteAction := newAction(ActionDelete, p.Sprintf(i18n.MsgActionDelete), routes.Delete(r.ID))
	deleteAction.Danger = true
	row.Actions = append(row.Actions, deleteAction)

	return row
}

// HasAction reports whether the row offers kind.
func (r Row) HasAction(kind ActionKind) bool {
	for _, a := range r.Actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func newAction(kind ActionKind, label, href string) Action {
	return Action{Kind: kind, Label: label, Href: href, Icon: icons[kind]}
}

func statusOptions(p *message.Printer, selected models.Status) []StatusOption {
	out := make([]StatusOption, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		out = append(out, StatusOption{Value: s, Label: StatusLabel(p, s), Selected: s == selected})
	}
	return out
}

func labels(p *message.Printer) Labels {
	return Labels{
		Title:         p.Sprintf(i18n.MsgTitle),
		FilterClient:  p.Sprintf(i18n.MsgColumnClient),
		FilterReg:     p.Sprintf(i18n.MsgColumnReg),
		FilterChassis: p.Sprintf(i18n.MsgFilterChassis),
		FilterStatus:  p.Sprintf(i18n.MsgColumnStatus),
		Search:        p.Sprintf(i18n.MsgSearch),
		Clear:         p.Sprintf(i18n.MsgClear),
		Loading:       p.Sprintf(i18n.MsgLoading),
		ColumnDate:    p.Sprintf(i18n.MsgColumnDate),
		ColumnClient:  p.Sprintf(i18n.MsgColumnClient),
		ColumnReg:     p.Sprintf(i18n.MsgColumnReg),
		ColumnModel:   p.Sprintf(i18n.MsgColumnModel),
		ColumnMileage: p.Sprintf(i18n.MsgColumnMileage),
		ColumnStatus:  p.Sprintf(i18n.MsgColumnStatus),
		ColumnTags:    p.Sprintf(i18n.MsgColumnTags),
		ColumnActions: p.Sprintf(i18n.MsgColumnActions),
	}
}
