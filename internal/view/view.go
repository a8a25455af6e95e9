package view

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-maintenance-search/internal/adapter"
	"github.com/MKhiriev/go-maintenance-search/internal/config"
	"github.com/MKhiriev/go-maintenance-search/internal/i18n"
	"github.com/MKhiriev/go-maintenance-search/internal/logger"
	"github.com/MKhiriev/go-maintenance-search/internal/metrics"
	"github.com/MKhiriev/go-maintenance-search/internal/validators"
	"github.com/MKhiriev/go-maintenance-search/models"
	"golang.org/x/text/message"
)

const (
	// ListLimit bounds the working set fetched by Load.
	ListLimit = 1000
	// ListSort orders the working set newest first.
	ListSort = "-created_at"
	// ToastTTL is how long a toast stays visible.
	ToastTTL = 3 * time.Second
)

// Options carries the optional collaborators of a [RecordSearchView]. Nil
// fields fall back to no-op or default implementations.
type Options struct {
	Locale     string
	Navigation config.Navigation
	Validator  validators.Validator
	Metrics    metrics.Recorder
	Logger     *logger.Logger
	// Clock is used for toast expiry. Defaults to time.Now.
	Clock func() time.Time
}

// RecordSearchView is the view-model of the search screen.
//
// All state is guarded by mu. The lock is never held across a call to the
// records API, so concurrent operations complete independently and the last
// one to finish determines the final state.
type RecordSearchView struct {
	api       adapter.RecordsAPI
	nav       config.Navigation
	printer   *message.Printer
	validator validators.Validator
	metrics   metrics.Recorder
	logger    *logger.Logger
	now       func() time.Time

	mu           sync.Mutex
	working      []models.Record
	filtered     []models.Record
	criteria     models.Criteria
	loading      bool
	loaded       bool
	errorMessage string
	toasts       []models.Toast
}

// NewRecordSearchView constructs an empty view bound to api. Call Load to
// populate it.
func NewRecordSearchView(api adapter.RecordsAPI, opts Options) *RecordSearchView {
	v := &RecordSearchView{
		api:       api,
		nav:       opts.Navigation,
		printer:   i18n.Printer(opts.Locale),
		validator: opts.Validator,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		now:       opts.Clock,
	}

	if v.validator == nil {
		v.validator = validators.NewModelValidator()
	}
	if v.metrics == nil {
		v.metrics = metrics.Nop{}
	}
	if v.logger == nil {
		v.logger = logger.Nop()
	}
	if v.now == nil {
		v.now = time.Now
	}

	return v
}

// State is an immutable snapshot of the view, safe to render without
// holding any lock.
type State struct {
	// Loading is true while a Load is in flight.
	Loading bool
	// Loaded is true once at least one Load has finished, successfully or not.
	Loaded bool
	// Records is the filtered set in display order.
	Records []models.Record
	// Total is the size of the working set.
	Total int
	// Criteria are the criteria that produced Records.
	Criteria models.Criteria
	// ErrorMessage replaces the default empty-state text when set.
	ErrorMessage string
	// Toasts are the notifications that have not expired yet.
	Toasts []models.Toast
}

// Snapshot returns the current state. Expired toasts are pruned first.
func (v *RecordSearchView) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pruneToastsLocked()

	return State{
		Loading:      v.loading,
		Loaded:       v.loaded,
		Records:      slices.Clone(v.filtered),
		Total:        len(v.working),
		Criteria:     v.criteria,
		ErrorMessage: v.errorMessage,
		Toasts:       slices.Clone(v.toasts),
	}
}

// Loaded reports whether the view has completed a load.
func (v *RecordSearchView) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Record looks up a record of the working set by id.
func (v *RecordSearchView) Record(id string) (models.Record, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, r := range v.working {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, ErrRecordNotFound
}

// Printer returns the message printer of the view's locale.
func (v *RecordSearchView) Printer() *message.Printer {
	return v.printer
}

// ApplyFilter stores criteria and recomputes the filtered set from the full
// working set. A previous load error message is cleared.
func (v *RecordSearchView) ApplyFilter(criteria models.Criteria) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria = criteria.Normalize()
	v.filtered = Filter(v.working, v.criteria)
	v.errorMessage = ""
	v.publishSizesLocked()
}

// Clear resets every criterion to blank and shows the whole working set.
func (v *RecordSearchView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.criteria = models.Criteria{}
	v.filtered = slices.Clone(v.working)
	v.publishSizesLocked()
}

func (v *RecordSearchView) pushToastLocked(kind models.ToastKind, msg string) {
	v.toasts = append(v.toasts, models.Toast{
		Kind:      kind,
		Message:   msg,
		ExpiresAt: v.now().Add(ToastTTL),
	})
}

func (v *RecordSearchView) pruneToastsLocked() {
	now := v.now()
	v.toasts = slices.DeleteFunc(v.toasts, func(t models.Toast) bool {
		return t.Expired(now)
	})
}

func (v *RecordSearchView) publishSizesLocked() {
	v.metrics.SetSetSizes(len(v.working), len(v.filtered))
}
