package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"campushub/models"
	"campushub/utils"

	"go.uber.org/zap"
)

// ViewState is the viewer's lifecycle: Loading until a fetch settles, then
// exactly one of Error, Empty, or Loaded.
type ViewState int

const (
	StateLoading ViewState = iota
	StateError
	StateEmpty
	StateLoaded
)

// User-facing messages for the fetch failure modes.
const (
	msgLoginRequired     = "Please login to view your timetable"
	msgProfileIncomplete = "Your profile is incomplete. Please contact admin to update your branch and section."
	msgGenericFetchError = "Failed to load your timetable. Please try again."
)

// Viewer is the read-only student view over a fetched timetable.
type Viewer struct {
	gateway Gateway
	clock   func() time.Time
	logger  *zap.Logger

	state       ViewState
	errMessage  string
	timetable   *models.Timetable
	selectedDay models.WeekDay
}

// NewViewer returns a viewer in the Loading state.
func NewViewer(gateway Gateway) *Viewer {
	return &Viewer{
		gateway: gateway,
		clock:   time.Now,
		logger:  utils.GetLogger(),
		state:   StateLoading,
	}
}

// WithClock replaces the time source. Used by tests and by shells that pin
// a timezone.
func (v *Viewer) WithClock(clock func() time.Time) *Viewer {
	v.clock = clock
	return v
}

// Load fetches the caller's timetable and settles the view state. Without a
// credential the gateway is never contacted. The initial day selection
// happens here, once per successful load: today when today is an editable
// day, otherwise the first day of the week.
func (v *Viewer) Load(ctx context.Context, session Session) {
	if !session.Valid() {
		v.fail(msgLoginRequired)
		return
	}

	timetable, err := v.gateway.FetchMyTimetable(ctx, session)
	if err != nil {
		v.logger.Warn("Timetable fetch failed", zap.Error(err))
		var gwErr *GatewayError
		if errors.As(err, &gwErr) {
			if strings.Contains(gwErr.Detail, "branch") {
				v.fail(msgProfileIncomplete)
				return
			}
			if gwErr.Detail != "" {
				v.fail(gwErr.Detail)
				return
			}
		}
		v.fail(msgGenericFetchError)
		return
	}
	if timetable == nil {
		v.state = StateEmpty
		return
	}

	timetable.Days = timetable.Days.Normalize()
	v.timetable = timetable
	v.state = StateLoaded

	if today, ok := v.today(); ok {
		v.selectedDay = today
	} else {
		v.selectedDay = models.WeekDays[0]
	}
}

func (v *Viewer) fail(message string) {
	v.state = StateError
	v.errMessage = message
}

// State returns the current view state.
func (v *Viewer) State() ViewState {
	return v.state
}

// ErrorMessage is the user-facing message when State is Error.
func (v *Viewer) ErrorMessage() string {
	return v.errMessage
}

// Timetable returns the loaded timetable, nil unless State is Loaded.
func (v *Viewer) Timetable() *models.Timetable {
	return v.timetable
}

// SelectedDay is the day currently in focus.
func (v *Viewer) SelectedDay() models.WeekDay {
	return v.selectedDay
}

// SelectDay moves focus. Days with no classes are not selectable.
func (v *Viewer) SelectDay(day models.WeekDay) {
	if v.state != StateLoaded || v.DayCount(day) == 0 {
		return
	}
	v.selectedDay = day
}

// DisplayedSlots returns the selected day's slots, empty when the day has
// none.
func (v *Viewer) DisplayedSlots() []models.TimeSlot {
	if v.state != StateLoaded {
		return []models.TimeSlot{}
	}
	return v.timetable.Days.SlotsFor(v.selectedDay)
}

// DayCount is the class-count badge for a day selector.
func (v *Viewer) DayCount(day models.WeekDay) int {
	if v.state != StateLoaded {
		return 0
	}
	return len(v.timetable.Days.SlotsFor(day))
}

// WeeklyTotal is the class count across all six days.
func (v *Viewer) WeeklyTotal() int {
	if v.state != StateLoaded {
		return 0
	}
	return v.timetable.Days.TotalSlotCount()
}

// IsToday reports whether day is the current real-world weekday. Unlike the
// initial selection this is live: it consults the clock on every call, so
// the highlight moves at midnight even if the view stays open.
func (v *Viewer) IsToday(day models.WeekDay) bool {
	today, ok := v.today()
	return ok && today == day
}

func (v *Viewer) today() (models.WeekDay, bool) {
	name := v.clock().Weekday().String()
	if !models.IsWeekDay(name) {
		return "", false
	}
	return models.WeekDay(name), true
}
