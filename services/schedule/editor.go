package schedule

import (
	"context"
	"errors"
	"fmt"

	"campushub/models"
	"campushub/utils"

	"go.uber.org/zap"
)

// SlotField names one of the four editable slot fields. UpdateSlot takes a
// SlotField rather than a raw string so a typo cannot silently create a
// field that does not exist.
type SlotField int

const (
	SlotTime SlotField = iota
	SlotSubject
	SlotTeacher
	SlotRoom
)

// Validation failures surfaced to the authoring UI verbatim.
var (
	ErrMissingClassInfo = errors.New("Please fill in branch, section, and semester")
	ErrEmptySchedule    = errors.New("Please add at least one class to the schedule")
)

// Editor accumulates a weekly schedule in memory and submits it to the
// timetable store as one whole object. A single editor instance owns its
// schedule; there is no concurrent-editor scenario.
type Editor struct {
	Branch   string
	Section  string
	Semester string

	schedule models.Schedule
	saving   bool
	gateway  Gateway
	logger   *zap.Logger
}

// NewEditor returns an editor with an empty six-day schedule.
func NewEditor(gateway Gateway) *Editor {
	return &Editor{
		schedule: models.NewSchedule(),
		gateway:  gateway,
		logger:   utils.GetLogger(),
	}
}

// Schedule exposes the in-memory schedule being edited.
func (e *Editor) Schedule() models.Schedule {
	return e.schedule
}

// Saving reports whether a submission is in flight. The UI disables the
// save control while true.
func (e *Editor) Saving() bool {
	return e.saving
}

// AddSlot appends an empty slot to day.
func (e *Editor) AddSlot(day models.WeekDay) {
	e.schedule[day] = append(e.schedule[day], models.TimeSlot{})
}

// RemoveSlot deletes the slot at index from day. An out-of-range index is a
// no-op.
func (e *Editor) RemoveSlot(day models.WeekDay, index int) {
	slots := e.schedule[day]
	filtered := make([]models.TimeSlot, 0, len(slots))
	for i, slot := range slots {
		if i != index {
			filtered = append(filtered, slot)
		}
	}
	e.schedule[day] = filtered
}

// UpdateSlot replaces one field of the slot at index, leaving everything
// else untouched. Returns false when the index is out of range.
func (e *Editor) UpdateSlot(day models.WeekDay, index int, field SlotField, value string) bool {
	slots := e.schedule[day]
	if index < 0 || index >= len(slots) {
		return false
	}
	switch field {
	case SlotTime:
		slots[index].Time = value
	case SlotSubject:
		slots[index].Subject = value
	case SlotTeacher:
		slots[index].Teacher = value
	case SlotRoom:
		slots[index].Room = value
	default:
		return false
	}
	return true
}

// CopyDay replaces toDay's slots with a deep copy of fromDay's. The two
// days stay independent afterwards.
func (e *Editor) CopyDay(fromDay, toDay models.WeekDay) {
	e.schedule[toDay] = models.CopySlots(e.schedule[fromDay])
}

// Validate runs the pre-submission checks in order and returns the first
// violation: class identity filled in, at least one class anywhere, and
// time+subject on every slot (first offending day reported).
func (e *Editor) Validate() error {
	if e.Branch == "" || e.Section == "" || e.Semester == "" {
		return ErrMissingClassInfo
	}
	if e.schedule.TotalSlotCount() == 0 {
		return ErrEmptySchedule
	}
	for _, day := range models.WeekDays {
		for _, slot := range e.schedule[day] {
			if slot.Time == "" || slot.Subject == "" {
				return fmt.Errorf("Please fill in time and subject for all classes in %s", day)
			}
		}
	}
	return nil
}

// ValidateAndSave validates the schedule and, when clean, submits it to the
// store. Validation failures never reach the gateway. The in-memory
// schedule is left untouched either way, so a failed save is retried by
// simply calling again.
func (e *Editor) ValidateAndSave(ctx context.Context, session Session) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.saving = true
	defer func() { e.saving = false }()

	submission := models.TimetableSubmission{
		Branch:   e.Branch,
		Section:  e.Section,
		Semester: e.Semester,
		Days:     e.schedule,
	}
	if err := e.gateway.SubmitTimetable(ctx, session, submission); err != nil {
		e.logger.Error("Timetable submission failed",
			zap.String("branch", e.Branch),
			zap.String("section", e.Section),
			zap.Error(err))
		return err
	}
	return nil
}
