package schedule

import (
	"context"
	"errors"
	"testing"

	"campushub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	timetable *models.Timetable
	fetchErr  error
	submitErr error

	fetchCalls     int
	submitCalls    int
	lastSubmission models.TimetableSubmission
}

func (g *fakeGateway) FetchMyTimetable(ctx context.Context, session Session) (*models.Timetable, error) {
	g.fetchCalls++
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return g.timetable, nil
}

func (g *fakeGateway) SubmitTimetable(ctx context.Context, session Session, submission models.TimetableSubmission) error {
	g.submitCalls++
	g.lastSubmission = submission
	return g.submitErr
}

func filledEditor(gw Gateway) *Editor {
	e := NewEditor(gw)
	e.Branch = "Computer Science"
	e.Section = "A"
	e.Semester = "5"
	e.AddSlot(models.Monday)
	e.UpdateSlot(models.Monday, 0, SlotTime, "9:00-10:00")
	e.UpdateSlot(models.Monday, 0, SlotSubject, "Operating Systems")
	return e
}

func TestEditorSlotMutations(t *testing.T) {
	e := NewEditor(&fakeGateway{})

	t.Run("AddSlot Appends Empty Slot", func(t *testing.T) {
		e.AddSlot(models.Tuesday)
		require.Len(t, e.Schedule()[models.Tuesday], 1)
		assert.Equal(t, models.TimeSlot{}, e.Schedule()[models.Tuesday][0])
	})

	t.Run("UpdateSlot Touches Only The Named Field", func(t *testing.T) {
		ok := e.UpdateSlot(models.Tuesday, 0, SlotSubject, "Maths")
		assert.True(t, ok)
		slot := e.Schedule()[models.Tuesday][0]
		assert.Equal(t, "Maths", slot.Subject)
		assert.Empty(t, slot.Time)
		assert.Empty(t, slot.Teacher)
		assert.Empty(t, slot.Room)
	})

	t.Run("UpdateSlot Out Of Range Returns False", func(t *testing.T) {
		assert.False(t, e.UpdateSlot(models.Tuesday, 5, SlotSubject, "x"))
		assert.False(t, e.UpdateSlot(models.Tuesday, -1, SlotSubject, "x"))
	})

	t.Run("RemoveSlot Out Of Range Is A NoOp", func(t *testing.T) {
		before := len(e.Schedule()[models.Tuesday])
		e.RemoveSlot(models.Tuesday, 99)
		e.RemoveSlot(models.Tuesday, -1)
		assert.Len(t, e.Schedule()[models.Tuesday], before)
	})

	t.Run("RemoveSlot Deletes By Index", func(t *testing.T) {
		e.AddSlot(models.Tuesday)
		e.RemoveSlot(models.Tuesday, 0)
		require.Len(t, e.Schedule()[models.Tuesday], 1)
		assert.Empty(t, e.Schedule()[models.Tuesday][0].Subject)
	})
}

func TestEditorCopyDayIsDeep(t *testing.T) {
	e := NewEditor(&fakeGateway{})
	e.AddSlot(models.Monday)
	e.UpdateSlot(models.Monday, 0, SlotSubject, "Physics")

	e.CopyDay(models.Monday, models.Wednesday)
	require.Len(t, e.Schedule()[models.Wednesday], 1)

	// Mutating the copy must not leak back into the source day.
	e.UpdateSlot(models.Wednesday, 0, SlotSubject, "Chemistry")
	assert.Equal(t, "Physics", e.Schedule()[models.Monday][0].Subject)
	assert.Equal(t, "Chemistry", e.Schedule()[models.Wednesday][0].Subject)

	// And the other direction.
	e.UpdateSlot(models.Monday, 0, SlotRoom, "101")
	assert.Empty(t, e.Schedule()[models.Wednesday][0].Room)
}

func TestEditorValidateAndSave(t *testing.T) {
	ctx := context.Background()
	session := Session{Token: "token"}

	t.Run("Missing Class Info Fails Before Gateway", func(t *testing.T) {
		gw := &fakeGateway{}
		e := filledEditor(gw)
		e.Branch = ""

		err := e.ValidateAndSave(ctx, session)
		assert.EqualError(t, err, "Please fill in branch, section, and semester")
		assert.Zero(t, gw.submitCalls)
	})

	t.Run("Empty Schedule Fails", func(t *testing.T) {
		gw := &fakeGateway{}
		e := NewEditor(gw)
		e.Branch, e.Section, e.Semester = "CSE", "A", "5"

		err := e.ValidateAndSave(ctx, session)
		assert.EqualError(t, err, "Please add at least one class to the schedule")
		assert.Zero(t, gw.submitCalls)
	})

	t.Run("Incomplete Slot Names The First Offending Day", func(t *testing.T) {
		gw := &fakeGateway{}
		e := filledEditor(gw)
		// Violations on Wednesday and Friday; Wednesday comes first in
		// enumeration order and must be the one reported.
		e.AddSlot(models.Friday)
		e.AddSlot(models.Wednesday)
		e.UpdateSlot(models.Wednesday, 0, SlotTime, "11:00-12:00")

		err := e.ValidateAndSave(ctx, session)
		assert.EqualError(t, err, "Please fill in time and subject for all classes in Wednesday")
		assert.Zero(t, gw.submitCalls)
	})

	t.Run("Valid Schedule Is Submitted Whole", func(t *testing.T) {
		gw := &fakeGateway{}
		e := filledEditor(gw)

		err := e.ValidateAndSave(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, 1, gw.submitCalls)
		assert.Equal(t, "Computer Science", gw.lastSubmission.Branch)
		assert.Equal(t, "A", gw.lastSubmission.Section)
		assert.Equal(t, "5", gw.lastSubmission.Semester)
		assert.Equal(t, 1, gw.lastSubmission.Days.TotalSlotCount())
		assert.False(t, e.Saving(), "saving flag resets after completion")
	})

	t.Run("Gateway Failure Surfaces And Leaves Schedule Intact", func(t *testing.T) {
		gw := &fakeGateway{submitErr: errors.New("store unavailable")}
		e := filledEditor(gw)

		err := e.ValidateAndSave(ctx, session)
		assert.EqualError(t, err, "store unavailable")
		assert.False(t, e.Saving())
		assert.Equal(t, 1, e.Schedule().TotalSlotCount())
	})
}
