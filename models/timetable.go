package models

import "time"

// WeekDay is one of the six editable days. Sunday is deliberately not part
// of the set: the college runs Monday through Saturday and neither the
// editor nor the student view ever shows a seventh column.
type WeekDay string

const (
	Monday    WeekDay = "Monday"
	Tuesday   WeekDay = "Tuesday"
	Wednesday WeekDay = "Wednesday"
	Thursday  WeekDay = "Thursday"
	Friday    WeekDay = "Friday"
	Saturday  WeekDay = "Saturday"
)

// WeekDays lists the editable days in display order.
var WeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// IsWeekDay reports whether name is one of the six editable days.
func IsWeekDay(name string) bool {
	for _, day := range WeekDays {
		if string(day) == name {
			return true
		}
	}
	return false
}

// TimeSlot is a single scheduled class occurrence within a day.
// Time holds a textual range like "9:00-10:00"; Teacher and Room are optional.
type TimeSlot struct {
	Time    string `bson:"time" json:"time"`
	Subject string `bson:"subject" json:"subject"`
	Teacher string `bson:"teacher,omitempty" json:"teacher,omitempty"`
	Room    string `bson:"room,omitempty" json:"room,omitempty"`
}

// Schedule maps each weekday to its ordered class slots. Order is input
// order, not start-time order. A well-formed Schedule carries all six
// WeekDay keys, each possibly empty.
type Schedule map[WeekDay][]TimeSlot

// NewSchedule returns a Schedule with every weekday present and empty.
func NewSchedule() Schedule {
	s := make(Schedule, len(WeekDays))
	for _, day := range WeekDays {
		s[day] = []TimeSlot{}
	}
	return s
}

// SlotsFor returns the slots for day, never nil.
func (s Schedule) SlotsFor(day WeekDay) []TimeSlot {
	if slots, ok := s[day]; ok && slots != nil {
		return slots
	}
	return []TimeSlot{}
}

// TotalSlotCount is the number of slots across all six days.
func (s Schedule) TotalSlotCount() int {
	total := 0
	for _, day := range WeekDays {
		total += len(s[day])
	}
	return total
}

// Normalize returns a copy with exactly the six weekday keys: missing days
// become empty sequences and foreign keys are dropped. Payloads read from
// the wire go through this so the six-day invariant holds after decode.
func (s Schedule) Normalize() Schedule {
	normalized := make(Schedule, len(WeekDays))
	for _, day := range WeekDays {
		normalized[day] = CopySlots(s[day])
	}
	return normalized
}

// CopySlots deep-copies a slot sequence. Mutating the copy never affects
// the source sequence.
func CopySlots(slots []TimeSlot) []TimeSlot {
	copied := make([]TimeSlot, len(slots))
	copy(copied, slots)
	return copied
}

// Timetable is the persisted aggregate: one Schedule plus the class
// identity it belongs to. One timetable exists per branch+section+semester.
type Timetable struct {
	ID         string     `bson:"id" json:"id"`
	Branch     string     `bson:"branch" json:"branch"`
	Section    string     `bson:"section" json:"section"`
	Semester   string     `bson:"semester,omitempty" json:"semester,omitempty"`
	Days       Schedule   `bson:"days" json:"days"`
	Status     string     `bson:"status" json:"status"`
	Type       string     `bson:"type" json:"type"`
	CreatedBy  string     `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UploadedAt *time.Time `bson:"uploadedAt,omitempty" json:"uploadedAt,omitempty"`
}

// TimetableSubmission is the payload for creating or replacing a timetable.
// Re-editing replaces the entire schedule in one submission; there is no
// per-slot remote mutation.
type TimetableSubmission struct {
	Branch   string   `json:"branch"`
	Section  string   `json:"section"`
	Semester string   `json:"semester"`
	Days     Schedule `json:"days"`
}
