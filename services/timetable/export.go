package timetable

import (
	"context"
	"fmt"

	"campushub/models"

	"github.com/gocarina/gocsv"
)

// scheduleRow is one CSV line: a slot flattened with its day.
type scheduleRow struct {
	Day     string `csv:"day"`
	Time    string `csv:"time"`
	Subject string `csv:"subject"`
	Teacher string `csv:"teacher"`
	Room    string `csv:"room"`
}

// ExportCSV flattens a timetable into day-ordered CSV rows for download.
func (s *DefaultTimetableService) ExportCSV(ctx context.Context, id string) ([]byte, error) {
	timetable, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	rows := flattenSchedule(timetable.Days)
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("encode timetable csv: %w", err)
	}
	return data, nil
}

func flattenSchedule(days models.Schedule) []scheduleRow {
	rows := make([]scheduleRow, 0, days.TotalSlotCount())
	for _, day := range models.WeekDays {
		for _, slot := range days.SlotsFor(day) {
			rows = append(rows, scheduleRow{
				Day:     string(day),
				Time:    slot.Time,
				Subject: slot.Subject,
				Teacher: slot.Teacher,
				Room:    slot.Room,
			})
		}
	}
	return rows
}
