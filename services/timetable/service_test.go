package timetable

import (
	"context"
	"strings"
	"testing"
	"time"

	timetableRepo "campushub/database/repository/timetable"
	"campushub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimetableRepo struct {
	stored map[string]models.Timetable // keyed by branch|section|semester
	byID   map[string]models.Timetable
}

func newFakeTimetableRepo() *fakeTimetableRepo {
	return &fakeTimetableRepo{
		stored: make(map[string]models.Timetable),
		byID:   make(map[string]models.Timetable),
	}
}

func classKey(branch, section, semester string) string {
	return branch + "|" + section + "|" + semester
}

func (r *fakeTimetableRepo) Upsert(ctx context.Context, t models.Timetable) (string, error) {
	key := classKey(t.Branch, t.Section, t.Semester)
	if existing, ok := r.stored[key]; ok {
		t.ID = existing.ID
	} else if t.ID == "" {
		t.ID = "tt-" + key
	}
	r.stored[key] = t
	r.byID[t.ID] = t
	return t.ID, nil
}

func (r *fakeTimetableRepo) GetByClass(ctx context.Context, branch, section, semester string) (*models.Timetable, error) {
	if t, ok := r.stored[classKey(branch, section, semester)]; ok {
		return &t, nil
	}
	// A semester-less lookup also matches documents stored with one,
	// mirroring the partial mongo filter.
	if semester == "" {
		for key, t := range r.stored {
			if strings.HasPrefix(key, branch+"|"+section+"|") {
				return &t, nil
			}
		}
	}
	return nil, timetableRepo.ErrNotFound
}

func (r *fakeTimetableRepo) GetByID(ctx context.Context, id string) (*models.Timetable, error) {
	if t, ok := r.byID[id]; ok {
		return &t, nil
	}
	return nil, timetableRepo.ErrNotFound
}

func (r *fakeTimetableRepo) ListAll(ctx context.Context) ([]models.Timetable, error) {
	all := make([]models.Timetable, 0, len(r.byID))
	for _, t := range r.byID {
		all = append(all, t)
	}
	return all, nil
}

func (r *fakeTimetableRepo) DeleteByID(ctx context.Context, id string) error {
	t, ok := r.byID[id]
	if !ok {
		return timetableRepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.stored, classKey(t.Branch, t.Section, t.Semester))
	return nil
}

func validSubmission() models.TimetableSubmission {
	days := models.NewSchedule()
	days[models.Monday] = []models.TimeSlot{
		{Time: "9:00-10:00", Subject: "Operating Systems", Teacher: "Dr. Rao", Room: "204"},
	}
	days[models.Thursday] = []models.TimeSlot{
		{Time: "11:00-12:00", Subject: "Databases"},
	}
	return models.TimetableSubmission{
		Branch:   "Computer Science",
		Section:  "A",
		Semester: "5",
		Days:     days,
	}
}

func newService(repo timetableRepo.TimetableRepository) *DefaultTimetableService {
	return &DefaultTimetableService{
		Repo:  repo,
		Clock: func() time.Time { return time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreateManual(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Submission Is Stored", func(t *testing.T) {
		repo := newFakeTimetableRepo()
		svc := newService(repo)

		created, err := svc.CreateManual(ctx, "admin-1", validSubmission())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "active", created.Status)
		assert.Equal(t, "manual", created.Type)
		assert.Equal(t, 2, created.Days.TotalSlotCount())
	})

	t.Run("Missing Class Identity Rejected", func(t *testing.T) {
		svc := newService(newFakeTimetableRepo())
		sub := validSubmission()
		sub.Semester = ""

		_, err := svc.CreateManual(ctx, "admin-1", sub)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Slot Without Subject Rejected Naming The Day", func(t *testing.T) {
		svc := newService(newFakeTimetableRepo())
		sub := validSubmission()
		sub.Days[models.Thursday] = []models.TimeSlot{{Time: "11:00-12:00"}}

		_, err := svc.CreateManual(ctx, "admin-1", sub)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "Thursday")
	})

	t.Run("Resubmission Replaces The Whole Schedule", func(t *testing.T) {
		repo := newFakeTimetableRepo()
		svc := newService(repo)

		first, err := svc.CreateManual(ctx, "admin-1", validSubmission())
		require.NoError(t, err)

		replacement := validSubmission()
		replacement.Days[models.Thursday] = []models.TimeSlot{}
		second, err := svc.CreateManual(ctx, "admin-1", replacement)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "identity keyed by class, not by submission")
		stored, err := svc.GetByClass(ctx, "Computer Science", "A", "5")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Days.TotalSlotCount())
	})

	t.Run("Foreign Day Keys Dropped Before Persisting", func(t *testing.T) {
		repo := newFakeTimetableRepo()
		svc := newService(repo)
		sub := validSubmission()
		sub.Days["Sunday"] = []models.TimeSlot{{Time: "9:00-10:00", Subject: "Nope"}}

		created, err := svc.CreateManual(ctx, "admin-1", sub)
		require.NoError(t, err)
		_, hasSunday := created.Days["Sunday"]
		assert.False(t, hasSunday)
	})
}

func TestGetForStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("Incomplete Profile", func(t *testing.T) {
		svc := newService(newFakeTimetableRepo())
		_, err := svc.GetForStudent(ctx, &models.User{Role: models.RoleStudent, Branch: "CSE"})
		assert.ErrorIs(t, err, ErrProfileIncomplete)
	})

	t.Run("Semester Fallback", func(t *testing.T) {
		repo := newFakeTimetableRepo()
		svc := newService(repo)
		sub := validSubmission()
		_, err := svc.CreateManual(ctx, "admin-1", sub)
		require.NoError(t, err)

		// Student carries a different semester; exact match misses and the
		// branch+section fallback finds the stored document.
		student := &models.User{Branch: "Computer Science", Section: "A", Semester: "6"}
		timetable, err := svc.GetForStudent(ctx, student)
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", timetable.Branch)
	})

	t.Run("Nothing Uploaded", func(t *testing.T) {
		svc := newService(newFakeTimetableRepo())
		student := &models.User{Branch: "Mechanical", Section: "B", Semester: "3"}
		_, err := svc.GetForStudent(ctx, student)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTimetableRepo()
	svc := newService(repo)

	created, err := svc.CreateManual(ctx, "admin-1", validSubmission())
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, created.ID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "day,time,subject,teacher,room", lines[0])
	assert.Equal(t, "Monday,9:00-10:00,Operating Systems,Dr. Rao,204", lines[1])
	assert.Equal(t, "Thursday,11:00-12:00,Databases,,", lines[2])
}
