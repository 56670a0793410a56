package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/repository"
	"github.com/alexanderramin/lessonlog/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	uow      db.UnitOfWork
	observer *recordingObserver
	weeks    WeekService
	teachers TeacherService
	imports  ImportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	obs := &recordingObserver{}
	return &fixture{
		db:       database,
		uow:      uow,
		observer: obs,
		weeks:    NewWeekService(uow, obs),
		teachers: NewTeacherService(uow, obs),
		imports:  NewImportService(uow, obs),
	}
}

func (f *fixture) seedTimetable(t *testing.T, slots ...domain.TimetableSlot) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteTimetableRepo(f.db).ReplaceAll(context.Background(), slots))
}

func (f *fixture) seedLessons(t *testing.T, entries ...domain.LessonCatalogEntry) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteLessonCatalogRepo(f.db).ReplaceAll(context.Background(), entries))
}

func (f *fixture) seedEquipment(t *testing.T, entries ...domain.EquipmentCatalogEntry) {
	t.Helper()
	require.NoError(t, repository.NewSQLiteEquipmentCatalogRepo(f.db).ReplaceAll(context.Background(), entries))
}

func (f *fixture) storedSchedule(t *testing.T) []domain.ScheduleRow {
	t.Helper()
	rows, err := repository.NewSQLiteScheduleRepo(f.db).ListAll(context.Background())
	require.NoError(t, err)
	return rows
}

func (f *fixture) storedEquipment(t *testing.T) []domain.EquipmentRow {
	t.Helper()
	rows, err := repository.NewSQLiteEquipmentRepo(f.db).ListAll(context.Background())
	require.NoError(t, err)
	return rows
}

// standardWeek seeds a two-lesson timetable for the default teacher, makes
// the teacher active and opens week 1 starting on 2024-09-02.
func (f *fixture) standardWeek(t *testing.T) *WeekView {
	t.Helper()
	ctx := context.Background()
	f.seedTimetable(t,
		testutil.NewTestSlot("Thứ 2", 1, "Toán"),
		testutil.NewTestSlot("Thứ 3", 2, "Văn"),
	)
	f.seedLessons(t, testutil.NewTestLessons("Toán", "Tập hợp", "Phép cộng", "Phép trừ")...)
	_, err := f.teachers.Use(ctx, testutil.DefaultTeacher)
	require.NoError(t, err)
	view, err := f.weeks.Goto(ctx, 1, "2024-09-02")
	require.NoError(t, err)
	return view
}

func strPtr(s string) *string { return &s }
