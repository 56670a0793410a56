package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/catalog"
	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/generation"
	"github.com/alexanderramin/lessonlog/internal/projection"
	"github.com/alexanderramin/lessonlog/internal/reconcile"
	"github.com/alexanderramin/lessonlog/internal/repository"
)

// stores are the repositories of one transaction.
type stores struct {
	settings         repository.SettingsRepo
	timetable        repository.TimetableRepo
	schedule         repository.ScheduleRepo
	equipment        repository.EquipmentRepo
	lessonCatalog    repository.LessonCatalogRepo
	equipmentCatalog repository.EquipmentCatalogRepo
	states           repository.WeekStateRepo
}

func newStores(tx db.DBTX) stores {
	return stores{
		settings:         repository.NewSQLiteSettingsRepo(tx),
		timetable:        repository.NewSQLiteTimetableRepo(tx),
		schedule:         repository.NewSQLiteScheduleRepo(tx),
		equipment:        repository.NewSQLiteEquipmentRepo(tx),
		lessonCatalog:    repository.NewSQLiteLessonCatalogRepo(tx),
		equipmentCatalog: repository.NewSQLiteEquipmentCatalogRepo(tx),
		states:           repository.NewSQLiteWeekStateRepo(tx),
	}
}

// snapshot is the data a week use case reads and rewrites: the global row
// sets plus the active teacher's template and the catalogs.
type snapshot struct {
	settings  *domain.Settings
	teacher   string
	week      int
	slots     []domain.TimetableSlot
	schedule  []domain.ScheduleRow
	equipment []domain.EquipmentRow
	lessons   catalog.LessonIndex
	equipIdx  catalog.EquipmentIndex
	state     domain.WeekState
}

func (s stores) load(ctx context.Context) (*snapshot, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	teacher := strings.TrimSpace(st.ActiveTeacher)
	if teacher == "" {
		return nil, ErrNoActiveTeacher
	}

	slots, err := s.timetable.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timetable: %w", err)
	}
	schedule, err := s.schedule.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	equipment, err := s.equipment.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading equipment: %w", err)
	}
	lessons, err := s.lessonCatalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lesson catalog: %w", err)
	}
	equipCatalog, err := s.equipmentCatalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading equipment catalog: %w", err)
	}
	state, err := s.states.Get(ctx, teacher, st.CurrentWeek)
	if err != nil {
		return nil, fmt.Errorf("loading week state: %w", err)
	}

	return &snapshot{
		settings:  st,
		teacher:   teacher,
		week:      st.CurrentWeek,
		slots:     domain.MatchTeacherSlots(slots, teacher),
		schedule:  schedule,
		equipment: equipment,
		lessons:   catalog.BuildLessonIndex(lessons),
		equipIdx:  catalog.BuildEquipmentIndex(equipCatalog),
		state:     state,
	}, nil
}

// save writes both row sets and the week state back.
func (s stores) save(ctx context.Context, sn *snapshot) error {
	if err := s.schedule.ReplaceAll(ctx, sn.schedule); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	if err := s.equipment.ReplaceAll(ctx, sn.equipment); err != nil {
		return fmt.Errorf("saving equipment: %w", err)
	}
	if err := s.states.Set(ctx, sn.teacher, sn.week, sn.state); err != nil {
		return fmt.Errorf("saving week state: %w", err)
	}
	return nil
}

func (sn *snapshot) transition(event domain.WeekEvent) error {
	next, err := reconcile.Transition(sn.state, event)
	if err != nil {
		return err
	}
	sn.state = next
	return nil
}

func (sn *snapshot) key(day domain.Weekday, period int) domain.RowKey {
	return domain.ScheduleRow{TeacherName: sn.teacher, Week: sn.week, Day: day, Period: period}.Key()
}

func (sn *snapshot) generate() []domain.ScheduleRow {
	return generation.GenerateWeek(generation.Input{
		TeacherName:   sn.teacher,
		Week:          sn.week,
		WeekStartDate: sn.settings.WeekStartDate,
		Slots:         sn.slots,
		History:       sn.schedule,
		Lessons:       sn.lessons,
	})
}

// projectWeek rebuilds the current week's equipment rows from its schedule.
func (sn *snapshot) projectWeek() {
	projected := projection.ProjectEquipment(
		sn.week,
		reconcile.WeekSchedule(sn.schedule, sn.teacher, sn.week),
		reconcile.WeekEquipment(sn.equipment, sn.teacher, sn.week),
		sn.equipIdx,
	)
	sn.equipment = reconcile.ReplaceTeacherWeekEquipment(sn.equipment, sn.teacher, sn.week, projected)
}

// autoPopulate fills a never-visited week from the timetable. It reports
// whether rows were generated.
func (sn *snapshot) autoPopulate() (bool, error) {
	hasData := reconcile.HasData(sn.schedule, sn.teacher, sn.week)
	if !reconcile.ShouldAutoPopulate(sn.state, hasData, len(sn.slots)) {
		return false, nil
	}
	rows := sn.generate()
	if len(rows) == 0 {
		return false, nil
	}
	sn.schedule = reconcile.ReplaceTeacherWeekSchedule(sn.schedule, sn.teacher, sn.week, rows)
	sn.projectWeek()
	if err := sn.transition(domain.EventGenerate); err != nil {
		return false, err
	}
	return true, nil
}

func (sn *snapshot) view() *WeekView {
	rows := reconcile.WeekSchedule(sn.schedule, sn.teacher, sn.week)
	sort.SliceStable(rows, func(i, j int) bool { return cellLess(rows[i].Cell(), rows[j].Cell()) })
	equipment := reconcile.WeekEquipment(sn.equipment, sn.teacher, sn.week)
	sort.SliceStable(equipment, func(i, j int) bool { return cellLess(equipment[i].Cell(), equipment[j].Cell()) })

	return &WeekView{
		Teacher:       sn.teacher,
		Week:          sn.week,
		WeekStartDate: sn.settings.WeekStartDate,
		State:         sn.state,
		Rows:          rows,
		Equipment:     equipment,
		Subjects:      sn.settings.Subjects,
		Classes:       sn.settings.Classes,
	}
}

func cellLess(a, b domain.Cell) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Period < b.Period
}
