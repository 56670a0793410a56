package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/export"
	"github.com/alexanderramin/lessonlog/internal/projection"
	"github.com/alexanderramin/lessonlog/internal/reconcile"
	"github.com/alexanderramin/lessonlog/internal/weekdate"
	"github.com/google/uuid"
)

type weekService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWeekService(uow db.UnitOfWork, observers ...UseCaseObserver) WeekService {
	return &weekService{
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *weekService) observe(ctx context.Context, name string, startedAt time.Time, view **WeekView, err error) {
	fields := map[string]any{}
	if v := *view; v != nil {
		fields["teacher"] = v.Teacher
		fields["week"] = v.Week
		fields["state"] = string(v.State)
		fields["rows"] = len(v.Rows)
		fields["equipment_rows"] = len(v.Equipment)
		fields["populated"] = v.Populated
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// openWithin loads the current week and generates it on the first visit.
func openWithin(ctx context.Context, st stores) (*WeekView, error) {
	sn, err := st.load(ctx)
	if err != nil {
		return nil, err
	}
	populated, err := sn.autoPopulate()
	if err != nil {
		return nil, fmt.Errorf("populating week %d: %w", sn.week, err)
	}
	if populated {
		if err := st.save(ctx, sn); err != nil {
			return nil, err
		}
	}
	v := sn.view()
	v.Populated = populated
	return v, nil
}

func (s *weekService) Open(ctx context.Context) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "open-week", startedAt, &view, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		v, err := openWithin(ctx, newStores(tx))
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *weekService) Shift(ctx context.Context, delta int) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "shift-week", startedAt, &view, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		settings, err := st.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		week, start, err := reconcile.ShiftWeek(settings.CurrentWeek, settings.WeekStartDate, delta)
		if err != nil {
			if errors.Is(err, reconcile.ErrWeekOutOfRange) {
				return fmt.Errorf("%w: week %d", ErrInvalidWeek, settings.CurrentWeek+delta)
			}
			return err
		}
		settings.CurrentWeek, settings.WeekStartDate = week, start
		if err := st.settings.Upsert(ctx, settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		v, err := openWithin(ctx, st)
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Goto jumps to week. A non-empty startDate is aligned to its Monday;
// otherwise the stored start date moves by the same number of weeks.
func (s *weekService) Goto(ctx context.Context, week int, startDate string) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "goto-week", startedAt, &view, err) }()

	if week < 1 {
		return nil, fmt.Errorf("%w: week %d", ErrInvalidWeek, week)
	}
	startDate = strings.TrimSpace(startDate)
	if startDate != "" && !weekdate.Valid(startDate) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, startDate)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		settings, err := st.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if startDate != "" {
			settings.WeekStartDate = weekdate.MondayOf(startDate)
		} else {
			settings.WeekStartDate = weekdate.ShiftWeeks(settings.WeekStartDate, week-settings.CurrentWeek)
		}
		settings.CurrentWeek = week
		if err := st.settings.Upsert(ctx, settings); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		v, err := openWithin(ctx, st)
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ApplyTemplate regenerates the current week from the timetable, replacing
// whatever the week held. Notes and row ids survive by cell.
func (s *weekService) ApplyTemplate(ctx context.Context) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "apply-template", startedAt, &view, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		sn, err := st.load(ctx)
		if err != nil {
			return err
		}
		if len(sn.slots) == 0 {
			return fmt.Errorf("%w %q", ErrEmptyTemplate, sn.teacher)
		}

		previous := make(map[domain.Cell]domain.ScheduleRow)
		for _, r := range reconcile.WeekSchedule(sn.schedule, sn.teacher, sn.week) {
			previous[r.Cell()] = r
		}
		rows := sn.generate()
		for i, r := range rows {
			if p, ok := previous[r.Cell()]; ok {
				rows[i].ID = p.ID
				rows[i].Notes = p.Notes
			}
		}

		sn.schedule = reconcile.ReplaceTeacherWeekSchedule(sn.schedule, sn.teacher, sn.week, rows)
		sn.projectWeek()
		if err := sn.transition(domain.EventApply); err != nil {
			return err
		}
		if err := st.save(ctx, sn); err != nil {
			return err
		}
		view = sn.view()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *weekService) Clear(ctx context.Context) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "clear-week", startedAt, &view, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		sn, err := st.load(ctx)
		if err != nil {
			return err
		}
		sn.schedule = reconcile.ClearWeek(sn.schedule, sn.teacher, sn.week)
		sn.equipment = reconcile.ClearWeekEquipment(sn.equipment, sn.teacher, sn.week)
		if err := sn.transition(domain.EventClear); err != nil {
			return err
		}
		if err := st.save(ctx, sn); err != nil {
			return err
		}
		view = sn.view()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func validCell(day domain.Weekday, period int) error {
	if !day.Valid() || !domain.ValidPeriod(period) {
		return fmt.Errorf("%w: day %d period %d", ErrInvalidCell, day, period)
	}
	return nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// EditCell writes edit into the current week, creating the row when the cell
// is empty. Changing the subject or PPCT number looks the lesson up again,
// and the cell's equipment line is re-projected.
func (s *weekService) EditCell(ctx context.Context, edit CellEdit) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "edit-cell", startedAt, &view, err) }()

	if err := validCell(edit.Day, edit.Period); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		sn, err := st.load(ctx)
		if err != nil {
			return err
		}

		key := sn.key(edit.Day, edit.Period)
		row, ok := reconcile.FindSchedule(sn.schedule, key)
		if !ok {
			row = domain.ScheduleRow{
				ID:          uuid.New().String(),
				Week:        sn.week,
				Day:         edit.Day,
				Date:        weekdate.DateOf(sn.settings.WeekStartDate, edit.Day),
				Period:      edit.Period,
				TeacherName: sn.teacher,
			}
		}
		row.Subject = domain.StrFromPtr(row.Subject, trimmed(edit.Subject))
		row.ClassName = domain.StrFromPtr(row.ClassName, trimmed(edit.ClassName))
		row.PPCTNumber = domain.StrFromPtr(row.PPCTNumber, trimmed(edit.PPCTNumber))
		row.LessonName = domain.StrFromPtr(row.LessonName, trimmed(edit.LessonName))
		row.Notes = domain.StrFromPtr(row.Notes, edit.Notes)
		if edit.lookupNeeded() {
			if name, found := sn.lessons.Lookup(row.Subject, row.PPCTNumber); found {
				row.LessonName = name
			}
		}
		sn.schedule = reconcile.UpsertSchedule(sn.schedule, row)

		var prev *domain.EquipmentRow
		if e, found := reconcile.FindEquipment(sn.equipment, key); found {
			prev = &e
		}
		if eq, keep := projection.ProjectRow(row, prev, sn.equipIdx); keep && row.HasLesson() {
			sn.equipment = reconcile.UpsertEquipment(sn.equipment, eq)
		} else {
			sn.equipment = reconcile.RemoveEquipment(sn.equipment, key)
		}

		if err := sn.transition(domain.EventEdit); err != nil {
			return err
		}
		if err := st.save(ctx, sn); err != nil {
			return err
		}
		view = sn.view()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// EditEquipment overrides the equipment line of a cell that holds a lesson.
func (s *weekService) EditEquipment(ctx context.Context, edit EquipmentEdit) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "edit-equipment", startedAt, &view, err) }()

	if err := validCell(edit.Day, edit.Period); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		sn, err := st.load(ctx)
		if err != nil {
			return err
		}

		key := sn.key(edit.Day, edit.Period)
		row, ok := reconcile.FindSchedule(sn.schedule, key)
		if !ok || !row.HasLesson() {
			return fmt.Errorf("%w: %s period %d", ErrNoLesson, edit.Day, edit.Period)
		}

		eq, found := reconcile.FindEquipment(sn.equipment, key)
		if !found {
			eq, _ = projection.ProjectRow(row, nil, sn.equipIdx)
		}
		eq.EquipmentName = domain.StrFromPtr(eq.EquipmentName, trimmed(edit.Name))
		eq.Quantity = projection.DisplayQuantity(eq.EquipmentName, domain.StrFromPtr(eq.Quantity, trimmed(edit.Quantity)))
		sn.equipment = reconcile.UpsertEquipment(sn.equipment, eq)

		if err := sn.transition(domain.EventEdit); err != nil {
			return err
		}
		if err := st.save(ctx, sn); err != nil {
			return err
		}
		view = sn.view()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Export opens the current week and writes it to w as a workbook.
func (s *weekService) Export(ctx context.Context, w io.Writer) (view *WeekView, err error) {
	startedAt := time.Now().UTC()
	defer func() { s.observe(ctx, "export-week", startedAt, &view, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		v, err := openWithin(ctx, newStores(tx))
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}

	sheet := export.WeekSheet{
		Teacher:       view.Teacher,
		Week:          view.Week,
		WeekStartDate: view.WeekStartDate,
		Rows:          view.Rows,
		Equipment:     view.Equipment,
	}
	if err := export.WriteWeekWorkbook(w, sheet); err != nil {
		return nil, fmt.Errorf("exporting week %d: %w", view.Week, err)
	}
	return view, nil
}
