package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/lessonlog/internal/db"
	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/reconcile"
)

type teacherService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTeacherService(uow db.UnitOfWork, observers ...UseCaseObserver) TeacherService {
	return &teacherService{
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *teacherService) Current(ctx context.Context) (*domain.Settings, error) {
	var settings *domain.Settings
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		settings, err = newStores(tx).settings.Get(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

// Use makes name the active teacher and refreshes the subject and class
// pick-lists from that teacher's timetable.
func (s *teacherService) Use(ctx context.Context, name string) (settings *domain.Settings, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"teacher": name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "switch-teacher",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrNoActiveTeacher)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		current, err := st.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		slots, err := st.timetable.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("loading timetable: %w", err)
		}
		current.ActiveTeacher = name
		applyPickLists(current, slots)
		if err := st.settings.Upsert(ctx, current); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fields["subjects"] = len(current.Subjects)
		fields["classes"] = len(current.Classes)
		settings = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func applyPickLists(settings *domain.Settings, slots []domain.TimetableSlot) {
	lists := reconcile.DerivePickLists(slots, settings.ActiveTeacher)
	settings.Subjects = lists.Subjects
	settings.Classes = lists.Classes
}

// Timetable lists the active teacher's slots, or every slot when all is set,
// ordered by teacher, day and period.
func (s *teacherService) Timetable(ctx context.Context, all bool) ([]domain.TimetableSlot, error) {
	var slots []domain.TimetableSlot
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		st := newStores(tx)
		loaded, err := st.timetable.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("loading timetable: %w", err)
		}
		if all {
			slots = loaded
			return nil
		}
		settings, err := st.settings.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if strings.TrimSpace(settings.ActiveTeacher) == "" {
			return ErrNoActiveTeacher
		}
		slots = domain.MatchTeacherSlots(loaded, settings.ActiveTeacher)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if ka, kb := domain.TeacherKey(a.TeacherName), domain.TeacherKey(b.TeacherName); ka != kb {
			return ka < kb
		}
		dayA, _ := a.Weekday()
		dayB, _ := b.Weekday()
		if dayA != dayB {
			return dayA < dayB
		}
		return a.Period < b.Period
	})
	return slots, nil
}
