package reconcile

import (
	"testing"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/alexanderramin/lessonlog/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAutoPopulate(t *testing.T) {
	tests := []struct {
		name    string
		state   domain.WeekState
		hasData bool
		slots   int
		want    bool
	}{
		{"fresh week with template", domain.WeekEmpty, false, 3, true},
		{"unknown state reads as empty", "", false, 1, true},
		{"rows already present", domain.WeekEmpty, true, 3, false},
		{"empty template", domain.WeekEmpty, false, 0, false},
		{"generated week", domain.WeekGenerated, false, 3, false},
		{"edited week", domain.WeekEdited, false, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAutoPopulate(tt.state, tt.hasData, tt.slots))
		})
	}
}

func TestAutoPopulate_SecondVisitIsNoop(t *testing.T) {
	slots := []domain.TimetableSlot{
		{DayOfWeek: "Thứ 2", Period: 1, Subject: "Toán", ClassName: "6A", TeacherName: "A"},
		{DayOfWeek: "Thứ 3", Period: 2, Subject: "Văn", ClassName: "6A", TeacherName: "A"},
	}
	var global []domain.ScheduleRow
	state := domain.WeekEmpty

	visit := func() {
		if !ShouldAutoPopulate(state, HasData(global, "A", 1), len(slots)) {
			return
		}
		rows := generation.GenerateWeek(generation.Input{TeacherName: "A", Week: 1, Slots: slots, History: global})
		global = ReplaceTeacherWeekSchedule(global, "A", 1, rows)
		next, err := Transition(state, domain.EventGenerate)
		require.NoError(t, err)
		state = next
	}

	visit()
	first := append([]domain.ScheduleRow(nil), global...)
	visit()

	assert.Len(t, global, 2)
	assert.Equal(t, first, global)
	assert.Equal(t, domain.WeekGenerated, state)
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from    domain.WeekState
		event   domain.WeekEvent
		want    domain.WeekState
		wantErr bool
	}{
		{domain.WeekEmpty, domain.EventGenerate, domain.WeekGenerated, false},
		{domain.WeekGenerated, domain.EventGenerate, domain.WeekGenerated, true},
		{domain.WeekEdited, domain.EventGenerate, domain.WeekEdited, true},
		{domain.WeekGenerated, domain.EventEdit, domain.WeekEdited, false},
		{domain.WeekEmpty, domain.EventEdit, domain.WeekEdited, false},
		{domain.WeekEdited, domain.EventEdit, domain.WeekEdited, false},
		{domain.WeekEdited, domain.EventApply, domain.WeekGenerated, false},
		{domain.WeekEmpty, domain.EventApply, domain.WeekGenerated, false},
		{domain.WeekEdited, domain.EventClear, domain.WeekEmpty, false},
		{"", domain.EventGenerate, domain.WeekGenerated, false},
		{domain.WeekGenerated, "rewind", domain.WeekGenerated, true},
		{"stale", domain.EventEdit, "stale", true},
	}
	for _, tt := range tests {
		got, err := Transition(tt.from, tt.event)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidTransition, "%s + %s", tt.from, tt.event)
		} else {
			require.NoError(t, err, "%s + %s", tt.from, tt.event)
		}
		assert.Equal(t, tt.want, got, "%s + %s", tt.from, tt.event)
	}
}

func TestClearWeek_KeepsNotesAndRows(t *testing.T) {
	global := globalSchedule()

	got := ClearWeek(global, "A", 1)

	require.Len(t, got, len(global))
	cleared := got[0]
	assert.Empty(t, cleared.Subject)
	assert.Empty(t, cleared.ClassName)
	assert.Empty(t, cleared.PPCTNumber)
	assert.Empty(t, cleared.LessonName)
	assert.Equal(t, "ghi chú", cleared.Notes)
	assert.Equal(t, global[0].ID, cleared.ID)

	assert.Equal(t, global[1], got[1], "other teacher untouched")
	assert.Equal(t, global[2], got[2], "other week untouched")
	assert.Equal(t, "Toán", global[0].Subject, "input not mutated")
}

func TestClearWeekEquipment(t *testing.T) {
	global := []domain.EquipmentRow{
		{Week: 1, Day: domain.Monday, Period: 1, EquipmentName: "Máy chiếu", TeacherName: "A"},
		{Week: 1, Day: domain.Monday, Period: 1, EquipmentName: "Bảng", TeacherName: "B"},
		{Week: 2, Day: domain.Monday, Period: 1, EquipmentName: "Loa", TeacherName: "A"},
	}
	got := ClearWeekEquipment(global, "A", 1)
	require.Len(t, got, 2)
	assert.Equal(t, "Bảng", got[0].EquipmentName)
	assert.Equal(t, "Loa", got[1].EquipmentName)
}

func TestShiftWeek(t *testing.T) {
	week, start, err := ShiftWeek(1, "2024-09-02", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, week)
	assert.Equal(t, "2024-09-09", start)

	week, start, err = ShiftWeek(5, "2024-10-07", -3)
	require.NoError(t, err)
	assert.Equal(t, 2, week)
	assert.Equal(t, "2024-09-16", start)

	week, start, err = ShiftWeek(1, "2024-09-02", -1)
	require.ErrorIs(t, err, ErrWeekOutOfRange)
	assert.Equal(t, 1, week)
	assert.Equal(t, "2024-09-02", start)

	week, start, err = ShiftWeek(3, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, week)
	assert.Empty(t, start)
}

func TestDerivePickLists(t *testing.T) {
	slots := []domain.TimetableSlot{
		{Subject: "Văn", ClassName: "7B", TeacherName: "Lan"},
		{Subject: "Địa lý", ClassName: "6A", TeacherName: "Lan"},
		{Subject: "toán", ClassName: "6A", TeacherName: "lan"},
		{Subject: "Toán ", ClassName: "6 A", TeacherName: "Lan"},
		{Subject: "Anh", ClassName: "", TeacherName: "Lan"},
		{Subject: "Hóa", ClassName: "9C", TeacherName: "Hùng"},
	}

	got := DerivePickLists(slots, "Lan")

	assert.Equal(t, []string{"Anh", "Địa lý", "toán", "Văn"}, got.Subjects)
	assert.Equal(t, []string{"6A", "7B"}, got.Classes)
	assert.Empty(t, DerivePickLists(slots, "").Subjects)
}
