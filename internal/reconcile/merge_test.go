package reconcile

import (
	"testing"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(teacher string, week int, day domain.Weekday, period int, subject string) domain.ScheduleRow {
	return domain.ScheduleRow{
		ID:          teacher + "-" + subject,
		Week:        week,
		Day:         day,
		Period:      period,
		Subject:     subject,
		ClassName:   "6A",
		PPCTNumber:  "1",
		LessonName:  "Bài 1",
		Notes:       "ghi chú",
		TeacherName: teacher,
	}
}

func globalSchedule() []domain.ScheduleRow {
	return []domain.ScheduleRow{
		row("A", 1, domain.Monday, 1, "Toán"),
		row("B", 1, domain.Monday, 1, "Văn"),
		row("A", 2, domain.Monday, 1, "Toán"),
		row("B", 2, domain.Tuesday, 3, "Sử"),
	}
}

func TestMergeTeacherSchedule_PartitionSafety(t *testing.T) {
	global := globalSchedule()
	before := append([]domain.ScheduleRow(nil), global...)

	updated := []domain.ScheduleRow{
		row("someone else", 3, domain.Friday, 2, "Lý"),
	}
	got := MergeTeacherSchedule(global, "a", updated)

	assert.Equal(t, before, global, "input must not be mutated")
	require.Len(t, got, 3)
	assert.Equal(t, before[1], got[0], "B rows are byte-for-byte unchanged")
	assert.Equal(t, before[3], got[1])
	assert.Equal(t, "a", got[2].TeacherName, "updated rows are re-tagged")
	assert.Equal(t, "Lý", got[2].Subject)
	assert.Len(t, TeacherSchedule(got, "A"), 1, "teacher lookup is case-insensitive")
}

func TestReplaceTeacherWeekSchedule_KeepsOtherWeeks(t *testing.T) {
	global := globalSchedule()

	got := ReplaceTeacherWeekSchedule(global, "A", 2, []domain.ScheduleRow{
		row("A", 2, domain.Thursday, 4, "Tin"),
	})

	require.Len(t, got, 4)
	assert.Equal(t, global[0], got[0], "week 1 of A survives")
	weekTwo := WeekSchedule(got, "A", 2)
	require.Len(t, weekTwo, 1)
	assert.Equal(t, "Tin", weekTwo[0].Subject)
	assert.Len(t, TeacherSchedule(got, "B"), 2)
}

func TestUpsertSchedule_ReplacesByKey(t *testing.T) {
	global := globalSchedule()

	edited := global[2]
	edited.Subject = "Hình học"
	added := row("A", 2, domain.Saturday, 5, "Tin")

	got := UpsertSchedule(global, edited, added)

	require.Len(t, got, 5)
	assert.Equal(t, "Hình học", got[2].Subject, "position is kept")
	assert.Equal(t, added, got[4])
	assert.Equal(t, "Toán", global[2].Subject)

	_, ok := FindSchedule(got, added.Key())
	assert.True(t, ok)
}

func TestUpsertSchedule_CollapsesStoredDuplicates(t *testing.T) {
	first := row("A", 1, domain.Monday, 1, "Toán")
	first.ID = "r1"
	second := row("A", 1, domain.Monday, 1, "Văn")
	second.ID = "r2"
	other := row("B", 1, domain.Monday, 1, "Sử")
	global := []domain.ScheduleRow{first, other, second}

	found, ok := FindSchedule(global, first.Key())
	require.True(t, ok)
	assert.Equal(t, "r1", found.ID)

	found.Notes = "đã dạy"
	got := UpsertSchedule(global, found)

	require.Len(t, got, 2)
	assert.Equal(t, found, got[0])
	assert.Equal(t, other, got[1])
	ids := map[string]int{}
	for _, r := range got {
		ids[r.ID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "id %s", id)
	}
	assert.Len(t, global, 3, "input untouched")
}

func TestUpsertSchedule_KeyIgnoresTeacherCase(t *testing.T) {
	global := []domain.ScheduleRow{row("Lan", 1, domain.Monday, 1, "Toán")}
	edited := row(" lan", 1, domain.Monday, 1, "Văn")

	got := UpsertSchedule(global, edited)

	require.Len(t, got, 1)
	assert.Equal(t, "Văn", got[0].Subject)
}

func TestEquipmentMergeAndRemove(t *testing.T) {
	global := []domain.EquipmentRow{
		{ID: "a1", Week: 1, Day: domain.Monday, Period: 1, EquipmentName: "Máy chiếu", TeacherName: "A"},
		{ID: "b1", Week: 1, Day: domain.Monday, Period: 1, EquipmentName: "Bảng phụ", TeacherName: "B"},
		{ID: "a2", Week: 2, Day: domain.Monday, Period: 1, EquipmentName: "Kính lúp", TeacherName: "A"},
	}

	merged := MergeTeacherEquipment(global, "A", []domain.EquipmentRow{global[0]})
	require.Len(t, merged, 2)
	assert.Equal(t, "b1", merged[0].ID)

	week := ReplaceTeacherWeekEquipment(global, "A", 1, nil)
	assert.Len(t, week, 2)
	assert.Len(t, WeekEquipment(week, "A", 2), 1)

	removed := RemoveEquipment(global, global[2].Key())
	assert.Len(t, removed, 2)
	_, ok := FindEquipment(removed, global[2].Key())
	assert.False(t, ok)

	up := UpsertEquipment(global, domain.EquipmentRow{ID: "a1", Week: 1, Day: domain.Monday, Period: 1, EquipmentName: "Loa", TeacherName: "A"})
	assert.Equal(t, "Loa", up[0].EquipmentName)
	assert.Len(t, TeacherEquipment(up, "A"), 2)
}

func TestHasData(t *testing.T) {
	global := globalSchedule()
	assert.True(t, HasData(global, "A", 1))
	assert.True(t, HasData(global, " b ", 2))
	assert.False(t, HasData(global, "A", 3))
	assert.False(t, HasData(global, "C", 1))
}
