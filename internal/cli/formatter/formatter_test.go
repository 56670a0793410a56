package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(stripANSI(s), "\n"), "\n")
}

func TestRenderTable_AlignsOnVisibleWidth(t *testing.T) {
	out := RenderTable([]string{"Môn", "Lớp"}, [][]string{
		{"Tiếng Việt", "6A"},
		{StyleGreen.Render("Toán"), "10B"},
	})
	got := lines(out)
	require.Len(t, got, 4)
	assert.Equal(t, "Môn         Lớp", got[0])
	assert.Equal(t, "Tiếng Việt  6A", got[2])
	assert.Equal(t, "Toán        10B", got[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Phép cộng", Truncate("Phép cộng", 20))
	assert.Equal(t, "Phép…", Truncate("Phép cộng", 5))
	assert.Equal(t, "…", Truncate("Phép cộng", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestWeekHeader_Title(t *testing.T) {
	assert.Equal(t, "Tuần 3 · 16/09 - 21/09", WeekHeader{Week: 3, WeekStartDate: "2024-09-16"}.Title())
	assert.Equal(t, "Tuần 3", WeekHeader{Week: 3}.Title())
}

func TestFormatWeek(t *testing.T) {
	h := WeekHeader{Teacher: "Nguyễn Thị Lan", Week: 1, WeekStartDate: "2024-09-02", State: domain.WeekGenerated}
	out := stripANSI(FormatWeek(h, []domain.ScheduleRow{
		{Week: 1, Day: domain.Monday, Date: "02/09", Period: 6, Subject: "Văn", ClassName: "6A", PPCTNumber: "3"},
		{Week: 1, Day: domain.Monday, Date: "02/09", Period: 1, Subject: "Toán", ClassName: "6A", PPCTNumber: "1", LessonName: "Tập hợp"},
		{Week: 1, Day: domain.Tuesday, Date: "03/09", Period: 2, Subject: "Toán", ClassName: "6B", PPCTNumber: "2", Notes: "kiểm tra"},
	}))

	assert.Contains(t, out, "TUẦN 1 · 02/09 - 07/09")
	assert.Contains(t, out, "Nguyễn Thị Lan")
	assert.Contains(t, out, "● GENERATED")

	got := lines(out)
	var body []string
	for _, l := range got {
		if strings.Contains(l, "Toán") || strings.Contains(l, "Văn") {
			body = append(body, l)
		}
	}
	require.Len(t, body, 3)
	assert.True(t, strings.HasPrefix(body[0], "Thứ 2"), "first lesson of the day carries the day label")
	assert.Contains(t, body[0], "Tập hợp")
	assert.False(t, strings.HasPrefix(body[1], "Thứ 2"), "later lessons of the day leave it blank")
	assert.Contains(t, body[1], "Chiều")
	assert.Contains(t, body[2], "kiểm tra")
}

func TestFormatWeek_Empty(t *testing.T) {
	out := stripANSI(FormatWeek(WeekHeader{Teacher: "Lan", Week: 2}, nil))
	assert.Contains(t, out, "No lessons recorded")
	assert.Contains(t, out, "● EMPTY")
}

func TestFormatEquipment(t *testing.T) {
	out := stripANSI(FormatEquipment(WeekHeader{Teacher: "Lan", Week: 1}, []domain.EquipmentRow{
		{Day: domain.Monday, Date: "02/09", Period: 1, Subject: "Toán", EquipmentName: "Máy chiếu", Quantity: "2"},
		{Day: domain.Monday, Date: "02/09", Period: 2, Subject: "Văn"},
	}))
	assert.Contains(t, out, "Máy chiếu")
	assert.Contains(t, out, "Thiết bị")
	assert.Contains(t, out, "Văn")
}

func TestFormatTimetable(t *testing.T) {
	out := stripANSI(FormatTimetable([]domain.TimetableSlot{
		{DayOfWeek: "thu 2", Period: 5, Subject: "Toán", ClassName: "6A", TeacherName: "Lan"},
		{DayOfWeek: "Chủ nhật", Period: 1, Subject: "Văn", ClassName: "6A", TeacherName: "Bình"},
	}))
	assert.Contains(t, out, "Thứ 2")
	assert.Contains(t, out, "Chủ nhật ?")
	assert.Contains(t, out, "Giáo viên")

	single := stripANSI(FormatTimetable([]domain.TimetableSlot{
		{DayOfWeek: "Thứ 3", Period: 1, Subject: "Toán", TeacherName: "Lan"},
	}))
	assert.NotContains(t, single, "Giáo viên")
	assert.Contains(t, stripANSI(FormatTimetable(nil)), "timetable is empty")
}

func TestFormatSettings(t *testing.T) {
	out := stripANSI(FormatSettings(&domain.Settings{
		CurrentWeek: 4, WeekStartDate: "2024-09-23", ActiveTeacher: "Lan",
		Subjects: []string{"Toán", "Văn"},
	}))
	assert.Contains(t, out, "Teacher: Lan")
	assert.Contains(t, out, "Week:    4")
	assert.Contains(t, out, "Toán, Văn")
	assert.NotContains(t, out, "Classes:")

	assert.Contains(t, stripANSI(FormatSettings(&domain.Settings{CurrentWeek: 1})), "teacher use NAME")
}

func TestFormatCatalogs(t *testing.T) {
	out := stripANSI(FormatCatalogs(
		[]domain.LessonCatalogEntry{{Subject: "Toán"}, {Subject: "toán"}, {Subject: "Địa lý"}},
		[]domain.EquipmentCatalogEntry{{Subject: "Toán"}},
	))
	got := lines(out)
	require.GreaterOrEqual(t, len(got), 4)
	assert.True(t, strings.HasPrefix(got[2], "Địa lý"))
	assert.True(t, strings.HasPrefix(got[3], "Toán"))
	assert.Contains(t, got[3], "2")
	assert.Contains(t, out, "3 lessons, 1 equipment entries")
	assert.Contains(t, stripANSI(FormatCatalogs(nil, nil)), "No catalogs")
}

func TestStateIndicator(t *testing.T) {
	assert.Equal(t, "● EDITED", stripANSI(StateIndicator(domain.WeekEdited)))
	assert.Equal(t, "● EMPTY", stripANSI(StateIndicator("")))
}
