package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lessonlog/internal/importer"
	"github.com/alexanderramin/lessonlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func timetable(entries ...importer.TimetableEntryImport) *importer.TimetableImport {
	return &importer.TimetableImport{Entries: entries}
}

func entry(day string, period int, subject, class, teacher string) importer.TimetableEntryImport {
	return importer.TimetableEntryImport{Day: day, Period: period, Subject: subject, Class: class, Teacher: teacher}
}

func TestImportService_ImportTimetable_ReplacesOnlyNamedTeachers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTimetable(t,
		testutil.NewTestSlot("Thứ 2", 1, "Toán"),
		testutil.NewTestSlot("Thứ 4", 1, "Hóa", testutil.WithSlotTeacher("Trần Văn Bình")),
	)

	result, err := f.imports.ImportTimetableFromSchema(ctx, timetable(
		entry("Thứ 3", 2, "Văn", "6A", "nguyễn thị lan"),
		entry("Thứ 5", 4, "Văn", "6B", "Nguyễn Thị Lan"),
	), false)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SlotCount)
	assert.Equal(t, 1, result.Replaced)
	assert.Equal(t, []string{"nguyễn thị lan"}, result.Teachers)

	all, err := f.teachers.Timetable(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Hóa", all[2].Subject, "other teachers' slots survive")
}

func TestImportService_ImportTimetable_ReplaceAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTimetable(t,
		testutil.NewTestSlot("Thứ 2", 1, "Toán"),
		testutil.NewTestSlot("Thứ 4", 1, "Hóa", testutil.WithSlotTeacher("Trần Văn Bình")),
	)

	result, err := f.imports.ImportTimetableFromSchema(ctx, timetable(
		entry("Thứ 3", 2, "Văn", "6A", testutil.DefaultTeacher),
	), true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Replaced)

	all, err := f.teachers.Timetable(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportService_ImportTimetable_ActivatesSoleTeacher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.imports.ImportTimetableFromSchema(ctx, timetable(
		entry("Thứ 2", 1, "Toán", "6A", testutil.DefaultTeacher),
		entry("Thứ 3", 1, "Văn", "7B", testutil.DefaultTeacher),
	), false)
	require.NoError(t, err)

	settings, err := f.teachers.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.DefaultTeacher, settings.ActiveTeacher)
	assert.Equal(t, []string{"Toán", "Văn"}, settings.Subjects)
	assert.Equal(t, []string{"6A", "7B"}, settings.Classes)
}

func TestImportService_ImportTimetable_ValidationRejectsWholeFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTimetable(t, testutil.NewTestSlot("Thứ 2", 1, "Toán"))

	_, err := f.imports.ImportTimetableFromSchema(ctx, timetable(
		entry("Thứ 3", 9, "Văn", "6A", testutil.DefaultTeacher),
		entry("Chủ nhật", 1, "Văn", "6A", ""),
	), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")

	all, err := f.teachers.Timetable(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.False(t, f.observer.last().Success)
}

func TestImportService_ImportTimetable_FromFile(t *testing.T) {
	f := newFixture(t)
	path := writeFile(t, "tkb.json", `[
		{"day": "Thứ Hai", "period": 1, "subject": "Toán", "class": "6A", "teacher": "Nguyễn Thị Lan"}
	]`)

	result, err := f.imports.ImportTimetable(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SlotCount)

	_, err = f.imports.ImportTimetable(context.Background(), filepath.Join(t.TempDir(), "tkb.txt"), false)
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)
}

func TestImportService_ImportCatalogs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lessons := writeFile(t, "ppct.json", `{"lessons": [
		{"subject": "Toán", "lesson_number": "1", "lesson_name": "Tập hợp"},
		{"subject": "Toán", "lesson_number": "2", "lesson_name": "Phép cộng"}
	]}`)
	n, err := f.imports.ImportLessonCatalog(ctx, lessons)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	equipment := writeFile(t, "thietbi.json", `{"equipment": [
		{"subject": "Toán", "lesson_number": "1", "equipment_name": "Thước kẻ"}
	]}`)
	n, err = f.imports.ImportEquipmentCatalog(ctx, equipment)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	summary, err := f.imports.Catalogs(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Lessons, 2)
	require.Len(t, summary.Equipment, 1)
	assert.Equal(t, "1", summary.Equipment[0].Quantity)

	// A second import replaces the catalog wholesale.
	lessons = writeFile(t, "ppct2.json", `{"lessons": [
		{"subject": "Văn", "lesson_number": "1", "lesson_name": "Thánh Gióng"}
	]}`)
	_, err = f.imports.ImportLessonCatalog(ctx, lessons)
	require.NoError(t, err)
	summary, err = f.imports.Catalogs(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Lessons, 1)
	assert.Equal(t, "Văn", summary.Lessons[0].Subject)
}

func TestImportService_ImportLessonCatalog_Invalid(t *testing.T) {
	f := newFixture(t)
	path := writeFile(t, "ppct.json", `{"lessons": [{"subject": "Toán", "lesson_number": "", "lesson_name": "Tập hợp"}]}`)

	_, err := f.imports.ImportLessonCatalog(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (1 errors)")
}
