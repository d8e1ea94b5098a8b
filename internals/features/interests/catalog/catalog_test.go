package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahasiswa_backend/internals/helpers/logger"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFileCatalog_Skills(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SkillsFile, `[
		{"Hard Skills": "Python", "Soft Skills": "Komunikasi"},
		{"Hard Skills": "SQL", "Soft Skills": ""},
		{"Hard Skills": "Python", "Soft Skills": "Kepemimpinan"},
		{"Hard Skills": null, "Soft Skills": "Komunikasi"},
		{"Other": 1}
	]`)

	c := NewFileCatalog(dir, logger.NewTestLogger(t))
	got := c.Skills()

	assert.Equal(t, []string{"Python", "SQL"}, got.HardSkills)
	assert.Equal(t, []string{"Komunikasi", "Kepemimpinan"}, got.SoftSkills)
}

func TestFileCatalog_CourseNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CoursesFile, `[
		{"NAMA MK": "Deep Learning"},
		{"NAMA MK": ""},
		{"KODE": "CII1A3"},
		{"NAMA MK": "Cloud Computing"}
	]`)

	c := NewFileCatalog(dir, logger.NewNoOpLogger())

	assert.Equal(t, []string{"Deep Learning", "Cloud Computing"}, c.CourseNames())
}

func TestFileCatalog_MissingOrBrokenFilesDegradeToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CoursesFile, `{not json`)

	c := NewFileCatalog(dir, logger.NewNoOpLogger())

	skills := c.Skills()
	assert.NotNil(t, skills.HardSkills)
	assert.Empty(t, skills.HardSkills)
	assert.Empty(t, skills.SoftSkills)

	courses := c.CourseNames()
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestFileCatalog_ReadsFreshEachCall(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CoursesFile, `[{"NAMA MK": "Basis Data"}]`)
	c := NewFileCatalog(dir, logger.NewNoOpLogger())
	require.Equal(t, []string{"Basis Data"}, c.CourseNames())

	writeFile(t, dir, CoursesFile, `[{"NAMA MK": "Basis Data"}, {"NAMA MK": "Data Mining"}]`)
	assert.Equal(t, []string{"Basis Data", "Data Mining"}, c.CourseNames())
}

func TestFileCatalog_Courses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CoursesFile, `[
		{"NAMA MK": "Kalkulus", "TINGKAT": "I", "SKS": 3},
		{"NAMA MK": "Basis Data", "TINGKAT": 2, "SKS": "3"},
		{"NAMA MK": "Magang"},
		{"NAMA MK": "", "TINGKAT": "II", "SKS": 2}
	]`)

	c := NewFileCatalog(dir, logger.NewNoOpLogger())

	assert.Equal(t, []Course{
		{NamaMK: "Kalkulus", Tingkat: 1, SKS: 3},
		{NamaMK: "Basis Data", Tingkat: 2, SKS: 3},
		{NamaMK: "Magang"},
	}, c.Courses())
}

func TestFileCatalog_CoursesMissingFileIsEmpty(t *testing.T) {
	c := NewFileCatalog(t.TempDir(), logger.NewNoOpLogger())

	got := c.Courses()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseTingkat(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2", 2, true},
		{" II ", 2, true},
		{"iv", 4, true},
		{"Tingkat III", 3, true},
		{"0", 0, false},
		{"-1", -1, false},
		{"dua", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTingkat(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
