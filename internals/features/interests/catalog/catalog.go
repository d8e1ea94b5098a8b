// Package catalog membaca data referensi statis (skill & mata kuliah) dari
// file JSON. File dibaca ulang setiap pemanggilan, tidak ada cache.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"mahasiswa_backend/internals/helpers/logger"
	"mahasiswa_backend/internals/metrics"
)

const (
	SkillsFile  = "Skills.json"
	CoursesFile = "Nama_MK_All.json"

	colHardSkills = "Hard Skills"
	colSoftSkills = "Soft Skills"
	colCourseName = "NAMA MK"
	colLevel      = "TINGKAT"
	colCredits    = "SKS"
)

type SkillOptions struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

// Course: satu baris katalog mata kuliah. Tingkat/SKS 0 kalau kolomnya kosong.
type Course struct {
	NamaMK  string `json:"nama_mk"`
	Tingkat int    `json:"tingkat"`
	SKS     int    `json:"sks"`
}

type FileCatalog struct {
	dir string
	log logger.Logger
}

func NewFileCatalog(dir string, log logger.Logger) *FileCatalog {
	return &FileCatalog{dir: dir, log: log.With(map[string]interface{}{"component": "catalog"})}
}

// Skills mengembalikan daftar hard/soft skill unik (urutan kemunculan dipertahankan).
// File rusak/hilang → dua list kosong, error hanya di-log.
func (f *FileCatalog) Skills() SkillOptions {
	rows, err := f.readRows(SkillsFile)
	if err != nil {
		return SkillOptions{HardSkills: []string{}, SoftSkills: []string{}}
	}
	return SkillOptions{
		HardSkills: uniqueColumn(rows, colHardSkills),
		SoftSkills: uniqueColumn(rows, colSoftSkills),
	}
}

// CourseNames mengembalikan semua nama mata kuliah yang valid sebagai target rekomendasi.
func (f *FileCatalog) CourseNames() []string {
	rows, err := f.readRows(CoursesFile)
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if s := stringCell(r, colCourseName); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Courses mengembalikan seluruh baris katalog mata kuliah dengan tingkat dan SKS.
func (f *FileCatalog) Courses() []Course {
	rows, err := f.readRows(CoursesFile)
	if err != nil {
		return []Course{}
	}
	out := make([]Course, 0, len(rows))
	for _, r := range rows {
		name := stringCell(r, colCourseName)
		if name == "" {
			continue
		}
		level, _ := ParseTingkat(cellText(r, colLevel))
		credits, _ := strconv.Atoi(cellText(r, colCredits))
		out = append(out, Course{NamaMK: name, Tingkat: level, SKS: credits})
	}
	return out
}

var romanLevels = map[string]int{"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7}

// ParseTingkat menerima "2", "II", atau "Tingkat II". Hanya bilangan positif.
func ParseTingkat(s string) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "TINGKAT"))
	if n, err := strconv.Atoi(s); err == nil {
		return n, n > 0
	}
	n, ok := romanLevels[s]
	return n, ok
}

func (f *FileCatalog) readRows(name string) ([]map[string]interface{}, error) {
	path := filepath.Join(f.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		f.fail(name, err)
		return nil, err
	}
	var rows []map[string]interface{}
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		err = fmt.Errorf("decode %s: %w", name, err)
		f.fail(name, err)
		return nil, err
	}
	return rows, nil
}

func (f *FileCatalog) fail(name string, err error) {
	metrics.CatalogLoadErrors.WithLabelValues(name).Inc()
	f.log.Error("Gagal membaca katalog", map[string]interface{}{"file": name, "error": err.Error()})
}

func uniqueColumn(rows []map[string]interface{}, col string) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		s := stringCell(r, col)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func stringCell(row map[string]interface{}, col string) string {
	s, _ := row[col].(string)
	return s
}

// cellText: angka JSON (float64) dan string sama-sama dibaca sebagai teks.
func cellText(row map[string]interface{}, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
