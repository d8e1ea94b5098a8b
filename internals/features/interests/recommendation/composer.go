package recommendation

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

const (
	MinRecommendations = 3
	MaxRecommendations = 5
)

type ComposeInput struct {
	Profile   StudentProfile
	Grades    []GradeRecord
	Interests InterestProfile
	Period    int
	Courses   []string
}

// Compose membangun payload untuk model dan merender instruksinya.
// Minat yang tidak valid menghentikan proses sebelum apa pun dikirim.
func Compose(in ComposeInput) (*Request, string, error) {
	if err := in.Interests.Validate(); err != nil {
		return nil, "", err
	}

	history := make([]HistoryItem, 0, len(in.Grades))
	for _, g := range in.Grades {
		history = append(history, HistoryItem{Name: g.CourseName, Score: g.Score})
	}
	courses := in.Courses
	if courses == nil {
		courses = []string{}
	}

	req := &Request{
		Profile: ProfileSummary{
			Jurusan:  in.Profile.Jurusan,
			Semester: in.Period,
			IPK:      in.Profile.IPK,
		},
		AcademicHistory:  history,
		Interests:        in.Interests,
		AvailableCourses: courses,
	}

	prompt, err := RenderPrompt(req)
	if err != nil {
		return nil, "", err
	}
	return req, prompt, nil
}

const outputShape = `{
    "recommendations": [
        {
            "name": "Nama Mata Kuliah (harus dari available_courses)",
            "type": "Hard Skill/Soft Skill/Course",
            "reason": "Alasan rekomendasi berdasarkan minat dan riwayat..."
        }
    ]
}`

// RenderPrompt menanam payload apa adanya (JSON) lalu menambahkan aturan output.
func RenderPrompt(req *Request) (string, error) {
	payload, err := sonic.MarshalString(req)
	if err != nil {
		return "", fmt.Errorf("encode payload rekomendasi: %w", err)
	}

	var b strings.Builder
	b.WriteString("Anda adalah konsultan akademik universitas. Berdasarkan data mahasiswa berikut, ")
	b.WriteString("berikan rekomendasi mata kuliah dari daftar mata kuliah yang tersedia.\n\n")
	b.WriteString("DATA MAHASISWA:\n")
	b.WriteString(payload)
	b.WriteString("\n\nINSTRUKSI OUTPUT:\n")
	rules := []string{
		"Analisis minat (hard/soft skills) dan riwayat nilai mahasiswa.",
		fmt.Sprintf("Pilih %d-%d mata kuliah dari \"available_courses\" yang paling relevan.", MinRecommendations, MaxRecommendations),
		"Pastikan rekomendasi HANYA dari daftar mata kuliah yang tersedia (available_courses).",
		"JANGAN buat nama mata kuliah baru yang tidak ada di daftar.",
		"Setiap alasan WAJIB menyebut minimal satu minat (hard_skills/soft_skills) mahasiswa, " +
			"dan bila ada, satu mata kuliah spesifik dari academic_history beserta nilainya.",
		"OUTPUT HARUS BERUPA SATU OBJEK JSON VALID SAJA, tanpa teks lain sebelum atau sesudahnya. Gunakan format berikut:",
	}
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	b.WriteString(outputShape)
	b.WriteString("\n")
	return b.String(), nil
}
