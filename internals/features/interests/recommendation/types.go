package recommendation

// StudentProfile adalah subset profil mahasiswa yang dipakai engine.
type StudentProfile struct {
	Jurusan string
	IPK     float64
}

// GradeRecord: satu mata kuliah yang sudah ditempuh. Period adalah label
// semester apa adanya dari data nilai, mis. "3" atau "3 (Fast Track)".
type GradeRecord struct {
	CourseName string
	Period     string
	Score      string
}

type InterestProfile struct {
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

// Validate memastikan kedua field berupa list string (bukan null).
func (p InterestProfile) Validate() error {
	if p.HardSkills == nil || p.SoftSkills == nil {
		return ErrInvalidInterests
	}
	return nil
}

type ProfileSummary struct {
	Jurusan  string  `json:"jurusan"`
	Semester int     `json:"semester"`
	IPK      float64 `json:"ipk"`
}

type HistoryItem struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// Request adalah payload yang dikirim utuh ke model generatif. Tidak pernah disimpan.
type Request struct {
	Profile          ProfileSummary  `json:"profile"`
	AcademicHistory  []HistoryItem   `json:"academic_history"`
	Interests        InterestProfile `json:"interests"`
	AvailableCourses []string        `json:"available_courses"`
}

type Recommendation struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
}
