package students

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mahasiswa_backend/internals/features/students/model"
	"mahasiswa_backend/internals/helpers/logger"
)

type GradeSeed struct {
	NamaMK   string `json:"nama_mk"`
	Semester string `json:"semester"`
	Nilai    string `json:"nilai"`
	SKS      int    `json:"sks"`
}

type StudentSeed struct {
	NIM        string         `json:"nim"`
	Nama       string         `json:"nama"`
	EmailSSO   string         `json:"email_sso"`
	Password   string         `json:"password"`
	Jurusan    string         `json:"jurusan"`
	Fakultas   string         `json:"fakultas"`
	Angkatan   int            `json:"angkatan"`
	IPK        float64        `json:"ipk"`
	SKSTotal   int            `json:"sks_total"`
	TAK        int            `json:"tak"`
	IKK        float64        `json:"ikk"`
	SKSTingkat map[string]any `json:"sks_tingkat"`
	IPTingkat  map[string]any `json:"ip_tingkat"`
	HardSkills []string       `json:"interest_hard_skills"`
	SoftSkills []string       `json:"interest_soft_skills"`
	Grades     []GradeSeed    `json:"grades"`
}

func LoadStudentSeeds(filePath string) ([]StudentSeed, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file JSON: %w", err)
	}
	var seeds []StudentSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return nil, fmt.Errorf("gagal decode JSON: %w", err)
	}
	return seeds, nil
}

// ToModels meng-hash password lalu membangun baris students + grades.
// Password kosong → NIM dipakai sebagai password awal.
func (s StudentSeed) ToModels(now time.Time, cost int) (model.StudentModel, []model.GradeModel, error) {
	nim := strings.TrimSpace(s.NIM)
	password := s.Password
	if strings.TrimSpace(password) == "" {
		password = nim
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return model.StudentModel{}, nil, err
	}

	student := model.StudentModel{
		ID:                 uuid.New(),
		NIM:                nim,
		Nama:               s.Nama,
		EmailSSO:           s.EmailSSO,
		Password:           string(hashed),
		Jurusan:            s.Jurusan,
		Fakultas:           s.Fakultas,
		Angkatan:           s.Angkatan,
		IPK:                s.IPK,
		SKSTotal:           s.SKSTotal,
		TAK:                s.TAK,
		IKK:                s.IKK,
		SKSTingkat:         datatypes.JSONMap(s.SKSTingkat),
		IPTingkat:          datatypes.JSONMap(s.IPTingkat),
		InterestHardSkills: pq.StringArray(s.HardSkills),
		InterestSoftSkills: pq.StringArray(s.SoftSkills),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	grades := make([]model.GradeModel, 0, len(s.Grades))
	for i, g := range s.Grades {
		grades = append(grades, model.GradeModel{
			ID:        uuid.New(),
			StudentID: student.ID,
			NamaMK:    g.NamaMK,
			Semester:  g.Semester,
			Nilai:     g.Nilai,
			SKS:       g.SKS,
			// urutan input = urutan riwayat
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		})
	}
	return student, grades, nil
}

// SeedStudentsFromJSON meng-insert mahasiswa yang NIM-nya belum ada, beserta nilainya.
func SeedStudentsFromJSON(db *gorm.DB, filePath string, log logger.Logger) error {
	log.Info("📥 Membaca file mahasiswa", map[string]interface{}{"file": filePath})

	seeds, err := LoadStudentSeeds(filePath)
	if err != nil {
		return err
	}

	inserted := 0
	for _, data := range seeds {
		var count int64
		if err := db.Model(&model.StudentModel{}).Where("nim = ?", data.NIM).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info("ℹ️ Mahasiswa sudah ada, dilewati.", map[string]interface{}{"nim": data.NIM})
			continue
		}

		student, grades, err := data.ToModels(time.Now(), bcrypt.DefaultCost)
		if err != nil {
			log.Error("❌ Gagal hash password", map[string]interface{}{"nim": data.NIM, "error": err.Error()})
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&student).Error; err != nil {
				return err
			}
			if len(grades) > 0 {
				return tx.Create(&grades).Error
			}
			return nil
		})
		if err != nil {
			log.Error("❌ Gagal insert mahasiswa", map[string]interface{}{"nim": data.NIM, "error": err.Error()})
			continue
		}
		inserted++
	}

	log.Info("✅ Seed mahasiswa selesai", map[string]interface{}{"inserted": inserted, "total": len(seeds)})
	return nil
}
