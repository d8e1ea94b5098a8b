package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeModel: satu baris nilai mata kuliah. Semester disimpan apa adanya
// (bisa "3 (Fast Track)"), nilai berupa huruf/angka dalam teks.
type GradeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
	NamaMK    string    `gorm:"type:text;not null;column:nama_mk" json:"nama_mk"`
	Semester  string    `gorm:"type:text;column:semester" json:"semester"`
	Nilai     string    `gorm:"type:varchar(4);column:nilai" json:"nilai"`
	SKS       int       `gorm:"not null;default:0;column:sks" json:"sks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GradeModel) TableName() string {
	return "grades"
}
