package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type StudentModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	NIM      string    `gorm:"type:varchar(20);uniqueIndex;not null;column:nim" json:"nim"`
	Nama     string    `gorm:"type:text;not null;column:nama" json:"nama"`
	EmailSSO string    `gorm:"type:text;column:email_sso" json:"email_sso"`
	Password string    `gorm:"type:text;not null;column:password" json:"-"`

	// ============ Akademik ============
	Jurusan  string  `gorm:"type:text;column:jurusan" json:"jurusan"`
	Fakultas string  `gorm:"type:text;column:fakultas" json:"fakultas"`
	Angkatan int     `gorm:"column:angkatan" json:"angkatan"`
	IPK      float64 `gorm:"type:numeric(3,2);not null;default:0;column:ipk" json:"ipk"`
	SKSTotal int     `gorm:"not null;default:0;column:sks_total" json:"sks_total"`
	TAK      int     `gorm:"not null;default:0;column:tak" json:"tak"`
	IKK      float64 `gorm:"not null;default:0;column:ikk" json:"ikk"`

	// Per tingkat, mis. {"1": 40, "2": 38}
	SKSTingkat datatypes.JSONMap `gorm:"type:jsonb;column:sks_tingkat" json:"sks_tingkat,omitempty"`
	IPTingkat  datatypes.JSONMap `gorm:"type:jsonb;column:ip_tingkat" json:"ip_tingkat,omitempty"`

	// ============ Minat ============
	InterestHardSkills pq.StringArray `gorm:"type:text[];column:interest_hard_skills" json:"-"`
	InterestSoftSkills pq.StringArray `gorm:"type:text[];column:interest_soft_skills" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
