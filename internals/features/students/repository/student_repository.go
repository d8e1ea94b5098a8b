// internals/features/students/repository/student_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"mahasiswa_backend/internals/features/students/model"
)

var ErrStudentNotFound = errors.New("mahasiswa tidak ditemukan")

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

/* ====================== STUDENT ====================== */

func (r *StudentRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindStudentByNIM(ctx context.Context, nim string) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := r.DB.WithContext(ctx).Where("nim = ?", nim).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

/* ====================== GRADES ====================== */

func (r *StudentRepository) FindGradesByStudent(ctx context.Context, studentID uuid.UUID) ([]model.GradeModel, error) {
	grades := make([]model.GradeModel, 0)
	if err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

/* ====================== INTERESTS ====================== */

// UpdateInterests menimpa kedua list minat sekaligus.
func (r *StudentRepository) UpdateInterests(ctx context.Context, studentID uuid.UUID, hard, soft []string) error {
	res := r.DB.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", studentID).
		Updates(map[string]interface{}{
			"interest_hard_skills": pq.StringArray(hard),
			"interest_soft_skills": pq.StringArray(soft),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}
