package dto

import (
	"github.com/google/uuid"

	"mahasiswa_backend/internals/features/students/model"
)

type LoginRequest struct {
	NIM      string `json:"nim" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
}

type StudentSummary struct {
	ID      uuid.UUID `json:"id"`
	NIM     string    `json:"nim"`
	Nama    string    `json:"nama"`
	Jurusan string    `json:"jurusan"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Student StudentSummary `json:"student"`
}

func ToStudentSummary(s *model.StudentModel) StudentSummary {
	return StudentSummary{ID: s.ID, NIM: s.NIM, Nama: s.Nama, Jurusan: s.Jurusan}
}
