package seeds

import (
	"gorm.io/gorm"

	"mahasiswa_backend/internals/helpers/logger"
	students "mahasiswa_backend/internals/seeds/students"
)

const StudentsSeedFile = "internals/seeds/students/data_students.json"

func RunAllSeeds(db *gorm.DB, log logger.Logger, studentsFile string) error {
	if studentsFile == "" {
		studentsFile = StudentsSeedFile
	}

	//* Mahasiswa + nilai
	return students.SeedStudentsFromJSON(db, studentsFile, log)
}
