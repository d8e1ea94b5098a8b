package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*StudentRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return NewStudentRepository(db), mock
}

func TestFindStudentByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "nim", "nama", "jurusan", "ipk", "interest_hard_skills", "interest_soft_skills"}).
		AddRow(id.String(), "1301221234", "Budi", "S1 Informatika", 3.51, "{Go,SQL}", "{Komunikasi}")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "students" WHERE id = $1`)).WillReturnRows(rows)

	s, err := repo.FindStudentByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "S1 Informatika", s.Jurusan)
	assert.InDelta(t, 3.51, s.IPK, 0.0001)
	assert.Equal(t, []string{"Go", "SQL"}, []string(s.InterestHardSkills))
	assert.Equal(t, []string{"Komunikasi"}, []string(s.InterestSoftSkills))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStudentByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "students"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	s, err := repo.FindStudentByID(context.Background(), uuid.New())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStudentByNIM(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "students" WHERE nim = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nim", "password"}).AddRow(id.String(), "1301221234", "$2a$10$hash"))

	s, err := repo.FindStudentByNIM(context.Background(), "1301221234")

	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "$2a$10$hash", s.Password)
}

func TestFindGradesByStudent(t *testing.T) {
	repo, mock := newMockRepo(t)
	sid := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "student_id", "nama_mk", "semester", "nilai", "sks", "created_at"}).
		AddRow(uuid.NewString(), sid.String(), "Kalkulus", "1", "B", 3, now).
		AddRow(uuid.NewString(), sid.String(), "Basis Data", "3 (Fast Track)", "A", 3, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "grades" WHERE student_id = $1 ORDER BY created_at ASC`)).
		WithArgs(sid).
		WillReturnRows(rows)

	grades, err := repo.FindGradesByStudent(context.Background(), sid)

	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, "3 (Fast Track)", grades[1].Semester)
	assert.Equal(t, "A", grades[1].Nilai)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindGradesByStudent_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "grades"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	grades, err := repo.FindGradesByStudent(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, grades)
	assert.Empty(t, grades)
}

func TestUpdateInterests(t *testing.T) {
	repo, mock := newMockRepo(t)
	sid := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "students" SET "interest_hard_skills"=$1,"interest_soft_skills"=$2,"updated_at"=$3 WHERE id = $4`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateInterests(context.Background(), sid, []string{"Go"}, []string{"Komunikasi"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInterests_NoRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "students" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateInterests(context.Background(), uuid.New(), []string{}, []string{})

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestUpdateInterests_DBError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "students" SET`).WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.UpdateInterests(context.Background(), uuid.New(), []string{"Go"}, []string{})

	assert.ErrorIs(t, err, boom)
}
