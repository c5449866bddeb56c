package repository

import (
	"context"
	"errors"
	"testing"

	"healthcare-management/internal/domain/entity"
	"healthcare-management/internal/infrastructure/database"
	"healthcare-management/internal/repository/repositorytest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUpdateWritesOnlySelectedColumns(t *testing.T) {
	db, mock := repositorytest.NewMockDB(t)
	repo := NewPatientRepository(db)

	patient := &entity.Patient{ID: 5, UserID: 1, FirstName: "Janet", LastName: "Doe", Age: 30}

	mock.ExpectExec(`^UPDATE "patients" SET "first_name"=\$1 WHERE `).
		WithArgs("Janet", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), patient, []string{"first_name"}))
}

func TestDoctorUpdateWritesOnlySelectedColumns(t *testing.T) {
	db, mock := repositorytest.NewMockDB(t)
	repo := NewDoctorRepository(db)

	doctor := &entity.Doctor{ID: 9, UserID: 1, Name: "Smith", Status: "On Leave"}

	mock.ExpectExec(`^UPDATE "doctors" SET "status"=\$1 WHERE `).
		WithArgs("On Leave", 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), doctor, []string{"status"}))
}

func TestUpdateWithoutColumnsIsNoop(t *testing.T) {
	db, _ := repositorytest.NewMockDB(t)

	require.NoError(t, NewPatientRepository(db).Update(context.Background(), &entity.Patient{ID: 5}, nil))
}

func TestDeleteByPatientIDReportsRows(t *testing.T) {
	db, mock := repositorytest.NewMockDB(t)

	mock.ExpectExec(`^DELETE FROM "patient_doctor_mappings" WHERE patient_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := NewMappingRepository(db).DeleteByPatientID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTransactionSpansRepositories(t *testing.T) {
	db, mock := repositorytest.NewMockDB(t)
	transactor := database.NewTransactor(db)
	patients := NewPatientRepository(db)
	mappings := NewMappingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM "patient_doctor_mappings" WHERE patient_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM "patients" WHERE id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := mappings.DeleteByPatientID(ctx, 5); err != nil {
			return err
		}
		_, err := patients.Delete(ctx, 5)
		return err
	})
	require.NoError(t, err)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db, mock := repositorytest.NewMockDB(t)
	transactor := database.NewTransactor(db)
	patients := NewPatientRepository(db)
	mappings := NewMappingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM "patient_doctor_mappings" WHERE patient_id = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE FROM "patients" WHERE id = \$1`).
		WithArgs(5).
		WillReturnError(errors.New("statement timeout"))
	mock.ExpectRollback()

	err := transactor.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := mappings.DeleteByPatientID(ctx, 5); err != nil {
			return err
		}
		_, err := patients.Delete(ctx, 5)
		return err
	})
	assert.EqualError(t, err, "statement timeout")
}
