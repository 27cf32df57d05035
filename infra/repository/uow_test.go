package infrarepository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rmercado/kahera/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoCommitsAndExposesRepositories(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		fundsRepo, err := txUow.FundsRepository()
		require.NoError(err)
		assert.NotNil(fundsRepo)

		txRepo, err := txUow.TransactionRepository()
		require.NoError(err)
		assert.NotNil(txRepo)

		revRepo, err := txUow.ReversalRepository()
		require.NoError(err)
		assert.NotNil(revRepo)

		logRepo, err := txUow.FundLogRepository()
		require.NoError(err)
		assert.NotNil(logRepo)

		expRepo, err := txUow.ExpenseRepository()
		require.NoError(err)
		assert.NotNil(expRepo)

		sumRepo, err := txUow.DailySummaryRepository()
		require.NoError(err)
		assert.NotNil(sumRepo)

		custRepo, err := txUow.CustomerRepository()
		require.NoError(err)
		assert.NotNil(custRepo)

		return nil
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		return boom
	})
	require.ErrorIs(err, boom)
	require.NoError(mock.ExpectationsWereMet())
}
