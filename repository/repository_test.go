package repository

import (
	"regexp"
	"testing"

	"ormcheatsheet/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestPolicyRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `policies`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))

	n, err := NewPolicyRepository(db).Count(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `claims`")).
		WillReturnRows(sqlmock.NewRows(models.ClaimColumns).
			AddRow("c_1", "UK", 25000, "p_3").
			AddRow("c_2", "Mexico", 410000, "p_9"))

	claims, err := NewClaimRepository(db).GetAll(nil)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, "p_9", claims[1].PolicyID)
	assert.Equal(t, int64(410000), claims[1].ClaimGBP)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInBatches_EmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)

	assert.NoError(t, NewPolicyRepository(db).CreateInBatches(nil, nil, 10))
	assert.NoError(t, NewClaimRepository(db).CreateInBatches(nil, []models.Claim{}, 10))
	assert.NoError(t, mock.ExpectationsWereMet(), "no statement expected")
}

func TestPolicyRepository_CreateInBatchesUsesTx(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `policies`")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tx := NewBaseRepository(db).Begin()
	require.NoError(t, tx.Error)
	err := NewPolicyRepository(db).CreateInBatches(tx, []models.Policy{
		{PolicyID: "p_1", ClassID: "Marine", UWYear: 2021, PremiumGBP: 50000},
		{PolicyID: "p_2", ClassID: "Aviation", UWYear: 2023, PremiumGBP: 450000},
	}, 50)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
