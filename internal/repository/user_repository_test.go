package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskops/taskstore/internal/models"
)

// openMockDB opens a GORM handle over sqlmock for driving error paths that an
// in-memory database cannot produce.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestUserRepositoryFindByUsername_QueryError(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	queryErr := errors.New("connection reset")
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnError(queryErr)

	_, err := repo.FindByUsername("john_doe")
	assert.ErrorIs(t, err, queryErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByID(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT count(.+) FROM `users`").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByID(7)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT count(.+) FROM `users`").
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.ExistsByID(8)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByID_QueryError(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewUserRepository(db)

	queryErr := errors.New("table locked")
	mock.ExpectQuery("SELECT count(.+) FROM `users`").WillReturnError(queryErr)

	exists, err := repo.ExistsByID(1)
	assert.False(t, exists)
	assert.ErrorIs(t, err, queryErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryList_RoleFilter(t *testing.T) {
	// Behavior-level check on a real database.
	db := openTestDB(t)
	repo := NewUserRepository(db)

	for _, u := range []struct {
		username string
		role     models.UserRole
	}{
		{"alice", models.RoleAdmin},
		{"bob", models.RoleManager},
		{"carol", models.RoleAdmin},
	} {
		phone, address := "+1", "A"
		require.NoError(t, db.Create(&models.User{
			Username: u.username,
			FullName: u.username,
			Role:     u.role,
			Email:    u.username + "@x.com",
			Phone:    &phone,
			Address:  &address,
		}).Error)
	}

	admins := models.RoleAdmin
	users, err := repo.List(&admins)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "carol", users[1].Username)

	all, err := repo.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
