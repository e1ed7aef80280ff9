package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/proctorview/proctorview/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Uint64

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Admin{},
		&model.User{},
		&model.Test{},
		&model.UserTest{},
		&model.Activity{},
	))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email string) model.Admin {
	t.Helper()
	admin := model.Admin{Name: "Admin", Email: email, Password: "x"}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func seedUser(t *testing.T, db *gorm.DB, id uint, name string) model.User {
	t.Helper()
	user := model.User{ID: id, Name: name, Branch: "CSE"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTest(t *testing.T, db *gorm.DB, adminID uint, name string, active bool) model.Test {
	t.Helper()
	test := model.Test{AdminID: adminID, URL: "http://t", Name: name, IsActive: true}
	require.NoError(t, db.Create(&test).Error)
	if !active {
		// A zero-valued bool would be swallowed by the column default on
		// insert, so deactivation is a separate update.
		require.NoError(t, db.Model(&test).Update("is_active", false).Error)
	}
	return test
}

func seedSession(t *testing.T, db *gorm.DB, userID, testID uint) model.UserTest {
	t.Helper()
	session := model.UserTest{UserID: userID, TestID: testID, UserLocation: "lab-1"}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func ctx() context.Context {
	return context.Background()
}
