package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"estore/internal/model"
)

// A MySQL 1062 must surface as gorm.ErrDuplicatedKey so the unique-email
// index maps to the duplicate-email result instead of a generic 500.
func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer conn.Close()

	gdb, err := open(mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'test@example.com'"})
	mock.ExpectRollback()

	err = gdb.Create(&model.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "x",
	}).Error

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
