package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gigbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestBookingRepository_CreateRollsBackWhenNotificationFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	b := &domain.Booking{
		ArtistID:    1,
		OrganizerID: 2,
		EventDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.BookingRequested,
		Price:       100,
	}
	err := repo.CreateWithNotification(context.Background(), b,
		&domain.Notification{UserID: 1, Type: domain.NotifBookingRequested, Content: "New booking request from org"})

	assert.EqualError(t, err, "disk full")
	assert.Zero(t, b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatusNotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateStatusWithNotification(context.Background(), 5, 9, domain.BookingConfirmed,
		&domain.Notification{UserID: 2, Type: domain.NotifBookingStatus, Content: "x"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
