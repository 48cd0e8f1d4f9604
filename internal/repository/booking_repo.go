package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Create(booking *model.Booking) error
	GetByID(id uint) (*model.Booking, error)
	ListAll() ([]model.Booking, error)
	ListByUserID(userID uint) ([]model.Booking, error)
	UpdateStatus(id uint, status model.BookingStatus) error
	Delete(id uint) error
	Count() (int64, error)
	CountByStatus(status model.BookingStatus) (int64, error)
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

func (r *bookingRepoGorm) Create(booking *model.Booking) error {
	ctx := context.Background()
	if err := gorm.G[model.Booking](r.db).Create(ctx, booking); err != nil {
		return err
	}
	return nil
}

func (r *bookingRepoGorm) GetByID(id uint) (*model.Booking, error) {
	ctx := context.Background()
	booking, err := gorm.G[model.Booking](r.db).Where(&model.Booking{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) ListAll() ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) ListByUserID(userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) UpdateStatus(id uint, status model.BookingStatus) error {
	res := r.db.Model(&model.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepoGorm) Delete(id uint) error {
	res := r.db.Delete(&model.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepoGorm) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Booking{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepoGorm) CountByStatus(status model.BookingStatus) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Booking{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
