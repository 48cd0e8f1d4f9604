package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
)

type RoomRepo interface {
	WithTx(tx *gorm.DB) RoomRepo
	Create(room *model.Room) error
	GetByID(id uint) (*model.Room, error)
	ListAll() ([]model.Room, error)
	ListAvailable() ([]model.Room, error)
	ListFeatured() ([]model.Room, error)
	Update(room *model.Room) error
	Delete(id uint) error
	Count() (int64, error)
}

type roomRepoGorm struct {
	db *gorm.DB
}

var _ RoomRepo = (*roomRepoGorm)(nil)

func NewRoomRepoGorm(db *gorm.DB) *roomRepoGorm {
	return &roomRepoGorm{
		db: db,
	}
}

func (r *roomRepoGorm) WithTx(tx *gorm.DB) RoomRepo {
	return &roomRepoGorm{
		db: tx,
	}
}

func (r *roomRepoGorm) Create(room *model.Room) error {
	ctx := context.Background()
	if err := gorm.G[model.Room](r.db).Create(ctx, room); err != nil {
		return err
	}
	return nil
}

func (r *roomRepoGorm) GetByID(id uint) (*model.Room, error) {
	ctx := context.Background()
	room, err := gorm.G[model.Room](r.db).Where(&model.Room{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepoGorm) ListAll() ([]model.Room, error) {
	ctx := context.Background()
	rooms, err := gorm.G[model.Room](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepoGorm) ListAvailable() ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.Where("is_available = ?", true).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepoGorm) ListFeatured() ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.Where("is_available = ? AND is_featured = ?", true, true).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepoGorm) Update(room *model.Room) error {
	return r.db.Save(room).Error
}

// Delete removes the room and cascades to its bookings in one transaction.
func (r *roomRepoGorm) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Room{}, id).Error
	})
}

func (r *roomRepoGorm) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Room{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
