package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
)

type ContactRepo interface {
	WithTx(tx *gorm.DB) ContactRepo
	Create(contact *model.Contact) error
	GetByID(id uint) (*model.Contact, error)
	ListAll() ([]model.Contact, error)
	UpdateStatus(id uint, status model.ContactStatus) error
	Delete(id uint) error
	CountByStatus(status model.ContactStatus) (int64, error)
}

type contactRepoGorm struct {
	db *gorm.DB
}

var _ ContactRepo = (*contactRepoGorm)(nil)

func NewContactRepoGorm(db *gorm.DB) *contactRepoGorm {
	return &contactRepoGorm{
		db: db,
	}
}

func (r *contactRepoGorm) WithTx(tx *gorm.DB) ContactRepo {
	return &contactRepoGorm{
		db: tx,
	}
}

func (r *contactRepoGorm) Create(contact *model.Contact) error {
	ctx := context.Background()
	if err := gorm.G[model.Contact](r.db).Create(ctx, contact); err != nil {
		return err
	}
	return nil
}

func (r *contactRepoGorm) GetByID(id uint) (*model.Contact, error) {
	ctx := context.Background()
	contact, err := gorm.G[model.Contact](r.db).Where(&model.Contact{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepoGorm) ListAll() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepoGorm) UpdateStatus(id uint, status model.ContactStatus) error {
	res := r.db.Model(&model.Contact{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepoGorm) Delete(id uint) error {
	res := r.db.Delete(&model.Contact{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepoGorm) CountByStatus(status model.ContactStatus) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Contact{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
