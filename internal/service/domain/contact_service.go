package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type ContactService interface {
	Submit(form validation.ContactForm) (*model.Contact, error)
	GetAllContacts() ([]model.Contact, error)
	UpdateContactStatus(id uint, status model.ContactStatus) error
	DeleteContact(id uint) error
	CountNewContacts() (int64, error)
}

type contactService struct {
	db   *gorm.DB
	repo repository.ContactRepo
}

var _ ContactService = (*contactService)(nil)

func NewContactService(db *gorm.DB, contactRepo repository.ContactRepo) *contactService {
	return &contactService{
		db:   db,
		repo: contactRepo,
	}
}

func (s *contactService) Submit(form validation.ContactForm) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
		Status:  model.ContactStatusNew,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(contact)
	}); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) GetAllContacts() ([]model.Contact, error) {
	return s.repo.ListAll()
}

func (s *contactService) UpdateContactStatus(id uint, status model.ContactStatus) error {
	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *contactService) DeleteContact(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *contactService) CountNewContacts() (int64, error) {
	return s.repo.CountByStatus(model.ContactStatusNew)
}
