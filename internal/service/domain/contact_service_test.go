package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

func TestContactService_SubmitAndLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db, repository.NewContactRepoGorm(db))

	contact, err := svc.Submit(validation.ContactForm{
		Name:    "Mei Lin",
		Email:   "mei@example.com",
		Message: "Do you allow late check-in?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContactStatusNew, contact.Status)

	newCount, err := svc.CountNewContacts()
	require.NoError(t, err)
	assert.Equal(t, int64(1), newCount)

	require.NoError(t, svc.UpdateContactStatus(contact.ID, model.ContactStatusRead))
	newCount, err = svc.CountNewContacts()
	require.NoError(t, err)
	assert.Zero(t, newCount)

	require.NoError(t, svc.DeleteContact(contact.ID))
	assert.ErrorIs(t, svc.DeleteContact(contact.ID), service.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateContactStatus(99, model.ContactStatusReplied), service.ErrNotFound)
}
