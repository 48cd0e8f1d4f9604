package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a pooled second connection would see a different :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Room{}, &model.Booking{}, &model.Contact{}))

	return db
}

// fakeSessionStore keeps sessions in a map, standing in for redis.
type fakeSessionStore struct {
	sessions map[string]uint
	seq      int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]uint)}
}

func (s *fakeSessionStore) CreateSession(userID uint) (string, error) {
	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.sessions[token] = userID
	return token, nil
}

func (s *fakeSessionStore) GetSession(token string) (uint, error) {
	userID, ok := s.sessions[token]
	if !ok {
		return 0, fmt.Errorf("session not found")
	}
	return userID, nil
}

func (s *fakeSessionStore) DeleteSession(token string) error {
	delete(s.sessions, token)
	return nil
}
