package domain

import (
	"gorm.io/gorm"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/repository"
	"github.com/lin-hy/gangcheng-bnb/internal/util"
)

// defaultAdminPassword is a demo convenience for first-run setups.
// Deployments should set ADMIN_PASSWORD instead of relying on it.
const defaultAdminPassword = "admin123"

type BootstrapService interface {
	Seed() (bool, error)
}

type bootstrapService struct {
	db            *gorm.DB
	userRepo      repository.UserRepo
	roomRepo      repository.RoomRepo
	adminEmail    string
	adminPassword string
}

var _ BootstrapService = (*bootstrapService)(nil)

func NewBootstrapService(db *gorm.DB, userRepo repository.UserRepo, roomRepo repository.RoomRepo, adminEmail, adminPassword string) *bootstrapService {
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	return &bootstrapService{
		db:            db,
		userRepo:      userRepo,
		roomRepo:      roomRepo,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Seed populates an empty store with the three sample rooms and the admin
// account. It reports false without touching anything when any user exists,
// so calling it repeatedly is safe.
func (s *bootstrapService) Seed() (bool, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := util.HashPassword(s.adminPassword)
	if err != nil {
		return false, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		rooms := sampleRooms()
		roomRepo := s.roomRepo.WithTx(tx)
		for i := range rooms {
			if err := roomRepo.Create(&rooms[i]); err != nil {
				return err
			}
		}

		admin := &model.User{
			Username:     "admin",
			Email:        s.adminEmail,
			PasswordHash: hash,
			IsAdmin:      true,
		}
		return s.userRepo.WithTx(tx).Create(admin)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func sampleRooms() []model.Room {
	return []model.Room{
		{
			Name:          "Mountain View Suite",
			RoomType:      "Double",
			Description:   "Panoramic views of the Central Mountain Range with private balcony.",
			PricePerNight: 3500,
			MaxGuests:     2,
			Amenities:     "wifi,ac_unit,bathtub",
			IsAvailable:   true,
			IsFeatured:    true,
		},
		{
			Name:          "Garden Room",
			RoomType:      "Queen",
			Description:   "Direct access to our lush private gardens, perfect for morning meditation.",
			PricePerNight: 3000,
			MaxGuests:     2,
			Amenities:     "wifi,ac_unit,yard",
			IsAvailable:   true,
			IsFeatured:    true,
		},
		{
			Name:          "Family Villa",
			RoomType:      "Family",
			Description:   "Spacious accommodation for the whole family with separate living area.",
			PricePerNight: 5000,
			MaxGuests:     5,
			Amenities:     "wifi,kitchen,tv",
			IsAvailable:   true,
			IsFeatured:    false,
		},
	}
}
