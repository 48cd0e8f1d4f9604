package model

import (
	"strings"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Username     string    `gorm:"size:80;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	RoomType      string    `gorm:"size:50;not null" json:"room_type"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	ImageURL      string    `gorm:"size:500" json:"image_url"`
	PricePerNight float64   `gorm:"not null" json:"price_per_night"`
	MaxGuests     int       `gorm:"default:2" json:"max_guests"`
	Amenities     string    `gorm:"size:500" json:"amenities"` // comma-separated tags: wifi,ac_unit,bathtub
	IsAvailable   bool      `gorm:"default:true" json:"is_available"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
}

// AmenityList splits the stored amenity string into tags.
func (r *Room) AmenityList() []string {
	if r.Amenities == "" {
		return []string{}
	}
	return strings.Split(r.Amenities, ",")
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index" json:"user_id"` // nil for guest bookings
	RoomID uint  `gorm:"not null;index" json:"room_id"`

	GuestName  string `gorm:"size:100;not null" json:"guest_name"`
	GuestEmail string `gorm:"size:120;not null" json:"guest_email"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`

	CheckIn    time.Time `gorm:"not null" json:"check_in"`
	CheckOut   time.Time `gorm:"not null" json:"check_out"`
	NumGuests  int       `gorm:"not null" json:"num_guests"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`

	Status          BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:120;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status    ContactStatus `gorm:"type:varchar(20);default:'new'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
