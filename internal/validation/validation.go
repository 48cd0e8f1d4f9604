package validation

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Errors maps a field name to every message its rules produced.
// All failed rules are reported, not just the first.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

const DateLayout = "2006-01-02"

// validEmail performs a syntax-only check. No DNS or MX lookup.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	at := strings.LastIndex(addr, "@")
	return strings.Contains(addr[at:], ".")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func ValidateContact(f ContactForm) Errors {
	errs := Errors{}

	if f.Name == "" {
		errs.Add("name", "Name is required")
	} else if runeLen(f.Name) < 2 || runeLen(f.Name) > 100 {
		errs.Add("name", "Name must be between 2 and 100 characters")
	}

	if f.Email == "" {
		errs.Add("email", "Email is required")
	} else if !validEmail(f.Email) {
		errs.Add("email", "Invalid email address")
	}

	if runeLen(f.Phone) > 20 {
		errs.Add("phone", "Phone number too long")
	}

	if runeLen(f.Subject) > 200 {
		errs.Add("subject", "Subject too long")
	}

	if f.Message == "" {
		errs.Add("message", "Message is required")
	} else if runeLen(f.Message) < 10 || runeLen(f.Message) > 2000 {
		errs.Add("message", "Message must be between 10 and 2000 characters")
	}

	return errs
}

type BookingForm struct {
	RoomID          uint   `json:"room_id"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	NumGuests       int    `json:"num_guests"`
	SpecialRequests string `json:"special_requests"`
}

// BookingDates carries the parsed stay window out of validation.
type BookingDates struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ValidateBooking checks the booking form against today's date.
// The check-out-after-check-in rule only applies when check-in parsed.
func ValidateBooking(f BookingForm, today time.Time) (BookingDates, Errors) {
	errs := Errors{}
	var dates BookingDates

	if f.RoomID == 0 {
		errs.Add("room_id", "Please select a room")
	}

	if f.GuestName == "" {
		errs.Add("guest_name", "Name is required")
	} else if runeLen(f.GuestName) < 2 || runeLen(f.GuestName) > 100 {
		errs.Add("guest_name", "Name must be between 2 and 100 characters")
	}

	if f.GuestEmail == "" {
		errs.Add("guest_email", "Email is required")
	} else if !validEmail(f.GuestEmail) {
		errs.Add("guest_email", "Invalid email address")
	}

	if f.GuestPhone == "" {
		errs.Add("guest_phone", "Phone is required")
	} else if runeLen(f.GuestPhone) < 8 || runeLen(f.GuestPhone) > 20 {
		errs.Add("guest_phone", "Phone must be between 8 and 20 characters")
	}

	today = today.Truncate(24 * time.Hour)
	checkInValid := false

	if f.CheckIn == "" {
		errs.Add("check_in", "Check-in date is required")
	} else if checkIn, err := time.Parse(DateLayout, f.CheckIn); err != nil {
		errs.Add("check_in", "Invalid check-in date")
	} else {
		dates.CheckIn = checkIn
		checkInValid = true
		if checkIn.Before(today) {
			errs.Add("check_in", "Check-in date cannot be in the past")
		}
	}

	if f.CheckOut == "" {
		errs.Add("check_out", "Check-out date is required")
	} else if checkOut, err := time.Parse(DateLayout, f.CheckOut); err != nil {
		errs.Add("check_out", "Invalid check-out date")
	} else {
		dates.CheckOut = checkOut
		if checkInValid && !checkOut.After(dates.CheckIn) {
			errs.Add("check_out", "Check-out date must be after check-in date")
		}
	}

	if f.NumGuests == 0 {
		errs.Add("num_guests", "Number of guests is required")
	} else if f.NumGuests < 1 || f.NumGuests > 10 {
		errs.Add("num_guests", "Number of guests must be between 1 and 10")
	}

	if runeLen(f.SpecialRequests) > 500 {
		errs.Add("special_requests", "Special requests too long")
	}

	return dates, errs
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateLogin(f LoginForm) Errors {
	errs := Errors{}

	if f.Email == "" {
		errs.Add("email", "Email is required")
	} else if !validEmail(f.Email) {
		errs.Add("email", "Invalid email address")
	}

	// Password length is only enforced at registration.
	if f.Password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

type RegisterForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func ValidateRegister(f RegisterForm) Errors {
	errs := Errors{}

	if f.Username == "" {
		errs.Add("username", "Username is required")
	} else if runeLen(f.Username) < 3 || runeLen(f.Username) > 80 {
		errs.Add("username", "Username must be between 3 and 80 characters")
	}

	if f.Email == "" {
		errs.Add("email", "Email is required")
	} else if !validEmail(f.Email) {
		errs.Add("email", "Invalid email address")
	}

	if f.Password == "" {
		errs.Add("password", "Password is required")
	} else if runeLen(f.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	}

	if f.ConfirmPassword == "" {
		errs.Add("confirm_password", "Please confirm your password")
	} else if f.ConfirmPassword != f.Password {
		errs.Add("confirm_password", "Passwords must match")
	}

	return errs
}
