package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/app"
	"github.com/lin-hy/gangcheng-bnb/internal/middleware"
	"github.com/lin-hy/gangcheng-bnb/internal/service"
	"github.com/lin-hy/gangcheng-bnb/internal/validation"
)

type AuthHandler struct {
	app *app.App
}

func NewAuthHandler(app *app.App) *AuthHandler {
	return &AuthHandler{
		app: app,
	}
}

func setSessionCookie(ctx *gin.Context, token string) {
	// No MaxAge: the session lives until an explicit logout.
	ctx.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var form validation.RegisterForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if errs := validation.ValidateRegister(form); !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	_, token, err := h.app.AuthService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username already taken"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed, please try again later"})
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful",
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var form validation.LoginForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if errs := validation.ValidateLogin(form); !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  errs,
		})
		return
	}

	_, token, err := h.app.AuthService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed, please try again later"})
		return
	}

	setSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	token, err := ctx.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := h.app.AuthService.Logout(token); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logout failed"})
			return
		}
	}

	clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "You have been logged out",
	})
}

// Profile returns the logged-in user's bookings, newest first.
func (h *AuthHandler) Profile(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	bookings, err := h.app.BookingService.GetBookingsByUserID(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":     user,
		"bookings": bookings,
	})
}
