package handlers

import (
	"encoding/json"
	"net/http"

	"timesheet/config"
	"timesheet/database"
	"timesheet/middleware"
	"timesheet/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	v := validator.New()
	if err := v.Struct(request); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			respondWithError(w, http.StatusBadRequest, "Field "+e.Field()+" is invalid", nil)
			return
		}
	}

	var engineer models.Engineer
	if err := database.GetDB().Where("username = ?", request.Username).First(&engineer).Error; err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(engineer.PasswordHash), []byte(request.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := middleware.GenerateToken(&engineer, h.config.JWTExpiration)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	h.setTokenCookie(w, token)

	respond(w, map[string]interface{}{
		"token":    token,
		"engineer": engineer,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondNoContent(w)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=5"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	engineer := middleware.GetEngineerFromContext(r.Context())
	if engineer == nil {
		respondWithError(w, http.StatusUnauthorized, "Missing credentials", nil)
		return
	}

	var request changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	v := validator.New()
	if err := v.Struct(request); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			respondWithError(w, http.StatusBadRequest, "Field "+e.Field()+" is invalid", nil)
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(engineer.PasswordHash), []byte(request.CurrentPassword)); err != nil {
		respondWithError(w, http.StatusBadRequest, "Current password is incorrect", nil)
		return
	}

	if request.NewPassword != request.ConfirmPassword {
		respondWithError(w, http.StatusBadRequest, "Passwords do not match", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	engineer.PasswordHash = string(hashedPassword)
	engineer.MustChangePassword = false
	if err := database.GetDB().Save(engineer).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update password", err)
		return
	}

	// Regenerate token with updated account state
	token, err := middleware.GenerateToken(engineer, h.config.JWTExpiration)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	h.setTokenCookie(w, token)

	respond(w, map[string]interface{}{
		"token":    token,
		"engineer": engineer,
	})
}

type createEngineerRequest struct {
	Username string      `json:"username" validate:"required,min=3"`
	FullName string      `json:"full_name" validate:"required"`
	Password string      `json:"password" validate:"required,min=5"`
	Role     models.Role `json:"role" validate:"omitempty,oneof=ADMIN ENGINEER"`
}

// CreateEngineer provisions an account. Admin only: onboarding is
// admin-controlled rather than open registration.
func (h *AuthHandler) CreateEngineer(w http.ResponseWriter, r *http.Request) {
	var request createEngineerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	v := validator.New()
	if err := v.Struct(request); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			respondWithError(w, http.StatusBadRequest, "Field "+e.Field()+" is invalid", nil)
			return
		}
	}

	var existing models.Engineer
	if err := database.GetDB().Where("username = ?", request.Username).First(&existing).Error; err == nil {
		respondWithError(w, http.StatusConflict, "Username already exists", nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	role := request.Role
	if role == "" {
		role = models.RoleEngineer
	}

	engineer := models.Engineer{
		Username:           request.Username,
		FullName:           request.FullName,
		PasswordHash:       string(hashedPassword),
		Role:               role,
		MustChangePassword: true,
	}

	if err := database.GetDB().Create(&engineer).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	respondWithStatus(w, engineer, http.StatusCreated)
}

func (h *AuthHandler) ListEngineers(w http.ResponseWriter, r *http.Request) {
	var engineers []models.Engineer
	if err := database.GetDB().Order("full_name asc").Find(&engineers).Error; err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load engineers", err)
		return
	}
	respond(w, engineers)
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
