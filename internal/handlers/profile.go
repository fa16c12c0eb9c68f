package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ishpreet36752/Trawell-Backend/internal/models"
	"github.com/ishpreet36752/Trawell-Backend/internal/services"
)

var allowedGenders = map[string]struct{}{
	"male":   {},
	"female": {},
	"others": {},
}

type ProfileHandler struct {
	userService services.UserServiceInterface
}

func NewProfileHandler(userService services.UserServiceInterface) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Image     *string `json:"image,omitempty"`
	About     *string `json:"about,omitempty"`
}

type ProfileResponse struct {
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{User: user})
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FirstName != nil {
		trimmed := strings.TrimSpace(*req.FirstName)
		req.FirstName = &trimmed
		if err := validateName("First name", trimmed); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.LastName != nil {
		trimmed := strings.TrimSpace(*req.LastName)
		req.LastName = &trimmed
		if err := validateName("Last name", trimmed); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Age != nil {
		if err := validateAge(*req.Age); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Gender != nil {
		if err := validateGender(*req.Gender); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Image != nil && len(*req.Image) > 2048 {
		writeError(w, http.StatusBadRequest, "Image URL must be at most 2048 characters")
		return
	}
	if req.About != nil && len(*req.About) > 500 {
		writeError(w, http.StatusBadRequest, "About must be at most 500 characters")
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, models.UpdateProfileParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Gender:    req.Gender,
		Image:     req.Image,
		About:     req.About,
	})
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{User: updated, Message: "Profile updated"})
}

func validateName(field, value string) error {
	if len(value) < 1 || len(value) > 100 {
		return fmt.Errorf("%s must be between 1 and 100 characters", field)
	}
	return nil
}

func validateAge(age int) error {
	if age < 18 {
		return errors.New("Age must be at least 18")
	}
	if age > 120 {
		return errors.New("Age must be at most 120")
	}
	return nil
}

func validateGender(gender string) error {
	if _, ok := allowedGenders[gender]; !ok {
		return errors.New("Gender must be one of male, female, others")
	}
	return nil
}
