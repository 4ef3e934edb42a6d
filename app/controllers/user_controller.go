package controllers

import (
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
)

// UserController handles registration, login and profile requests.
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Bio   string `json:"bio" validate:"omitempty,max=500"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register handles POST /api/users/register
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	user, token, err := uc.users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, sessionResponse{Token: token, User: user})
}

// Login handles POST /api/users/login
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	user, token, err := uc.users.Login(req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, sessionResponse{Token: token, User: user})
}

// Profile handles GET /api/users/profile
func (uc *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	user, err := uc.users.GetProfile(caller.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/profile
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	var req updateProfileRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	user, err := uc.users.UpdateProfile(caller.ID, req.Name, req.Email, req.Bio)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}

// UpdatePassword handles PUT /api/users/password
func (uc *UserController) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	var req updatePasswordRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	if err := uc.users.UpdatePassword(caller.ID, req.CurrentPassword, req.NewPassword); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
