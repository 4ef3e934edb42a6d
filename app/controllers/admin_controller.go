package controllers

import (
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
)

const recentLimit = 5

// AdminController handles the admin dashboard and moderation requests.
// All routes are gated behind the admin middleware.
type AdminController struct {
	admin *services.AdminService
	posts *services.PostService
}

// NewAdminController creates a new AdminController
func NewAdminController(admin *services.AdminService, posts *services.PostService) *AdminController {
	return &AdminController{admin: admin, posts: posts}
}

type updateRoleRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

// Stats handles GET /api/admin/stats
func (ac *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.admin.Stats()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, stats)
}

// Posts handles GET /api/admin/posts
func (ac *AdminController) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := ac.posts.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// RecentPosts handles GET /api/admin/posts/recent
func (ac *AdminController) RecentPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := ac.posts.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	if len(posts) > recentLimit {
		posts = posts[:recentLimit]
	}
	sendJSON(w, http.StatusOK, posts)
}

// Users handles GET /api/admin/users
func (ac *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	users, err := ac.admin.ListUsers()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, users)
}

// RecentUsers handles GET /api/admin/users/recent
func (ac *AdminController) RecentUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ac.admin.RecentUsers(recentLimit)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (ac *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	if err := ac.admin.DeleteUser(caller.ID, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "user removed"})
}

// UpdateUserRole handles PUT /api/admin/users/{id}
func (ac *AdminController) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	var req updateRoleRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	user, err := ac.admin.SetAdmin(id, req.IsAdmin)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, user)
}
