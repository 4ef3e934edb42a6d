package routes

import (
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/uploads"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services and controllers onto the router
// and wraps everything in the request timeout.
func Setup(cfg config.Config, db *badger.DB) http.Handler {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	tokens := auth.NewTokens(cfg.TokenSecret, cfg.TokenTTL)
	images := uploads.NewStore(cfg.UploadsDir)

	userService := services.NewUserService(userRepo, tokens)
	postService := services.NewPostService(postRepo, userRepo, images)
	adminService := services.NewAdminService(userRepo, postRepo)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService, images)
	adminController := controllers.NewAdminController(adminService, postService)

	protect := middleware.Authenticate(tokens, userRepo)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Uploaded images are served as static files.
	router.PathPrefix(uploads.PathPrefix).Handler(
		http.StripPrefix(uploads.PathPrefix, http.FileServer(http.Dir(images.Dir()))))

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"API is running"}`))
	}).Methods("GET")

	// User routes.
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("/register", userController.Register).Methods("POST")
	users.HandleFunc("/login", userController.Login).Methods("POST")
	users.Handle("/profile", protect(http.HandlerFunc(userController.Profile))).Methods("GET")
	users.Handle("/profile", protect(http.HandlerFunc(userController.UpdateProfile))).Methods("PUT")
	users.Handle("/password", protect(http.HandlerFunc(userController.UpdatePassword))).Methods("PUT")

	// Post routes.
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("", protect(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/user", protect(http.HandlerFunc(postController.Mine))).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.Handle("/{id:[0-9]+}", protect(http.HandlerFunc(postController.Update))).Methods("PUT")
	posts.Handle("/{id:[0-9]+}", protect(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.Handle("/{id:[0-9]+}/comments", protect(http.HandlerFunc(postController.Comment))).Methods("POST")
	posts.Handle("/{id:[0-9]+}/like", protect(http.HandlerFunc(postController.Like))).Methods("PUT")

	// Admin routes, all behind the admin gate.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(protect, middleware.RequireAdmin)
	admin.HandleFunc("/stats", adminController.Stats).Methods("GET")
	admin.HandleFunc("/posts", adminController.Posts).Methods("GET")
	admin.HandleFunc("/posts/recent", adminController.RecentPosts).Methods("GET")
	admin.HandleFunc("/users", adminController.Users).Methods("GET")
	admin.HandleFunc("/users/recent", adminController.RecentUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}", adminController.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/users/{id:[0-9]+}", adminController.UpdateUserRole).Methods("PUT")

	// Every request shares one deadline; a slow handler is cut off
	// with the same {message} body shape the error mapper produces.
	return http.TimeoutHandler(router, cfg.RequestTimeout, `{"message":"request timed out"}`)
}
