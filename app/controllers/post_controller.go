package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inkwell/app/middleware"
	"inkwell/app/services"
	"inkwell/app/uploads"

	"github.com/gorilla/mux"
)

// maxUploadBytes bounds the in-memory part of multipart parsing.
const maxUploadBytes = 10 << 20

// PostController handles HTTP requests for blog posts
type PostController struct {
	posts  *services.PostService
	images *uploads.Store
}

// NewPostController creates a new PostController
func NewPostController(posts *services.PostService, images *uploads.Store) *PostController {
	return &PostController{posts: posts, images: images}
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// postInput is the parsed body of a create or update request: the
// field values plus the stored image path if one was uploaded.
type postInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// Index handles GET /api/posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles GET /api/posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.posts.GetPost(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Mine handles GET /api/posts/user
func (pc *PostController) Mine(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	posts, err := pc.posts.ListPostsByAuthor(caller.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Create handles POST /api/posts (multipart form with optional image)
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	input, err := pc.parsePostForm(r)
	if err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.posts.CreatePost(caller.ID, input.Title, input.Content, input.Category, input.Image)
	if err != nil {
		// The stored file would be orphaned if creation failed.
		if input.Image != "" {
			_ = pc.images.Remove(input.Image)
		}
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/posts/{id} (multipart form, partial fields)
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	input, err := pc.parsePostForm(r)
	if err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.posts.UpdatePost(id, caller, services.UpdatePostInput{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Image:    input.Image,
	})
	if err != nil {
		if input.Image != "" {
			_ = pc.images.Remove(input.Image)
		}
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	if err := pc.posts.DeletePost(id, caller); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "post removed"})
}

// Comment handles POST /api/posts/{id}/comments
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	var req commentRequest
	if err := readJSON(r.Body, &req); err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.posts.AddComment(id, caller.ID, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Like handles PUT /api/posts/{id}/like
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CurrentUser(r.Context())

	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	post, err := pc.posts.ToggleLike(id, caller.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// parsePostForm reads title/content/category from either a multipart
// form or a JSON body, storing an uploaded image file if present.
func (pc *PostController) parsePostForm(r *http.Request) (postInput, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Category string `json:"category"`
		}
		if err := readJSON(r.Body, &req); err != nil {
			return postInput{}, err
		}
		return postInput{Title: req.Title, Content: req.Content, Category: req.Category}, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return postInput{}, fmt.Errorf("%w: invalid multipart form: %v", services.ErrValidation, err)
	}

	input := postInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return input, nil
	}
	if err != nil {
		return postInput{}, fmt.Errorf("%w: invalid image upload: %v", services.ErrValidation, err)
	}
	defer file.Close()

	imagePath, err := pc.images.Save(file, header)
	if err != nil {
		return postInput{}, err
	}
	input.Image = imagePath
	return input, nil
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id", services.ErrValidation)
	}
	return id, nil
}
