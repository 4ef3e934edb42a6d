// Package client provides a Go client for the Inkwell API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"inkwell/app/models"
)

// Client is an Inkwell API client. Register or Login stores the bearer
// token, after which the authenticated methods work.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// New creates a new Inkwell client.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Session is the token and user returned by register and login.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// PostFields holds the writable fields of a post. Empty fields are
// omitted, which on update keeps the stored value.
type PostFields struct {
	Title     string
	Content   string
	Category  string
	ImagePath string
}

// Register creates an account and stores the returned token.
func (c *Client) Register(name, email, password string) (*models.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var session Session
	if err := c.doJSON(http.MethodPost, "/api/users/register", body, &session); err != nil {
		return nil, err
	}
	c.Token = session.Token
	return session.User, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(email, password string) (*models.User, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.doJSON(http.MethodPost, "/api/users/login", body, &session); err != nil {
		return nil, err
	}
	c.Token = session.Token
	return session.User, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile() (*models.User, error) {
	var user models.User
	if err := c.doJSON(http.MethodGet, "/api/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name, email or bio. Empty fields keep their
// stored value.
func (c *Client) UpdateProfile(name, email, bio string) (*models.User, error) {
	body := map[string]string{}
	if name != "" {
		body["name"] = name
	}
	if email != "" {
		body["email"] = email
	}
	if bio != "" {
		body["bio"] = bio
	}

	var user models.User
	if err := c.doJSON(http.MethodPut, "/api/users/profile", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.doJSON(http.MethodPut, "/api/users/password", body, nil)
}

// GetPosts fetches all posts, newest first.
func (c *Client) GetPosts() ([]*models.Post, error) {
	var posts []*models.Post
	if err := c.doJSON(http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post.
func (c *Client) GetPost(id int) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// MyPosts fetches the authenticated user's posts.
func (c *Client) MyPosts() ([]*models.Post, error) {
	var posts []*models.Post
	if err := c.doJSON(http.MethodGet, "/api/posts/user", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post, uploading the image file if ImagePath is
// set.
func (c *Client) CreatePost(fields PostFields) (*models.Post, error) {
	var post models.Post
	if err := c.doForm(http.MethodPost, "/api/posts", fields, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post you own (or any post as admin).
func (c *Client) UpdatePost(id int, fields PostFields) (*models.Post, error) {
	var post models.Post
	if err := c.doForm(http.MethodPut, fmt.Sprintf("/api/posts/%d", id), fields, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post you own (or any post as admin).
func (c *Client) DeletePost(id int) error {
	return c.doJSON(http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil)
}

// AddComment comments on a post and returns the updated post.
func (c *Client) AddComment(postID int, content string) (*models.Post, error) {
	body := map[string]string{"content": content}

	var post models.Post
	if err := c.doJSON(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleLike likes a post, or removes the like if already present, and
// returns the updated post.
func (c *Client) ToggleLike(postID int) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(http.MethodPut, fmt.Sprintf("/api/posts/%d/like", postID), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Stats fetches the admin dashboard counters.
func (c *Client) Stats() (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.doJSON(http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Users fetches all users (admin only).
func (c *Client) Users() ([]*models.User, error) {
	var users []*models.User
	if err := c.doJSON(http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user account (admin only).
func (c *Client) DeleteUser(id int) error {
	return c.doJSON(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

// SetUserRole grants or revokes admin rights (admin only).
func (c *Client) SetUserRole(id int, isAdmin bool) (*models.User, error) {
	body := map[string]bool{"isAdmin": isAdmin}

	var user models.User
	if err := c.doJSON(http.MethodPut, fmt.Sprintf("/api/admin/users/%d", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// doJSON performs a request with an optional JSON body, decoding the
// JSON response into dest when dest is non-nil.
func (c *Client) doJSON(method, path string, body, dest interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, dest)
}

// doForm performs a multipart request carrying the post fields and, if
// ImagePath is set, the image file.
func (c *Client) doForm(method, path string, fields PostFields, dest interface{}) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	values := map[string]string{
		"title":    fields.Title,
		"content":  fields.Content,
		"category": fields.Category,
	}
	for key, value := range values {
		if value == "" {
			continue
		}
		if err := form.WriteField(key, value); err != nil {
			return err
		}
	}

	if fields.ImagePath != "" {
		file, err := os.Open(fields.ImagePath)
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer file.Close()

		part, err := form.CreateFormFile("image", filepath.Base(fields.ImagePath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}

	if err := form.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &failure) == nil && failure.Message != "" {
			return fmt.Errorf("%s %s failed (%d): %s", req.Method, req.URL.Path, resp.StatusCode, failure.Message)
		}
		return fmt.Errorf("%s %s failed (%d)", req.Method, req.URL.Path, resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.Unmarshal(respBody, dest)
}
