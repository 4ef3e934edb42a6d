package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"inkwell/app/models"
)

// SaveSession writes the client's token and user to a JSON file so a
// later process can resume without logging in again.
func (c *Client) SaveSession(path string, user *models.User) error {
	data, err := json.MarshalIndent(Session{Token: c.Token, User: user}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadSession restores a saved token into the client and returns the
// saved user. A missing file leaves the client unauthenticated without
// error.
func (c *Client) LoadSession(path string) (*models.User, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	c.Token = session.Token
	return session.User, nil
}

// ClearSession forgets the client's token and removes the session file
// if one exists.
func (c *Client) ClearSession(path string) error {
	c.Token = ""
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
