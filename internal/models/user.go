package models

import "strings"

// Author is the public profile attached to anything a user created.
type Author struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsClaimed bool   `json:"is_claimed"`
}

// CreatedBy wraps the author profile the way the API nests it.
type CreatedBy struct {
	ID            int     `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	AuthorProfile *Author `json:"author_profile"`
}

// DisplayName returns "first last", or "" when nobody is attached.
func (c *CreatedBy) DisplayName() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Hub is a topic a document was posted in.
type Hub struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
