package dto

import (
	"time"
)

// Author is the read-time identity join: username + picture for display,
// never stored on the post itself.
type Author struct {
	ID             string `json:"_id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

type FeedComment struct {
	ID        string    `json:"_id"`
	User      Author    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedPost is a post with its author (and every comment's author)
// resolved for rendering.
type FeedPost struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"discription"`
	Photo       string        `json:"photo,omitempty"`
	Video       string        `json:"video,omitempty"`
	Likes       int           `json:"likes"`
	Liked       []string      `json:"liked"`
	Comments    []FeedComment `json:"comments"`
	User        Author        `json:"user"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type CreatePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ===== Error Response =====

type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}
