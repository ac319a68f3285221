package domain

import (
	"errors"
	"fmt"
)

// ErrPostNotFound is matched by every error returned when a title lookup finds no post.
var ErrPostNotFound = errors.New("post not found")

// Post represents a blog post.
// The title is the lookup key for every store operation, but uniqueness is not enforced.
type Post struct {
	Title   string
	Author  string
	Content string
}

func (p Post) String() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nContent: %s\n", p.Title, p.Author, p.Content)
}

// NotFoundError reports the title that matched no post.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post '%s' not found", e.Title)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrPostNotFound
}

// PostRepository is an ordered collection of posts.
// Title matching is case-insensitive and always acts on the first match in insertion order.
type PostRepository interface {
	ListAll() []Post
	ListByAuthor(author string) []Post
	Add(p Post)
	DeleteByTitle(title string) error
	ModifyTitle(currentTitle string, newTitle string) error
	ModifyContent(title string, newContent string) error
	// Modify applies newTitle and newContent to one post in a single step.
	// An empty value leaves that field as it is.
	Modify(title string, newTitle string, newContent string) error
}
