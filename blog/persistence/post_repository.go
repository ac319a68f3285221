package persistence

import (
	"strings"
	"sync"

	"github.com/dfryer1193/blogdesk/blog/domain"
)

var _ domain.PostRepository = (*MemoryPostRepository)(nil)

// MemoryPostRepository implements domain.PostRepository over an in-memory slice.
// Lookups are linear scans; the collection is expected to stay small.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// NewPostRepository creates a MemoryPostRepository holding a copy of the given posts, in order.
func NewPostRepository(seed []domain.Post) *MemoryPostRepository {
	posts := make([]domain.Post, len(seed))
	copy(posts, seed)
	return &MemoryPostRepository{
		posts: posts,
	}
}

// ListAll returns a copy of every post in insertion order
func (r *MemoryPostRepository) ListAll() []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]domain.Post, len(r.posts))
	copy(posts, r.posts)
	return posts
}

// ListByAuthor returns a copy of the posts whose author matches, ignoring case
func (r *MemoryPostRepository) ListByAuthor(author string) []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]domain.Post, 0)
	for _, p := range r.posts {
		if strings.EqualFold(p.Author, author) {
			posts = append(posts, p)
		}
	}
	return posts
}

// Add appends a post to the end of the collection
func (r *MemoryPostRepository) Add(p domain.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, p)
}

// DeleteByTitle removes the first post whose title matches, ignoring case
func (r *MemoryPostRepository) DeleteByTitle(title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(title)
	if i == -1 {
		return &domain.NotFoundError{Title: title}
	}

	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return nil
}

// ModifyTitle overwrites the title of the first matching post with newTitle as given
func (r *MemoryPostRepository) ModifyTitle(currentTitle string, newTitle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(currentTitle)
	if i == -1 {
		return &domain.NotFoundError{Title: currentTitle}
	}

	r.posts[i].Title = newTitle
	return nil
}

// ModifyContent overwrites the content of the first matching post
func (r *MemoryPostRepository) ModifyContent(title string, newContent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(title)
	if i == -1 {
		return &domain.NotFoundError{Title: title}
	}

	r.posts[i].Content = newContent
	return nil
}

// Modify updates the title and/or content of the first matching post under one lock
func (r *MemoryPostRepository) Modify(title string, newTitle string, newContent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(title)
	if i == -1 {
		return &domain.NotFoundError{Title: title}
	}

	if newContent != "" {
		r.posts[i].Content = newContent
	}
	if newTitle != "" {
		r.posts[i].Title = newTitle
	}
	return nil
}

// indexOf must be called with the lock held.
func (r *MemoryPostRepository) indexOf(title string) int {
	for i, p := range r.posts {
		if strings.EqualFold(p.Title, title) {
			return i
		}
	}
	return -1
}
