package persistence

import (
	"errors"
	"testing"

	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/google/go-cmp/cmp"
)

// setupTestRepo creates a repository holding two posts
func setupTestRepo(t *testing.T) *MemoryPostRepository {
	t.Helper()
	return NewPostRepository([]domain.Post{
		{Title: "P1", Author: "A1", Content: "C1"},
		{Title: "P2", Author: "A2", Content: "C2"},
	})
}

func TestNewPostRepository(t *testing.T) {
	seed := domain.SamplePosts()
	repo := NewPostRepository(seed)
	if repo == nil {
		t.Fatal("NewPostRepository returned nil")
	}

	if diff := cmp.Diff(seed, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}

	// The seed slice is copied, not shared
	seed[0].Title = "changed"
	if repo.ListAll()[0].Title != "Pierwszy post" {
		t.Error("repository should not share the seed slice")
	}
}

func TestNewPostRepository_Empty(t *testing.T) {
	repo := NewPostRepository(nil)

	posts := repo.ListAll()
	if posts == nil {
		t.Error("ListAll should return empty slice, not nil")
	}
	if len(posts) != 0 {
		t.Errorf("ListAll returned %d posts, want 0", len(posts))
	}
}

func TestPostRepository_Add(t *testing.T) {
	repo := setupTestRepo(t)
	before := len(repo.ListAll())

	post := domain.Post{Title: "P3", Author: "A3", Content: "C3"}
	repo.Add(post)

	posts := repo.ListAll()
	if len(posts) != before+1 {
		t.Fatalf("len(ListAll()) = %d, want %d", len(posts), before+1)
	}
	if posts[len(posts)-1] != post {
		t.Errorf("last post = %+v, want %+v", posts[len(posts)-1], post)
	}
}

func TestPostRepository_Add_DuplicateTitle(t *testing.T) {
	repo := setupTestRepo(t)

	repo.Add(domain.Post{Title: "p1", Author: "other", Content: "dup"})

	if len(repo.ListAll()) != 3 {
		t.Errorf("duplicate titles should be accepted, got %d posts", len(repo.ListAll()))
	}
}

func TestPostRepository_ListAll_ReturnsCopy(t *testing.T) {
	repo := setupTestRepo(t)

	posts := repo.ListAll()
	posts[0].Title = "mutated"
	posts = append(posts, domain.Post{Title: "extra"})

	got := repo.ListAll()
	if got[0].Title != "P1" {
		t.Errorf("Title = %q, want %q", got[0].Title, "P1")
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	repo := NewPostRepository(domain.SamplePosts())

	tests := []struct {
		name     string
		author   string
		expected []string
	}{
		{
			name:     "Exact match",
			author:   "Marcel Kuczek",
			expected: []string{"Pierwszy post", "Czwarty post"},
		},
		{
			name:     "Different case",
			author:   "jan kowalski",
			expected: []string{"Drugi post"},
		},
		{
			name:     "Unknown author",
			author:   "Nobody",
			expected: []string{},
		},
		{
			name:     "Empty author",
			author:   "",
			expected: []string{},
		},
		{
			name:     "Partial name does not match",
			author:   "Marcel",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := repo.ListByAuthor(tt.author)
			if posts == nil {
				t.Fatal("ListByAuthor should return empty slice, not nil")
			}

			titles := make([]string, 0, len(posts))
			for _, p := range posts {
				titles = append(titles, p.Title)
			}
			if diff := cmp.Diff(tt.expected, titles); diff != "" {
				t.Errorf("ListByAuthor(%q) mismatch (-want +got):\n%s", tt.author, diff)
			}
		})
	}
}

func TestPostRepository_DeleteByTitle(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.DeleteByTitle("P1")
	if err != nil {
		t.Fatalf("DeleteByTitle failed: %v", err)
	}

	want := []domain.Post{{Title: "P2", Author: "A2", Content: "C2"}}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_DeleteByTitle_CaseInsensitive(t *testing.T) {
	repo := NewPostRepository(nil)
	repo.Add(domain.Post{Title: "Post A", Author: "Author", Content: "Content"})

	err := repo.DeleteByTitle("post a")
	if err != nil {
		t.Fatalf("DeleteByTitle failed: %v", err)
	}
	if len(repo.ListAll()) != 0 {
		t.Errorf("post was not deleted")
	}
}

func TestPostRepository_DeleteByTitle_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	before := repo.ListAll()

	err := repo.DeleteByTitle("missing")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("DeleteByTitle error = %v, want ErrPostNotFound", err)
	}

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Title != "missing" {
		t.Errorf("error should carry the missing title, got %v", err)
	}

	if diff := cmp.Diff(before, repo.ListAll()); diff != "" {
		t.Errorf("store changed on failed delete (-want +got):\n%s", diff)
	}
}

func TestPostRepository_DeleteByTitle_EmptyStore(t *testing.T) {
	repo := NewPostRepository(nil)

	err := repo.DeleteByTitle("X")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("DeleteByTitle error = %v, want ErrPostNotFound", err)
	}
	if len(repo.ListAll()) != 0 {
		t.Errorf("store should remain empty")
	}
}

func TestPostRepository_DeleteByTitle_FirstMatchOnly(t *testing.T) {
	repo := NewPostRepository([]domain.Post{
		{Title: "Dup", Author: "first", Content: "1"},
		{Title: "Other", Author: "x", Content: "2"},
		{Title: "DUP", Author: "second", Content: "3"},
	})

	if err := repo.DeleteByTitle("dup"); err != nil {
		t.Fatalf("DeleteByTitle failed: %v", err)
	}

	want := []domain.Post{
		{Title: "Other", Author: "x", Content: "2"},
		{Title: "DUP", Author: "second", Content: "3"},
	}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_ModifyTitle(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.ModifyTitle("p2", "Renamed")
	if err != nil {
		t.Fatalf("ModifyTitle failed: %v", err)
	}

	want := []domain.Post{
		{Title: "P1", Author: "A1", Content: "C1"},
		{Title: "Renamed", Author: "A2", Content: "C2"},
	}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_ModifyTitle_Verbatim(t *testing.T) {
	repo := setupTestRepo(t)

	// No emptiness or uniqueness checks at the store level
	if err := repo.ModifyTitle("P1", "P2"); err != nil {
		t.Fatalf("ModifyTitle failed: %v", err)
	}
	if err := repo.ModifyTitle("P2", ""); err != nil {
		t.Fatalf("ModifyTitle failed: %v", err)
	}

	posts := repo.ListAll()
	if posts[0].Title != "" {
		t.Errorf("Title = %q, want empty", posts[0].Title)
	}
	if posts[1].Title != "P2" {
		t.Errorf("Title = %q, want %q", posts[1].Title, "P2")
	}
}

func TestPostRepository_ModifyTitle_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	before := repo.ListAll()

	err := repo.ModifyTitle("missing", "New")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("ModifyTitle error = %v, want ErrPostNotFound", err)
	}
	if diff := cmp.Diff(before, repo.ListAll()); diff != "" {
		t.Errorf("store changed on failed modify (-want +got):\n%s", diff)
	}
}

func TestPostRepository_ModifyContent(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.ModifyContent("P1", "New content")
	if err != nil {
		t.Fatalf("ModifyContent failed: %v", err)
	}

	want := []domain.Post{
		{Title: "P1", Author: "A1", Content: "New content"},
		{Title: "P2", Author: "A2", Content: "C2"},
	}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_ModifyContent_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.ModifyContent("missing", "New content")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("ModifyContent error = %v, want ErrPostNotFound", err)
	}
}

func TestPostRepository_InterfaceCompliance(t *testing.T) {
	var _ domain.PostRepository = (*MemoryPostRepository)(nil)
}

func setupDuplicateRepo(t *testing.T) *MemoryPostRepository {
	t.Helper()
	return NewPostRepository([]domain.Post{
		{Title: "Dup", Author: "first", Content: "1"},
		{Title: "Other", Author: "x", Content: "2"},
		{Title: "DUP", Author: "second", Content: "3"},
	})
}

func TestPostRepository_ModifyTitle_FirstMatchOnly(t *testing.T) {
	repo := setupDuplicateRepo(t)

	if err := repo.ModifyTitle("dup", "Renamed"); err != nil {
		t.Fatalf("ModifyTitle failed: %v", err)
	}

	want := []domain.Post{
		{Title: "Renamed", Author: "first", Content: "1"},
		{Title: "Other", Author: "x", Content: "2"},
		{Title: "DUP", Author: "second", Content: "3"},
	}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_ModifyContent_FirstMatchOnly(t *testing.T) {
	repo := setupDuplicateRepo(t)

	if err := repo.ModifyContent("dup", "changed"); err != nil {
		t.Fatalf("ModifyContent failed: %v", err)
	}

	want := []domain.Post{
		{Title: "Dup", Author: "first", Content: "changed"},
		{Title: "Other", Author: "x", Content: "2"},
		{Title: "DUP", Author: "second", Content: "3"},
	}
	if diff := cmp.Diff(want, repo.ListAll()); diff != "" {
		t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepository_Modify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		newTitle    string
		newContent  string
		expectedErr error
		expected    []domain.Post
	}{
		{
			name:       "Title and content on first duplicate",
			title:      "dup",
			newTitle:   "Renamed",
			newContent: "changed",
			expected: []domain.Post{
				{Title: "Renamed", Author: "first", Content: "changed"},
				{Title: "Other", Author: "x", Content: "2"},
				{Title: "DUP", Author: "second", Content: "3"},
			},
		},
		{
			name:     "Empty content is left unchanged",
			title:    "Other",
			newTitle: "Renamed",
			expected: []domain.Post{
				{Title: "Dup", Author: "first", Content: "1"},
				{Title: "Renamed", Author: "x", Content: "2"},
				{Title: "DUP", Author: "second", Content: "3"},
			},
		},
		{
			name:       "Empty title is left unchanged",
			title:      "Other",
			newContent: "changed",
			expected: []domain.Post{
				{Title: "Dup", Author: "first", Content: "1"},
				{Title: "Other", Author: "x", Content: "changed"},
				{Title: "DUP", Author: "second", Content: "3"},
			},
		},
		{
			name:        "Not found leaves store unchanged",
			title:       "missing",
			newTitle:    "Renamed",
			newContent:  "changed",
			expectedErr: domain.ErrPostNotFound,
			expected: []domain.Post{
				{Title: "Dup", Author: "first", Content: "1"},
				{Title: "Other", Author: "x", Content: "2"},
				{Title: "DUP", Author: "second", Content: "3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupDuplicateRepo(t)

			err := repo.Modify(tt.title, tt.newTitle, tt.newContent)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("Modify error = %v, want %v", err, tt.expectedErr)
			}
			if diff := cmp.Diff(tt.expected, repo.ListAll()); diff != "" {
				t.Errorf("ListAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
