package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyField          = errors.New("all fields must be filled")
	ErrMissingTitle        = errors.New("title to delete is empty")
	ErrMissingCurrentTitle = errors.New("current title is empty")
	ErrNoChanges           = errors.New("no changes requested")
)

// UserMessage turns an error from the service into the text shown to the user.
func UserMessage(err error) string {
	var nf *domain.NotFoundError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &nf):
		return fmt.Sprintf("Post '%s' not found.", nf.Title)
	case errors.Is(err, ErrEmptyField):
		return "All fields must be filled."
	case errors.Is(err, ErrMissingTitle):
		return "Please enter a title to delete."
	case errors.Is(err, ErrMissingCurrentTitle):
		return "Please enter the current title of the post to modify."
	case errors.Is(err, ErrNoChanges):
		return "No changes were made."
	default:
		return "Something went wrong: " + err.Error()
	}
}

// IsValidationError reports whether err was caused by the user's input rather than a missing post.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrMissingTitle) ||
		errors.Is(err, ErrMissingCurrentTitle) ||
		errors.Is(err, ErrNoChanges)
}

// ModifyOutcome describes which fields a ModifyPost call changed.
type ModifyOutcome int

const (
	TitleAndContent ModifyOutcome = iota
	TitleOnly
	ContentOnly
)

// Message is the confirmation shown to the user after a successful modification.
func (o ModifyOutcome) Message() string {
	switch o {
	case TitleOnly:
		return "Post's title updated successfully."
	case ContentOnly:
		return "Post's content updated successfully."
	default:
		return "Post updated successfully."
	}
}

// AddedMessage is the confirmation shown after AddPost succeeds.
const AddedMessage = "Post added successfully."

// DeletedMessage is the confirmation shown after DeletePost succeeds.
const DeletedMessage = "Post deleted successfully."

// PostService holds the form handling shared by every view.
// Views pass raw form input in; the service validates it and calls the repository.
type PostService struct {
	repo     domain.PostRepository
	markdown MarkdownRenderer
}

func NewPostService(repo domain.PostRepository, markdown MarkdownRenderer) *PostService {
	return &PostService{
		repo:     repo,
		markdown: markdown,
	}
}

// ListPosts returns every post, or only the posts by author when author is not blank.
func (s *PostService) ListPosts(author string) []domain.Post {
	author = strings.TrimSpace(author)
	if author == "" {
		return s.repo.ListAll()
	}
	return s.repo.ListByAuthor(author)
}

// AddPost appends a new post once all three fields are filled.
// Title and author are trimmed; content is stored as given.
func (s *PostService) AddPost(title, author, content string) (domain.Post, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" || strings.TrimSpace(content) == "" {
		return domain.Post{}, ErrEmptyField
	}

	post := domain.Post{
		Title:   title,
		Author:  author,
		Content: content,
	}
	s.repo.Add(post)

	log.Info().Str("title", title).Str("author", author).Msg("Post added")
	return post, nil
}

// DeletePost removes the first post matching title.
func (s *PostService) DeletePost(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrMissingTitle
	}

	if err := s.repo.DeleteByTitle(title); err != nil {
		log.Debug().Err(err).Str("title", title).Msg("Failed to delete post")
		return err
	}

	log.Info().Str("title", title).Msg("Post deleted")
	return nil
}

// ModifyPost updates the title, the content, or both of the post matching currentTitle.
// Both fields are applied to the same post in one store call.
func (s *PostService) ModifyPost(currentTitle, newTitle, newContent string) (ModifyOutcome, error) {
	currentTitle = strings.TrimSpace(currentTitle)
	newTitle = strings.TrimSpace(newTitle)
	newContent = strings.TrimSpace(newContent)

	if currentTitle == "" {
		return 0, ErrMissingCurrentTitle
	}

	var outcome ModifyOutcome
	switch {
	case newTitle != "" && newContent != "":
		outcome = TitleAndContent
	case newTitle != "":
		outcome = TitleOnly
	case newContent != "":
		outcome = ContentOnly
	default:
		return 0, ErrNoChanges
	}

	if err := s.repo.Modify(currentTitle, newTitle, newContent); err != nil {
		log.Debug().Err(err).Str("title", currentTitle).Msg("Failed to modify post")
		return 0, err
	}

	log.Info().
		Str("title", currentTitle).
		Str("newTitle", newTitle).
		Bool("contentChanged", newContent != "").
		Msg("Post modified")
	return outcome, nil
}

// RenderPost converts a post's content to HTML and extracts its listing snippet.
func (s *PostService) RenderPost(p domain.Post) (*MarkdownProcessingResult, error) {
	result, err := s.markdown.Render([]byte(p.Content))
	if err != nil {
		log.Error().Err(err).Str("title", p.Title).Msg("Failed to render post content")
		return nil, err
	}
	return result, nil
}
