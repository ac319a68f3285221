package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// postRow is one line of the post table shown on every page
type postRow struct {
	Title   string
	Author  string
	Snippet string
	HTML    template.HTML
}

// formValues echoes submitted input back into a re-rendered form
type formValues struct {
	Title      string
	Author     string
	Content    string
	NewTitle   string
	NewContent string
}

// Views serves the menu page and the add, delete and modify forms.
// Every page lists the current posts, so a form always shows what it acts on.
type Views struct {
	service *application.PostService
}

func NewViews(service *application.PostService) *Views {
	return &Views{service: service}
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Register installs the templates and page routes on router.
func (v *Views) Register(router *gin.Engine) error {
	tmpl, err := LoadTemplates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/", v.Menu)

	posts := router.Group("/posts")
	{
		posts.GET("/new", v.AddForm)
		posts.POST("/new", v.AddPost)
		posts.GET("/delete", v.DeleteForm)
		posts.POST("/delete", v.DeletePost)
		posts.GET("/modify", v.ModifyForm)
		posts.POST("/modify", v.ModifyPost)
	}

	return nil
}

func (v *Views) Menu(c *gin.Context) {
	author := c.Query("author")
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Page":   "Blog",
		"Notice": c.Query("notice"),
		"Author": author,
		"Posts":  v.rows(v.service.ListPosts(author)),
	})
}

func (v *Views) AddForm(c *gin.Context) {
	v.renderForm(c, http.StatusOK, "add.html", "Add post", nil, formValues{})
}

func (v *Views) AddPost(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")
	content := c.PostForm("content")

	if _, err := v.service.AddPost(title, author, content); err != nil {
		v.renderForm(c, statusFor(err), "add.html", "Add post", err, formValues{
			Title:   title,
			Author:  author,
			Content: content,
		})
		return
	}

	returnToMenu(c, application.AddedMessage)
}

func (v *Views) DeleteForm(c *gin.Context) {
	v.renderForm(c, http.StatusOK, "delete.html", "Delete post", nil, formValues{Title: c.Query("title")})
}

func (v *Views) DeletePost(c *gin.Context) {
	title := c.PostForm("title")

	if err := v.service.DeletePost(title); err != nil {
		v.renderForm(c, statusFor(err), "delete.html", "Delete post", err, formValues{Title: title})
		return
	}

	returnToMenu(c, application.DeletedMessage)
}

func (v *Views) ModifyForm(c *gin.Context) {
	v.renderForm(c, http.StatusOK, "modify.html", "Modify post", nil, formValues{Title: c.Query("title")})
}

func (v *Views) ModifyPost(c *gin.Context) {
	currentTitle := c.PostForm("title")
	newTitle := c.PostForm("new_title")
	newContent := c.PostForm("new_content")

	outcome, err := v.service.ModifyPost(currentTitle, newTitle, newContent)
	if err != nil {
		v.renderForm(c, statusFor(err), "modify.html", "Modify post", err, formValues{
			Title:      currentTitle,
			NewTitle:   newTitle,
			NewContent: newContent,
		})
		return
	}

	returnToMenu(c, outcome.Message())
}

func (v *Views) renderForm(c *gin.Context, status int, name string, page string, err error, form formValues) {
	c.HTML(status, name, gin.H{
		"Page":  page,
		"Error": application.UserMessage(err),
		"Form":  form,
		"Posts": v.rows(v.service.ListPosts("")),
	})
}

func (v *Views) rows(posts []domain.Post) []postRow {
	rows := make([]postRow, 0, len(posts))
	for _, p := range posts {
		row := postRow{
			Title:  p.Title,
			Author: p.Author,
		}

		result, err := v.service.RenderPost(p)
		if err != nil {
			row.Snippet = p.Content
			row.HTML = template.HTML(template.HTMLEscapeString(p.Content))
		} else {
			row.Snippet = result.Snippet
			row.HTML = template.HTML(result.HTMLContent)
		}

		rows = append(rows, row)
	}
	return rows
}

func returnToMenu(c *gin.Context, notice string) {
	c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(notice))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound
	case application.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
