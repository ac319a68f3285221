package rest

import (
	"errors"
	"net/http"

	"github.com/dfryer1193/blogdesk/api"
	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/dfryer1193/blogdesk/blog/domain"
	"github.com/gin-gonic/gin"
)

type PostsApi struct {
	service *application.PostService
}

func (a *PostsApi) GetPosts(c *gin.Context) {
	posts := a.service.ListPosts(c.Query("author"))

	resp := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toApiPost(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (a *PostsApi) CreatePost(c *gin.Context) {
	proto := &api.PostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	post, err := a.service.AddPost(proto.Title, proto.Author, proto.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toApiPost(post))
}

func (a *PostsApi) DeletePost(c *gin.Context) {
	if err := a.service.DeletePost(c.Param("title")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *PostsApi) ModifyPost(c *gin.Context) {
	proto := &api.ModifyPostProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	outcome, err := a.service.ModifyPost(c.Param("title"), proto.Title, proto.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Message{Message: outcome.Message()})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		status = http.StatusNotFound
	case application.IsValidationError(err):
		status = http.StatusBadRequest
	default:
		_ = c.Error(err)
	}

	c.JSON(status, api.Error{Error: application.UserMessage(err)})
}

func toApiPost(p domain.Post) api.Post {
	return api.Post{
		Title:   p.Title,
		Author:  p.Author,
		Content: p.Content,
	}
}
