package rest

import (
	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/gin-gonic/gin"
)

func NewApi(router *gin.Engine, service *application.PostService) {
	posts := &PostsApi{service: service}

	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", posts.GetPosts)
		postsV1.POST("/", posts.CreatePost)
		postsV1.DELETE("/:title", posts.DeletePost)
		postsV1.PATCH("/:title", posts.ModifyPost)
	}
}
