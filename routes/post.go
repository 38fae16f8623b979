package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/controllers"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/middleware"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/policy"
	"github.com/inquirylab/inquiry-board-be/util"
)

type postRoutes struct {
	controller *controllers.PostController
}

func AddPostRoutes(group *gin.RouterGroup, controller *controllers.PostController, adminDB db2.AdminDatabase) {
	routes := postRoutes{controller}
	posts := group.Group("/posts", middleware.Identity(adminDB))
	posts.GET("", util.HandlerWrapper(routes.getPosts, &util.HandlerOpts{}))
	posts.GET("/:id", util.HandlerWrapper(routes.getPostById, &util.HandlerOpts{}))
	posts.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
	posts.PUT("/:id", util.HandlerWrapper(routes.updatePost, &util.HandlerOpts{}))
	posts.DELETE("/:id", util.HandlerWrapper(routes.deletePost, &util.HandlerOpts{}))
	posts.POST("/:id/like", util.HandlerWrapper(routes.toggleLike, &util.HandlerOpts{}))
	posts.POST("/:id/pin", middleware.RequireAdmin(), util.HandlerWrapper(routes.togglePin, &util.HandlerOpts{}))
}

// bodyActor merges legacy body credentials into the resolved actor.
// Old clients send userId/token in the request body instead of
// headers; the admin flag always comes from Identity.
func bodyActor(c *gin.Context, userId, token string) policy.Actor {
	actor := middleware.GetActor(c)
	if actor.UserId == "" {
		actor.UserId = userId
	}
	actor.Token = token
	return actor
}

func (pr *postRoutes) getPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	return pr.controller.ListPosts(c, model.Category(c.Query("category")))
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	return pr.controller.GetPost(c, c.Param("id"))
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreatePostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.controller.CreatePost(c, &req)
}

type updatePostReq struct {
	controllers.UpdatePostReq
	UserId string `json:"userId"`
	Token  string `json:"token"`
}

func (pr *postRoutes) updatePost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req updatePostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.controller.UpdatePost(c, c.Param("id"), bodyActor(c, req.UserId, req.Token), &req.UpdatePostReq)
}

type deletePostReq struct {
	UserId string `json:"userId"`
	Token  string `json:"token"`
}

func (pr *postRoutes) deletePost(c *gin.Context) (interface{}, *util.HTTPError) {
	// body is optional here: admins delete with headers alone
	var req deletePostReq
	c.ShouldBindJSON(&req)
	if httpErr := pr.controller.DeletePost(c, c.Param("id"), bodyActor(c, req.UserId, req.Token)); httpErr != nil {
		return nil, httpErr
	}
	return gin.H{"deleted": true}, nil
}

type toggleLikeReq struct {
	UserId string `json:"userId"`
}

func (pr *postRoutes) toggleLike(c *gin.Context) (interface{}, *util.HTTPError) {
	var req toggleLikeReq
	c.ShouldBindJSON(&req)
	userId := req.UserId
	if userId == "" {
		userId = middleware.GetActor(c).UserId
	}
	return pr.controller.ToggleLike(c, c.Param("id"), userId)
}

func (pr *postRoutes) togglePin(c *gin.Context) (interface{}, *util.HTTPError) {
	return pr.controller.TogglePin(c, c.Param("id"), middleware.GetActor(c))
}
