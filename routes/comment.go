package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/controllers"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/middleware"
	"github.com/inquirylab/inquiry-board-be/util"
)

type commentRoutes struct {
	controller *controllers.CommentController
}

func AddCommentRoutes(group *gin.RouterGroup, controller *controllers.CommentController, adminDB db2.AdminDatabase) {
	routes := commentRoutes{controller}
	comments := group.Group("/posts/:id/comments", middleware.Identity(adminDB))
	comments.POST("", util.HandlerWrapper(routes.addComment, &util.HandlerOpts{}))
	comments.PUT("/:commentId", util.HandlerWrapper(routes.editComment, &util.HandlerOpts{}))
	comments.DELETE("/:commentId", util.HandlerWrapper(routes.deleteComment, &util.HandlerOpts{}))
}

func (cr *commentRoutes) addComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.AddCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.AddComment(c, c.Param("id"), &req)
}

type editCommentReq struct {
	controllers.EditCommentReq
	UserId string `json:"userId"`
}

func (cr *commentRoutes) editComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req editCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return cr.controller.EditComment(c, c.Param("id"), c.Param("commentId"),
		bodyActor(c, req.UserId, ""), &req.EditCommentReq)
}

type deleteCommentReq struct {
	UserId string `json:"userId"`
}

func (cr *commentRoutes) deleteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req deleteCommentReq
	c.ShouldBindJSON(&req)
	return cr.controller.DeleteComment(c, c.Param("id"), c.Param("commentId"),
		bodyActor(c, req.UserId, ""))
}
