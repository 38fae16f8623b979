package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/controllers"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/middleware"
	"github.com/inquirylab/inquiry-board-be/util"
)

type adminRoutes struct {
	controller *controllers.AdminController
}

func AddAdminRoutes(group *gin.RouterGroup, controller *controllers.AdminController, adminDB db2.AdminDatabase) {
	routes := adminRoutes{controller}
	group.POST("/admin/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))

	admins := group.Group("/admins", middleware.Identity(adminDB), middleware.RequireAdmin())
	admins.GET("", util.HandlerWrapper(routes.listAdmins, &util.HandlerOpts{}))
	admins.PUT("", util.HandlerWrapper(routes.createAdmin, &util.HandlerOpts{}))
	admins.DELETE("/:id", util.HandlerWrapper(routes.removeAdmin, &util.HandlerOpts{}))
	admins.POST("/:id/password", util.HandlerWrapper(routes.changePassword, &util.HandlerOpts{}))
}

type loginReq struct {
	Id       string `json:"id"`
	Password string `json:"password"`
}

func (ar *adminRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req loginReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.controller.Login(c, req.Id, req.Password)
}

func (ar *adminRoutes) listAdmins(c *gin.Context) (interface{}, *util.HTTPError) {
	return ar.controller.ListAdmins(c)
}

type createAdminReq struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (ar *adminRoutes) createAdmin(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createAdminReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return ar.controller.CreateAdmin(c, req.Id, req.Name, req.Password)
}

func (ar *adminRoutes) removeAdmin(c *gin.Context) (interface{}, *util.HTTPError) {
	if httpErr := ar.controller.RemoveAdmin(c, c.Param("id")); httpErr != nil {
		return nil, httpErr
	}
	return gin.H{"deleted": true}, nil
}

type changePasswordReq struct {
	Password string `json:"password"`
}

func (ar *adminRoutes) changePassword(c *gin.Context) (interface{}, *util.HTTPError) {
	var req changePasswordReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if httpErr := ar.controller.ChangePassword(c, c.Param("id"), req.Password); httpErr != nil {
		return nil, httpErr
	}
	return gin.H{"changed": true}, nil
}
