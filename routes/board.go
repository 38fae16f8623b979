package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/app"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/util"
)

type boardRoutes struct {
	db db2.PostDatabase
}

func AddBoardRoutes(group *gin.RouterGroup, db db2.PostDatabase) {
	routes := boardRoutes{db}
	board := group.Group("/board")
	board.GET("", util.HandlerWrapper(routes.getBoard, &util.HandlerOpts{}))
}

func (br *boardRoutes) getBoard(c *gin.Context) (interface{}, *util.HTTPError) {
	category := model.Category(c.Query("category"))
	if category != "" && !category.IsValid() {
		return nil, util.BuildBadRequestHTTPErr("unknown category")
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	boardPage, err := app.GetBoardPage(c, br.db, &app.BoardQuery{
		Category: category,
		Page:     page,
		LikedBy:  c.Query("likedBy"),
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return boardPage, nil
}
