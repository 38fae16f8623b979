package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inquirylab/inquiry-board-be/config"
	"github.com/inquirylab/inquiry-board-be/model"
	"github.com/inquirylab/inquiry-board-be/services"
	"github.com/inquirylab/inquiry-board-be/util"
)

type uploadRoutes struct {
	bucket *services.StorageBucket
}

func AddUploadRoutes(group *gin.RouterGroup, bucket *services.StorageBucket) {
	routes := uploadRoutes{bucket}
	group.POST("/upload", util.HandlerWrapper(routes.upload, &util.HandlerOpts{}))
}

func mediaTypeOf(contentType string) model.MediaType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return model.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return model.MediaTypeVideo
	default:
		return model.MediaTypeNone
	}
}

func (ur *uploadRoutes) upload(c *gin.Context) (interface{}, *util.HTTPError) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, util.BuildBadRequestHTTPErr("file is required")
	}
	if header.Size > config.MaxUploadBytes {
		return nil, util.BuildBadRequestHTTPErr("file exceeds the 10MB limit")
	}
	mediaType := mediaTypeOf(header.Header.Get("Content-Type"))
	if mediaType == model.MediaTypeNone {
		return nil, util.BuildBadRequestHTTPErr("only image and video files are allowed")
	}

	file, err := header.Open()
	if err != nil {
		return nil, util.BuildBadRequestHTTPErr("unreadable file")
	}
	defer file.Close()

	blobName := "uploads/" + uuid.NewString() + filepath.Ext(header.Filename)
	url, err := ur.bucket.Upload(c, blobName, header.Header.Get("Content-Type"), file)
	if err != nil {
		return nil, &util.HTTPError{
			Status:  http.StatusServiceUnavailable,
			Message: "upload failed",
		}
	}
	return gin.H{
		"url":       url,
		"mediaType": mediaType,
	}, nil
}
