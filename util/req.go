package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/db"
	"github.com/inquirylab/inquiry-board-be/util/log"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

func BuildBadRequestHTTPErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func BuildNotFoundHTTPErr(what string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%v not found", what),
	}
}

func BuildUnauthorizedHTTPErr() *HTTPError {
	return &HTTPError{
		Status:  http.StatusForbidden,
		Message: "unauthorized",
	}
}

// BuildDbHTTPErr maps a storage error onto the response taxonomy:
// missing documents become 404, unreachable storage 503, anything
// else a plain 500.
func BuildDbHTTPErr(err error) *HTTPError {
	switch {
	case db.IsNotFound(err):
		return &HTTPError{
			Status:  http.StatusNotFound,
			Message: "not found",
		}
	case db.IsUnavailable(err):
		return &HTTPError{
			Status:  http.StatusServiceUnavailable,
			Message: "storage unavailable",
		}
	default:
		return &HTTPError{
			Status:  http.StatusInternalServerError,
			Message: "database error",
		}
	}
}

type HandlerOpts struct {
}

type Handler func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper adapts a data-or-error handler into a gin handler
// with the shared response envelope.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			if httpErr.Status >= http.StatusInternalServerError {
				log.Log.WithField("path", c.FullPath()).Error(httpErr.Message)
			}
			c.JSON(httpErr.Status, gin.H{
				"success": false,
				"message": httpErr.Message,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}
