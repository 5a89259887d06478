package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInternalServerError = "internal server error"
	msgImageProcessing     = "Failed to process image"
	msgNoImage             = "No image provided"
)

// Err is the failure envelope shared by every endpoint. Only Message is
// shown to the caller; Err stays in the server logs.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Success        bool   `json:"success"`
	Message        string `json:"error" example:"No image provided"`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.HTTPStatusCode, e.Message, e.Err)
	}

	return fmt.Sprintf("%d %s", e.HTTPStatusCode, e.Message)
}

func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.Int("status", e.HTTPStatusCode),
		zap.String("path", ctx.FullPath()),
		zap.String("request_id", requestid.Get(ctx)),
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message, fields...)
	} else {
		zap.L().Info(e.Message, fields...)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	if err == nil {
		err = errors.New("bad request")
	}

	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Err:            err,
	}
}

func ErrMissingImage(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        msgNoImage,
		Err:            err,
	}
}

func ErrRequestTooLarge(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusRequestEntityTooLarge,
		Message:        "image is too large",
		Err:            err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

// ErrImageProcessing hides the upstream detail behind a generic message.
func ErrImageProcessing(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        msgImageProcessing,
		Err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        msgInternalServerError,
		Err:            err,
	}
}
