package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/yatube/pkg/logger"

	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Msg: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Msg: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Msg: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Msg: msg})
}

func InternalError(c *gin.Context, err error) {
	logger.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Msg: "internal server error"})
}
