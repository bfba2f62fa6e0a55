package handlers

import (
	"KizombaTok.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Response 统一响应结构
type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SendResponse(c *app.RequestContext, err errno.ErrNo, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    err.ErrCode,
		Message: err.ErrMsg,
		Data:    data,
	})
}
