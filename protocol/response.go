package protocol

import (
	"github.com/labstack/echo/v4"
)

// 返回定义
type BaseResponse struct {
	ErrCode int         `json:"errcode"`
	ErrMsg  string      `json:"errmsg,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(200, BaseResponse{
		ErrCode: 0,
		Data:    data,
	})
}

func Fail(c echo.Context, code int, msg string) error {
	return c.JSON(200, BaseResponse{
		ErrCode: code,
		ErrMsg:  msg,
	})
}
