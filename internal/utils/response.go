package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Redirect 302 跳转并终止后续处理
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

// ParamID 解析路径中的正整数 ID
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ParamPage 解析路径中的页码，缺失或非法时为 1
func ParamPage(c *gin.Context, name string) int {
	page, err := strconv.Atoi(c.Param(name))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ErrorTemplates 错误页模板候选，依次为 errors/404、errors/40x、errors/4xx、errors/default
func ErrorTemplates(code int) []string {
	s := strconv.Itoa(code)
	if len(s) != 3 {
		return []string{"errors/default"}
	}
	return []string{
		fmt.Sprintf("errors/%s", s),
		fmt.Sprintf("errors/%sx", s[:2]),
		fmt.Sprintf("errors/%sxx", s[:1]),
		"errors/default",
	}
}
