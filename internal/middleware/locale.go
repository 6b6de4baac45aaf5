package middleware

import (
	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Locale 根据 Accept-Language 选择界面语言
func Locale(fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constant.CtxLang, i18n.Match(c.GetHeader("Accept-Language"), fallback))
		c.Next()
	}
}

// CurrentLang 当前请求的语言
func CurrentLang(c *gin.Context) string {
	if lang := c.GetString(constant.CtxLang); lang != "" {
		return lang
	}
	return i18n.Normalize("")
}
