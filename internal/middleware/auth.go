package middleware

import (
	"context"
	"net/http"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/security"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver 由会话令牌解析当前用户
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*security.Principal, error)
}

// Authenticate 读取会话 cookie 并把当前用户放入上下文；令牌无效时清除 cookie
func Authenticate(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constant.AuthCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Debugf("[Auth] 会话无效: %v", err)
			ClearAuthCookie(c)
			c.Next()
			return
		}

		c.Set(constant.CtxPrincipal, principal)
		c.Next()
	}
}

// CurrentPrincipal 当前请求的用户，匿名时为 nil
func CurrentPrincipal(c *gin.Context) *security.Principal {
	if v, ok := c.Get(constant.CtxPrincipal); ok {
		if p, ok := v.(*security.Principal); ok {
			return p
		}
	}
	return nil
}

// AccessControl 按规则表检查访问权限：匿名用户跳转登录页，权限不足交给 onForbidden
func AccessControl(rules security.Rules, onForbidden gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch rules.Decide(c.Request.URL.Path, CurrentPrincipal(c)) {
		case security.LoginRequired:
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
		case security.Forbidden:
			if onForbidden != nil {
				onForbidden(c)
			} else {
				c.Status(http.StatusForbidden)
			}
			c.Abort()
		default:
			c.Next()
		}
	}
}

// SetAuthCookie 设置会话 cookie
func SetAuthCookie(c *gin.Context, token string, expireDays int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.AuthCookie, token, expireDays*24*3600, "/", "", false, true)
}

// ClearAuthCookie 清除会话 cookie
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.AuthCookie, "", -1, "/", "", false, true)
}
