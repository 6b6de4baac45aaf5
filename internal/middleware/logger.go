package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/kdam/portfolio/internal/logger"

	"github.com/gin-gonic/gin"
)

// GinLogger 使用 zap 记录访问日志
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if query != "" {
			path = path + "?" + query
		}
		status := c.Writer.Status()
		log := logger.WithFields(map[string]interface{}{
			"status":  status,
			"method":  c.Request.Method,
			"ip":      c.ClientIP(),
			"latency": time.Since(start).String(),
		})
		switch {
		case status >= http.StatusInternalServerError:
			log.Errorf("[GIN] %s", path)
		case status >= http.StatusBadRequest:
			log.Warnf("[GIN] %s", path)
		default:
			log.Debugf("[GIN] %s", path)
		}
	}
}

// GinRecovery 捕获 panic 并记录堆栈，随后交给 onPanic 渲染错误页
func GinRecovery(onPanic gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorf("[Recovery] %s %s panic: %v\n%s", c.Request.Method, c.Request.URL.Path, err, debug.Stack())
				if onPanic != nil && !c.Writer.Written() {
					onPanic(c)
				} else if !c.Writer.Written() {
					c.Status(http.StatusInternalServerError)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
