package middleware

import (
	"net/http"
	"time"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Flash 一次性提示消息，message 为翻译键
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type flashClaims struct {
	Flashes []Flash `json:"f"`
	jwt.RegisteredClaims
}

const ctxIncomingFlashes = "flashes_in"

// Flashes 读取上一请求留下的 flash cookie
func Flashes() gin.HandlerFunc {
	return func(c *gin.Context) {
		if value, err := c.Cookie(constant.FlashCookie); err == nil && value != "" {
			if list, err := decodeFlashes(value); err == nil {
				c.Set(ctxIncomingFlashes, list)
			} else {
				logger.Debugf("[Flash] 无效的 flash cookie: %v", err)
				clearFlashCookie(c)
			}
		}
		c.Next()
	}
}

// AddFlash 记录一条 flash，供重定向后的页面或本次渲染显示
func AddFlash(c *gin.Context, typ, message string) {
	pending := append(pendingFlashes(c), Flash{Type: typ, Message: message})
	c.Set(constant.CtxFlashes, pending)

	all := append(append([]Flash{}, incomingFlashes(c)...), pending...)
	value, err := encodeFlashes(all)
	if err != nil {
		logger.Warnf("[Flash] 编码失败: %v", err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.FlashCookie, value, 300, "/", "", false, true)
}

// ConsumeFlashes 取出全部待显示的 flash 并清除 cookie
func ConsumeFlashes(c *gin.Context) []Flash {
	incoming := incomingFlashes(c)
	pending := pendingFlashes(c)
	if len(incoming)+len(pending) == 0 {
		return nil
	}
	out := append(append([]Flash{}, incoming...), pending...)
	c.Set(ctxIncomingFlashes, []Flash(nil))
	c.Set(constant.CtxFlashes, []Flash(nil))
	clearFlashCookie(c)
	return out
}

func incomingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(ctxIncomingFlashes); ok {
		if list, ok := v.([]Flash); ok {
			return list
		}
	}
	return nil
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(constant.CtxFlashes); ok {
		if list, ok := v.([]Flash); ok {
			return list
		}
	}
	return nil
}

func clearFlashCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constant.FlashCookie, "", -1, "/", "", false, true)
}

func encodeFlashes(list []Flash) (string, error) {
	claims := flashClaims{
		Flashes: list,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(constant.Secret))
}

func decodeFlashes(value string) ([]Flash, error) {
	claims := &flashClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(constant.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims.Flashes, nil
}
