package controllers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/middleware"
	"github.com/kdam/portfolio/internal/security"
	"github.com/kdam/portfolio/internal/services"
	"github.com/kdam/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
	view        *View
}

// loginAttempt 单个 IP 的失败登录记录
type loginAttempt struct {
	mu          sync.Mutex
	Count       int
	LastAttempt time.Time
}

// blocked 一分钟内失败达到上限时返回 true；超过一分钟则重置计数
func (a *loginAttempt) blocked(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if now.Sub(a.LastAttempt) >= time.Minute {
		a.Count = 0
		return false
	}
	return a.Count >= maxLoginAttempts
}

// fail 记录一次失败
func (a *loginAttempt) fail(now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Count++
	a.LastAttempt = now
}

const maxLoginAttempts = 5

var loginAttempts sync.Map

func NewAuthController(authService *services.AuthService, view *View) *AuthController {
	return &AuthController{authService: authService, view: view}
}

func (ac *AuthController) render(c *gin.Context, code int, form forms.LoginForm, errs forms.Errors, message string) {
	ac.view.Render(c, code, "auth/login", gin.H{
		"title":  "title.login",
		"active": "login",
		"form":   form,
		"errors": errs,
		"error":  message,
	})
}

// LoginPage 登录表单
func (ac *AuthController) LoginPage(c *gin.Context) {
	if middleware.CurrentPrincipal(c) != nil {
		utils.Redirect(c, "/")
		return
	}
	ac.render(c, http.StatusOK, forms.LoginForm{}, forms.Errors{}, "")
}

// Login 校验登录表单并签发会话 cookie
func (ac *AuthController) Login(c *gin.Context) {
	ip := c.ClientIP()

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		ac.render(c, http.StatusOK, form, forms.FieldErrors(err), "")
		return
	}

	// 暴力破解防御
	if val, ok := loginAttempts.Load(ip); ok && val.(*loginAttempt).blocked(time.Now()) {
		logger.Warnf("[Auth] %s 尝试次数过多", ip)
		ac.render(c, http.StatusTooManyRequests, form, forms.Errors{}, "auth.too_many_attempts")
		return
	}

	cred, err := ac.authService.Authenticate(c.Request.Context(), form.Login, form.Password)
	if err != nil {
		if !errors.Is(err, services.ErrBadCredentials) {
			ac.view.ServerError(c, err)
			return
		}
		// 记录失败尝试
		val, _ := loginAttempts.LoadOrStore(ip, &loginAttempt{LastAttempt: time.Now()})
		val.(*loginAttempt).fail(time.Now())

		logger.Infof("[Auth] 用户 %s 登录失败 (%s)", form.Login, ip)
		form.Password = ""
		ac.render(c, http.StatusOK, form, forms.Errors{}, "auth.bad_credentials")
		return
	}

	// 登录成功，清除尝试记录
	loginAttempts.Delete(ip)

	token, err := ac.authService.GenerateToken(cred)
	if err != nil {
		ac.view.ServerError(c, err)
		return
	}
	middleware.SetAuthCookie(c, token, ac.authService.ExpireDays())
	logger.Infof("[Auth] 用户 %s 登录成功 (%s)", cred.Login, ip)

	utils.Redirect(c, "/")
}

// Logout 清除会话 cookie
func (ac *AuthController) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Set(constant.CtxPrincipal, (*security.Principal)(nil))
	ac.view.Render(c, http.StatusOK, "auth/logout", gin.H{"title": "title.logout"})
}
