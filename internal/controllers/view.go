package controllers

import (
	"html/template"
	"net/http"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/i18n"
	"github.com/kdam/portfolio/internal/logger"
	"github.com/kdam/portfolio/internal/middleware"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// TemplateFuncs 模板函数
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"t": i18n.T,
		"fieldError": func(errs forms.Errors, field, lang string) string {
			if e, ok := errs[field]; ok && e != nil {
				return e.Message(lang)
			}
			return ""
		},
		"pageNumbers": utils.PageNumbers,
	}
}

// View 渲染页面，补齐布局需要的公共数据
type View struct {
	tmpl  *template.Template
	pages *repository.PageRepository
}

func NewView(tmpl *template.Template, pages *repository.PageRepository) *View {
	return &View{tmpl: tmpl, pages: pages}
}

// Render 渲染模板；公共数据为语言、当前用户、flash 和菜单
func (v *View) Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	for key, value := range map[string]interface{}{
		"active":  "",
		"title":   "",
		"heading": "",
		"errors":  forms.Errors{},
	} {
		if _, ok := data[key]; !ok {
			data[key] = value
		}
	}
	data["lang"] = middleware.CurrentLang(c)
	data["principal"] = middleware.CurrentPrincipal(c)
	data["flashes"] = middleware.ConsumeFlashes(c)
	data["menu"] = v.pages.FindMenu(c.Request.Context())

	c.HTML(code, name, data)
}

// ErrorPage 渲染错误页，模板按 errors/{code}、errors/{xx}x、errors/{x}xx、errors/default 依次查找
func (v *View) ErrorPage(c *gin.Context, code int) {
	for _, name := range utils.ErrorTemplates(code) {
		if v.tmpl.Lookup(name) != nil {
			v.Render(c, code, name, gin.H{"code": code})
			c.Abort()
			return
		}
	}
	c.String(code, http.StatusText(code))
	c.Abort()
}

// ServerError 记录错误并渲染 500 页
func (v *View) ServerError(c *gin.Context, err error) {
	logger.Errorf("[%s %s] %v", c.Request.Method, c.Request.URL.Path, err)
	v.ErrorPage(c, http.StatusInternalServerError)
}

// Forbidden 渲染 403 页
func (v *View) Forbidden(c *gin.Context) {
	v.ErrorPage(c, http.StatusForbidden)
}

// NotFound 渲染 404 页
func (v *View) NotFound(c *gin.Context) {
	v.ErrorPage(c, http.StatusNotFound)
}

// RecordNotFound 提示记录不存在并跳转到列表
func (v *View) RecordNotFound(c *gin.Context, location string) {
	middleware.AddFlash(c, constant.FlashWarning, "message.record_not_found")
	utils.Redirect(c, location)
}

// Done 提示操作成功并跳转
func (v *View) Done(c *gin.Context, message, location string) {
	middleware.AddFlash(c, constant.FlashSuccess, message)
	utils.Redirect(c, location)
}

func isSubmitted(c *gin.Context) bool {
	return c.Request.Method == http.MethodPost
}
