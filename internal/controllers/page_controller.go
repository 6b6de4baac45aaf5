package controllers

import (
	"net/http"

	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

type PageController struct {
	pages *repository.PageRepository
	view  *View
}

func NewPageController(pages *repository.PageRepository, view *View) *PageController {
	return &PageController{pages: pages, view: view}
}

// Home 首页
func (pc *PageController) Home(c *gin.Context) {
	pc.view.Render(c, http.StatusOK, "page/index", gin.H{"title": "title.home", "active": "home"})
}

// Index 页面管理列表
func (pc *PageController) Index(c *gin.Context) {
	pc.view.Render(c, http.StatusOK, "page/admin", gin.H{
		"title":  "title.pages",
		"active": "admin",
		"pages":  pc.pages.FindAll(c.Request.Context()),
	})
}

// Menu 导航片段
func (pc *PageController) Menu(c *gin.Context) {
	pc.view.Render(c, http.StatusOK, "page/menu", gin.H{"active": c.Param("active")})
}

// View 按 slug 显示页面
func (pc *PageController) View(c *gin.Context) {
	page := pc.pages.Find(c.Request.Context(), c.Param("slug"))
	if page == nil {
		pc.view.RecordNotFound(c, "/")
		return
	}
	pc.view.Render(c, http.StatusOK, "page/view", gin.H{
		"heading": page.Title,
		"active":  page.Slug,
		"page":    page,
	})
}

// Add 新增页面
func (pc *PageController) Add(c *gin.Context) {
	ctx := c.Request.Context()
	form := forms.PageAddForm{}
	errs := forms.Errors{}

	if isSubmitted(c) {
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if !pc.pages.SlugUnique(ctx, form.Slug) {
			errs.Add("slug", "message.page_slug_exist")
		} else {
			page := &models.Page{
				Slug:     form.Slug,
				Title:    form.Title,
				Content:  form.Content,
				InMenu:   form.InMenu,
				Position: form.Position,
			}
			if err := pc.pages.Save(ctx, page); err != nil {
				pc.view.ServerError(c, err)
				return
			}
			pc.view.Done(c, "message.page_successfully_add", "/admin/pages")
			return
		}
	}

	pc.view.Render(c, http.StatusOK, "page/add", gin.H{
		"title":  "title.page_add",
		"active": "admin",
		"form":   form,
		"errors": errs,
	})
}

// Edit 编辑页面
func (pc *PageController) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	page := pc.pages.Find(ctx, c.Param("slug"))
	if page == nil {
		pc.view.RecordNotFound(c, "/admin/pages")
		return
	}

	form := forms.PageEditForm{
		Title:    page.Title,
		Content:  page.Content,
		InMenu:   page.InMenu,
		Position: page.Position,
	}
	errs := forms.Errors{}

	if isSubmitted(c) {
		form = forms.PageEditForm{}
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else {
			page.Title = form.Title
			page.Content = form.Content
			page.InMenu = form.InMenu
			page.Position = form.Position
			if err := pc.pages.Save(ctx, page); err != nil {
				pc.view.ServerError(c, err)
				return
			}
			pc.view.Done(c, "message.element_successfully_edited", "/admin/pages")
			return
		}
	}

	pc.view.Render(c, http.StatusOK, "page/edit", gin.H{
		"title":  "title.page_edit",
		"active": "admin",
		"page":   page,
		"form":   form,
		"errors": errs,
	})
}

// Delete 删除页面
func (pc *PageController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	page := pc.pages.Find(ctx, c.Param("slug"))
	if page == nil {
		pc.view.RecordNotFound(c, "/admin/pages")
		return
	}

	errs := forms.Errors{}
	if isSubmitted(c) {
		var form forms.SlugForm
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if form.Slug != page.Slug {
			errs.Add("slug", "validation.invalid")
		} else {
			if err := pc.pages.Delete(ctx, page); err != nil {
				pc.view.ServerError(c, err)
				return
			}
			pc.view.Done(c, "message.element_successfully_deleted", "/admin/pages")
			return
		}
	}

	pc.view.Render(c, http.StatusOK, "page/delete", gin.H{
		"title":  "title.delete",
		"active": "admin",
		"page":   page,
		"errors": errs,
	})
}
