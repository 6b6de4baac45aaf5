package controllers

import (
	"net/http"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/middleware"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

const userIndexURL = "/user/index/1"

type UserController struct {
	users    *repository.UserRepository
	view     *View
	pageSize int
}

func NewUserController(users *repository.UserRepository, view *View, pageSize int) *UserController {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	return &UserController{users: users, view: view, pageSize: pageSize}
}

// Index 用户分页列表
func (uc *UserController) Index(c *gin.Context) {
	paginator, err := uc.users.FindAll(c.Request.Context(), utils.ParamPage(c, "page"), uc.pageSize)
	if err != nil {
		uc.view.ServerError(c, err)
		return
	}
	uc.view.Render(c, http.StatusOK, "user/index", gin.H{
		"title":     "title.users",
		"active":    "admin",
		"paginator": paginator,
	})
}

// Add 注册新账号，角色固定为普通用户
func (uc *UserController) Add(c *gin.Context) {
	ctx := c.Request.Context()
	form := forms.UserAddForm{}
	errs := forms.Errors{}

	if isSubmitted(c) {
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if !uc.users.LoginUnique(ctx, form.Login) {
			middleware.AddFlash(c, constant.FlashWarning, "message.user_login_exist")
		} else {
			user := &models.User{
				Login:  form.Login,
				RoleID: constant.RoleUserID,
				Info:   models.UserInfo{Name: form.Name, Mail: form.Mail},
			}
			if err := uc.users.Save(ctx, user, form.Password); err != nil {
				uc.view.ServerError(c, err)
				return
			}
			uc.view.Done(c, "message.user_successfully_add", "/")
			return
		}
	}

	form.Password, form.SecondPassword = "", ""
	uc.view.Render(c, http.StatusOK, "user/add", gin.H{
		"title":  "title.user_add",
		"active": "register",
		"form":   form,
		"errors": errs,
	})
}

// View 当前用户编辑自己的资料和密码，角色取自数据库
func (uc *UserController) View(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		utils.Redirect(c, "/auth/login")
		return
	}
	user := uc.users.FindToEdit(ctx, principal.ID)
	if user == nil {
		uc.view.RecordNotFound(c, "/portfolio")
		return
	}

	form := forms.UserViewForm{Name: user.Info.Name, Mail: user.Info.Mail}
	errs := forms.Errors{}

	if isSubmitted(c) {
		form = forms.UserViewForm{}
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else {
			user.Info.Name = form.Name
			user.Info.Mail = form.Mail
			if err := uc.users.Save(ctx, user, form.Password); err != nil {
				uc.view.ServerError(c, err)
				return
			}
			uc.view.Done(c, "message.element_successfully_edited", "/portfolio")
			return
		}
	}

	form.Password, form.SecondPassword = "", ""
	uc.view.Render(c, http.StatusOK, "user/view", gin.H{
		"title":  "title.user_view",
		"active": "account",
		"user":   user,
		"form":   form,
		"errors": errs,
	})
}

// Edit 编辑用户；非管理员只能编辑自己且不能修改角色
func (uc *UserController) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		utils.Redirect(c, "/auth/login")
		return
	}
	id, ok := utils.ParamID(c, "id")
	if !ok {
		uc.view.RecordNotFound(c, userIndexURL)
		return
	}
	isAdmin := principal.IsAdmin()
	if !isAdmin && principal.ID != id {
		uc.view.Forbidden(c)
		return
	}

	user := uc.users.FindToEdit(ctx, id)
	if user == nil {
		uc.view.RecordNotFound(c, userIndexURL)
		return
	}

	form := forms.UserEditForm{
		Login:  user.Login,
		Name:   user.Info.Name,
		Mail:   user.Info.Mail,
		RoleID: user.RoleID,
	}
	errs := forms.Errors{}

	if isSubmitted(c) {
		// 非管理员的角色取自数据库，请求中缺少 role_id 也能通过校验
		form = forms.UserEditForm{RoleID: user.RoleID}
		err := c.ShouldBind(&form)
		if !isAdmin {
			form.RoleID = user.RoleID
		}
		if err != nil {
			errs = forms.FieldErrors(err)
		} else if !uc.users.LoginUniqueInEdit(ctx, user.ID, form.Login) {
			middleware.AddFlash(c, constant.FlashWarning, "message.user_login_exist")
		} else {
			user.Login = form.Login
			user.RoleID = form.RoleID
			user.Info.Name = form.Name
			user.Info.Mail = form.Mail
			if err := uc.users.Save(ctx, user, form.Password); err != nil {
				uc.view.ServerError(c, err)
				return
			}
			location := userIndexURL
			if !isAdmin {
				location = "/portfolio"
			}
			uc.view.Done(c, "message.element_successfully_edited", location)
			return
		}
	}

	form.Password, form.SecondPassword = "", ""
	uc.view.Render(c, http.StatusOK, "user/edit", gin.H{
		"title":         "title.user_edit",
		"active":        "admin",
		"user":          user,
		"form":          form,
		"errors":        errs,
		"canChangeRole": isAdmin,
	})
}

// Delete 删除用户及其留言和资料
func (uc *UserController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utils.ParamID(c, "id")
	if !ok {
		uc.view.RecordNotFound(c, userIndexURL)
		return
	}
	user := uc.users.FindByID(ctx, id)
	if user == nil {
		uc.view.RecordNotFound(c, userIndexURL)
		return
	}

	errs := forms.Errors{}
	if isSubmitted(c) {
		var form forms.DeleteForm
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if form.ID != user.ID {
			errs.Add("id", "validation.invalid")
		} else {
			if err := uc.users.Delete(ctx, user); err != nil {
				uc.view.ServerError(c, err)
				return
			}
			uc.view.Done(c, "message.element_successfully_deleted", userIndexURL)
			return
		}
	}

	uc.view.Render(c, http.StatusOK, "user/delete", gin.H{
		"title":  "title.delete",
		"active": "admin",
		"user":   user,
		"errors": errs,
	})
}
