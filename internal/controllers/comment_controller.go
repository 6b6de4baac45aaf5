package controllers

import (
	"net/http"

	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/middleware"
	"github.com/kdam/portfolio/internal/models"
	"github.com/kdam/portfolio/internal/models/vo"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments *repository.CommentRepository
	view     *View
}

func NewCommentController(comments *repository.CommentRepository, view *View) *CommentController {
	return &CommentController{comments: comments, view: view}
}

// Index 留言列表，最新在前
func (cc *CommentController) Index(c *gin.Context) {
	list, err := cc.comments.FindAll(c.Request.Context())
	if err != nil {
		cc.view.ServerError(c, err)
		return
	}
	cc.view.Render(c, http.StatusOK, "comment/index", gin.H{
		"title":    "title.comments",
		"active":   "comments",
		"comments": vo.ToCommentVOList(list),
	})
}

// Add 发表留言，作者为当前用户
func (cc *CommentController) Add(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		utils.Redirect(c, "/auth/login")
		return
	}

	form := forms.CommentForm{}
	errs := forms.Errors{}

	if isSubmitted(c) {
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else {
			comment := &models.Comment{Content: form.Content, UserID: principal.ID}
			if err := cc.comments.Save(c.Request.Context(), comment); err != nil {
				cc.view.ServerError(c, err)
				return
			}
			cc.view.Done(c, "message.comment_successfully_add", "/portfolio")
			return
		}
	}

	cc.view.Render(c, http.StatusOK, "comment/add", gin.H{
		"title":  "title.comment",
		"active": "comments",
		"form":   form,
		"errors": errs,
	})
}

// Edit 编辑留言内容
func (cc *CommentController) Edit(c *gin.Context) {
	ctx := c.Request.Context()
	comment := cc.find(c)
	if comment == nil {
		cc.view.RecordNotFound(c, "/portfolio")
		return
	}

	form := forms.CommentForm{Content: comment.Content}
	errs := forms.Errors{}

	if isSubmitted(c) {
		form = forms.CommentForm{}
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else {
			comment.Content = form.Content
			if err := cc.comments.Save(ctx, &comment.Comment); err != nil {
				cc.view.ServerError(c, err)
				return
			}
			cc.view.Done(c, "message.element_successfully_edited", "/portfolio")
			return
		}
	}

	cc.view.Render(c, http.StatusOK, "comment/edit", gin.H{
		"title":   "title.comments",
		"active":  "comments",
		"comment": vo.ToCommentVO(comment),
		"form":    form,
		"errors":  errs,
	})
}

// Delete 删除留言
func (cc *CommentController) Delete(c *gin.Context) {
	comment := cc.find(c)
	if comment == nil {
		cc.view.RecordNotFound(c, "/portfolio")
		return
	}

	errs := forms.Errors{}
	if isSubmitted(c) {
		var form forms.DeleteForm
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if form.ID != comment.ID {
			errs.Add("id", "validation.invalid")
		} else {
			if err := cc.comments.Delete(c.Request.Context(), &comment.Comment); err != nil {
				cc.view.ServerError(c, err)
				return
			}
			cc.view.Done(c, "message.element_successfully_deleted", "/portfolio")
			return
		}
	}

	cc.view.Render(c, http.StatusOK, "comment/delete", gin.H{
		"title":   "title.delete",
		"active":  "comments",
		"comment": vo.ToCommentVO(comment),
		"errors":  errs,
	})
}

func (cc *CommentController) find(c *gin.Context) *models.CommentWithAuthor {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return nil
	}
	return cc.comments.FindToEdit(c.Request.Context(), id)
}
