package controllers

import (
	"net/http"

	"github.com/kdam/portfolio/internal/constant"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/models/vo"
	"github.com/kdam/portfolio/internal/repository"
	"github.com/kdam/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadBody 上传请求体上限：图片上限加表单其余字段的余量
const maxUploadBody = constant.MaxPhotoSize + 1<<20

type PhotoController struct {
	photos   *repository.PhotoRepository
	view     *View
	mediaDir string
}

func NewPhotoController(photos *repository.PhotoRepository, view *View, mediaDir string) *PhotoController {
	return &PhotoController{photos: photos, view: view, mediaDir: mediaDir}
}

// Index 作品集
func (pc *PhotoController) Index(c *gin.Context) {
	photos := pc.photos.FindAll(c.Request.Context())
	pc.view.Render(c, http.StatusOK, "photo/index", gin.H{
		"title":  "nav.portfolio",
		"active": "portfolio",
		"photos": vo.ToPhotoVOList(photos),
	})
}

// Add 上传图片
func (pc *PhotoController) Add(c *gin.Context) {
	form := forms.PhotoAddForm{}
	errs := forms.Errors{}

	if isSubmitted(c) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else {
			errs = form.ValidateImage()
		}

		if len(errs) == 0 {
			file, err := form.Photo.Open()
			if err != nil {
				pc.view.ServerError(c, err)
				return
			}
			defer file.Close()

			if _, err := pc.photos.SaveImage(c.Request.Context(), file, form.Photo.Filename, pc.mediaDir, form.Title); err != nil {
				pc.view.ServerError(c, err)
				return
			}
			pc.view.Done(c, "message.photo_successfully_added", "/portfolio")
			return
		}
	}

	pc.view.Render(c, http.StatusOK, "photo/add", gin.H{
		"title":  "title.photo_add",
		"active": "portfolio",
		"form":   form,
		"errors": errs,
	})
}

// Delete 删除图片及其文件
func (pc *PhotoController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := utils.ParamID(c, "id")
	if !ok {
		pc.view.RecordNotFound(c, "/portfolio")
		return
	}
	photo := pc.photos.Find(ctx, id)
	if photo == nil {
		pc.view.RecordNotFound(c, "/portfolio")
		return
	}

	errs := forms.Errors{}
	if isSubmitted(c) {
		var form forms.DeleteForm
		if err := c.ShouldBind(&form); err != nil {
			errs = forms.FieldErrors(err)
		} else if form.ID != photo.ID {
			errs.Add("id", "validation.invalid")
		} else {
			if err := pc.photos.Delete(ctx, photo, pc.mediaDir); err != nil {
				pc.view.ServerError(c, err)
				return
			}
			pc.view.Done(c, "message.photo_successfully_deleted", "/portfolio")
			return
		}
	}

	pc.view.Render(c, http.StatusOK, "photo/delete", gin.H{
		"title":  "title.delete",
		"active": "portfolio",
		"photo":  vo.ToPhotoVO(photo),
		"errors": errs,
	})
}
