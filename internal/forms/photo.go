package forms

import (
	"github.com/kdam/portfolio/internal/constant"

	"github.com/gabriel-vasile/mimetype"
)

// allowedImageTypes 允许上传的图片类型
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/pjpeg"}

// ValidateImage 校验上传文件的大小和内容类型
func (f *PhotoAddForm) ValidateImage() Errors {
	errs := Errors{}
	if f.Photo == nil {
		errs.Add("photo", "validation.required")
		return errs
	}
	if f.Photo.Size > constant.MaxPhotoSize {
		errs.Add("photo", "validation.image_size", constant.MaxPhotoSize/1000)
		return errs
	}

	file, err := f.Photo.Open()
	if err != nil {
		errs.Add("photo", "validation.invalid")
		return errs
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		errs.Add("photo", "validation.image_type")
	}
	return errs
}
