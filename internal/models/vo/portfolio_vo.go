package vo

import (
	"path"

	"github.com/kdam/portfolio/internal/models"
)

// MediaPrefix 上传文件对外的 URL 前缀
const MediaPrefix = "/media/"

// PhotoVO 图片视图对象
type PhotoVO struct {
	ID        uint
	Title     string
	Src       string
	CreatedAt string
}

// ToPhotoVO 将 Photo 模型转换为 PhotoVO
func ToPhotoVO(photo *models.Photo) *PhotoVO {
	if photo == nil {
		return nil
	}
	return &PhotoVO{
		ID:        photo.ID,
		Title:     photo.Title,
		Src:       MediaPrefix + path.Base(photo.URL),
		CreatedAt: photo.CreatedAt.Format("2006-01-02"),
	}
}

// ToPhotoVOList 将 Photo 模型列表转换为 PhotoVO 列表
func ToPhotoVOList(photos []models.Photo) []*PhotoVO {
	out := make([]*PhotoVO, 0, len(photos))
	for i := range photos {
		out = append(out, ToPhotoVO(&photos[i]))
	}
	return out
}

// CommentVO 留言视图对象
type CommentVO struct {
	ID      uint
	Content string
	Author  string
	UserID  uint
	Date    string
}

// ToCommentVO 将带作者的留言转换为 CommentVO
func ToCommentVO(c *models.CommentWithAuthor) *CommentVO {
	if c == nil {
		return nil
	}
	return &CommentVO{
		ID:      c.ID,
		Content: c.Content,
		Author:  c.Name,
		UserID:  c.UserID,
		Date:    c.Date.Format("2006-01-02 15:04"),
	}
}

// ToCommentVOList 将留言列表转换为 CommentVO 列表
func ToCommentVOList(list []models.CommentWithAuthor) []*CommentVO {
	out := make([]*CommentVO, 0, len(list))
	for i := range list {
		out = append(out, ToCommentVO(&list[i]))
	}
	return out
}
