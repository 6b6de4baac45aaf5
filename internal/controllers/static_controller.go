package controllers

import (
	"net/http"

	"github.com/kdam/portfolio/internal/services"

	"github.com/gin-gonic/gin"
)

// StaticController 固定内容页和管理面板
type StaticController struct {
	stats *services.SystemStats
	view  *View
}

func NewStaticController(stats *services.SystemStats, view *View) *StaticController {
	return &StaticController{stats: stats, view: view}
}

func (sc *StaticController) Contact(c *gin.Context) {
	sc.view.Render(c, http.StatusOK, "static/contact", gin.H{"title": "title.contact", "active": "contact"})
}

func (sc *StaticController) Register(c *gin.Context) {
	sc.view.Render(c, http.StatusOK, "static/register", gin.H{"title": "title.register", "active": "register"})
}

func (sc *StaticController) Road(c *gin.Context) {
	sc.view.Render(c, http.StatusOK, "static/road", gin.H{"title": "title.road", "active": "road-to-nowhere"})
}

// Admin 管理面板：记录数和媒体磁盘占用
func (sc *StaticController) Admin(c *gin.Context) {
	sc.view.Render(c, http.StatusOK, "static/admin", gin.H{
		"title":  "title.admin",
		"active": "admin",
		"stats":  sc.stats.Dashboard(c.Request.Context()),
	})
}
