package router

import (
	"html/template"
	"net/http"

	"github.com/kdam/portfolio/internal/controllers"
	"github.com/kdam/portfolio/internal/forms"
	"github.com/kdam/portfolio/internal/middleware"
	"github.com/kdam/portfolio/internal/security"
	"github.com/kdam/portfolio/internal/services"
	"github.com/kdam/portfolio/internal/static"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Templates *template.Template
	View      *controllers.View
	Resolver  middleware.PrincipalResolver
	Auth      *controllers.AuthController
	Page      *controllers.PageController
	Photo     *controllers.PhotoController
	Comment   *controllers.CommentController
	User      *controllers.UserController
	Static    *controllers.StaticController
}

// cacheControl 返回设置 Cache-Control header 的中间件
func cacheControl(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}

// form 同一路径注册 GET 和 POST
func form(g gin.IRoutes, path string, handler gin.HandlerFunc) {
	g.GET(path, handler)
	g.POST(path, handler)
}

func Setup(c *Controllers, cfg *services.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	forms.Setup()

	router := gin.New()
	router.SetHTMLTemplate(c.Templates)
	router.MaxMultipartMemory = 8 << 20
	router.Use(
		middleware.GinLogger(),
		middleware.GinRecovery(func(ctx *gin.Context) { c.View.ErrorPage(ctx, http.StatusInternalServerError) }),
		middleware.Locale(cfg.App.Locale),
		middleware.Flashes(),
		middleware.Authenticate(c.Resolver),
		middleware.AccessControl(security.DefaultRules(), c.View.Forbidden),
	)

	// 静态资源和上传的图片
	if assets, err := static.Assets(); err == nil {
		router.Group("/static", cacheControl("public, max-age=86400")).StaticFS("/", http.FS(assets))
	}
	router.Group("/media", cacheControl("public, max-age=31536000, immutable")).Static("/", cfg.Media.Dir)

	// 固定页面
	router.GET("/contact", c.Static.Contact)
	router.GET("/register", c.Static.Register)
	router.GET("/road-to-nowhere", c.Static.Road)
	router.GET("/admin", c.Static.Admin)

	auth := router.Group("/auth")
	{
		auth.GET("/login", c.Auth.LoginPage)
		auth.POST("/login", c.Auth.Login)
		auth.GET("/logout", c.Auth.Logout)
	}

	user := router.Group("/user")
	{
		form(user, "/add", c.User.Add)
		form(user, "/view", c.User.View)
		user.GET("/index", c.User.Index)
		user.GET("/index/:page", c.User.Index)
		form(user, "/edit/:id", c.User.Edit)
		form(user, "/delete/:id", c.User.Delete)
	}

	comment := router.Group("/comment")
	{
		comment.GET("/index", c.Comment.Index)
		form(comment, "/add", c.Comment.Add)
		form(comment, "/edit/:id", c.Comment.Edit)
		form(comment, "/delete/:id", c.Comment.Delete)
	}

	portfolio := router.Group("/portfolio")
	{
		portfolio.GET("", c.Photo.Index)
		form(portfolio, "/add", c.Photo.Add)
		form(portfolio, "/delete/:id", c.Photo.Delete)
	}

	// 页面
	router.GET("/", c.Page.Home)
	router.GET("/admin/pages", c.Page.Index)
	router.GET("/page/view/:slug", c.Page.View)
	form(router, "/page/edit/:slug", c.Page.Edit)
	form(router, "/page/delete/:slug", c.Page.Delete)
	form(router, "/page/add", c.Page.Add)
	router.GET("/menu/:active", c.Page.Menu)

	// 兜底：404 错误页
	router.NoRoute(c.View.NotFound)

	return router
}
