// Package static embeds the HTML templates and stylesheet served by the site.
package static

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates assets
var files embed.FS

// GetFS 返回嵌入的文件系统
func GetFS() fs.FS {
	return files
}

// ReadFile 读取嵌入的文件
func ReadFile(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Assets 静态资源目录
func Assets() (fs.FS, error) {
	return fs.Sub(files, "assets")
}

// Templates 解析全部页面模板
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
