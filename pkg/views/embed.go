package views

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templates embed.FS

// FS exposes the templates with the templates directory as the root, so view
// names read like "users/show".
func FS() http.FileSystem {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
