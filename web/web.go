// Package web holds the embedded templates and static assets for the
// dashboard pages.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates returns the template directory as an http.FileSystem for the
// Fiber views engine.
func Templates() http.FileSystem {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Static returns the static asset directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
