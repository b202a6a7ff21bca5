// Package web serves the browser frontend beside the JSON API. The pages are
// embedded static assets that talk to the server exclusively over /api; no
// page touches the store directly.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var staticFS embed.FS

// Register mounts the frontend at the application root.
func Register(app *fiber.App) {
	content, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(content),
		Index:  "index.html",
		Browse: false,
	}))
}
