// Package web serves the embedded upload page.
package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

// RegisterRoutes serves the upload page at the root path.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/", index)
	r.HEAD("/", index)
}

func index(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
