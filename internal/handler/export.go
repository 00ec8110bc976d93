package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estatehub/internal/service"
)

// sendExport writes a rendered report as a file download.
func sendExport(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Content-Length", strconv.Itoa(len(file.Data)))
	if file.ArchiveURL != "" {
		c.Header("X-Archive-URL", file.ArchiveURL)
	}
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
