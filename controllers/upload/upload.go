package uploadcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFile stores a multipart file under the configured upload directory
// and answers the public URL it will be served from.
func UploadFile(uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(fileHeader.Filename)
		base := strings.TrimSuffix(fileHeader.Filename, ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%s_%s%s", uuid.NewString()[:8], base, ext)
		savePath := filepath.Join(uploadDir, filename)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("%s/uploads/%s", publicBaseURL, filename)})
	}
}
