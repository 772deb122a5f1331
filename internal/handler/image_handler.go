package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImageAPI interface {
	Upload(filename string, data []byte) (string, error)
	Get(key string) ([]byte, error)
}

type ImageHandler struct {
	images ImageAPI
}

func NewImageHandler(images ImageAPI) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided."})
		return
	}

	key, err := h.images.Upload(header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}

func (h *ImageHandler) Get(c *gin.Context) {
	key := c.Param("key")

	data, err := h.images.Get(key)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := "image/jpeg"
	if strings.ToLower(filepath.Ext(key)) == ".png" {
		contentType = "image/png"
	}
	c.Data(http.StatusOK, contentType, data)
}
