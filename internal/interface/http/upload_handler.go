package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/interface/middleware"
	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/response"
)

// UploadHandler stores images in GCS and hands back public URLs. The client
// then submits those URLs in the avatar or listing payloads.
type UploadHandler struct {
	GCS    *storage.Client
	Bucket string
	Logger *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, bucket string, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Bucket: bucket, Logger: logger}
}

const maxListingImages = 6

func (h *UploadHandler) storeFile(c *gin.Context, folder string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectPath := filepath.ToSlash(filepath.Join(folder, uid, id+ext))
	return helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, objectPath, fh.Header.Get("Content-Type"), f)
}

// Avatar POST /api/upload/avatar (multipart field "image")
func (h *UploadHandler) Avatar(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	url, err := h.storeFile(c, "avatars", fh)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("avatar upload failed")
		}
		response.Error(c, http.StatusInternalServerError, "could not upload image", nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"url": url})
}

// ListingImages POST /api/upload/listing-images (multipart field "images", 1-6 files)
func (h *UploadHandler) ListingImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "multipart form is required", nil)
		return
	}
	files := form.File["images"]
	if len(files) < 1 || len(files) > maxListingImages {
		response.Error(c, http.StatusBadRequest, "you must upload between 1 and 6 images", nil)
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.storeFile(c, "listings", fh)
		if err != nil {
			if h.Logger != nil {
				h.Logger.WithError(err).Error("listing image upload failed")
			}
			response.Error(c, http.StatusInternalServerError, "could not upload images", nil)
			return
		}
		urls = append(urls, url)
	}
	response.JSON(c, http.StatusOK, gin.H{"urls": urls})
}
