package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"homeserve/middleware"
	"homeserve/services/storage"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler uploads profile images and records the resulting URL on the
// account.
type StorageHandler struct {
	Storage storage.StorageService
	Users   user.UserService
	Logger  *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(st storage.StorageService, users user.UserService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: st, Users: users, Logger: logger}
}

// UploadProfileImageHandler answers POST /api/users/profile-image with a
// multipart "file" field.
func (h *StorageHandler) UploadProfileImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "file field is required")
		return
	}

	// Cloudinary's uploader takes a path, so stage the upload on disk first.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "profile_images")
	if err != nil {
		h.Logger.Error("profile image upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", err.Error())
		return
	}

	actorID := middleware.ActorID(c)
	if err := h.Users.UpdateProfileImage(c.Request.Context(), actorID, url); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save image URL", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
