package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/sellerdashboard/utils"
)

// POST /inventory/:sellerId/images
// multipart/form-data:
//   - images: 1..MaxImages image files
//
// Responds with public URLs for use in a product's images list. The seller
// document is left untouched.
func (a *App) UploadImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.Images == nil || a.Validator == nil {
			respondMessage(c, http.StatusServiceUnavailable, "Image storage is not configured")
			return
		}

		seller, ok := a.lookupSeller(c)
		if !ok {
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			respondMessage(c, http.StatusBadRequest, "invalid multipart form")
			return
		}
		files := form.File["images"]

		maxImages := a.MaxImages
		if maxImages < 1 {
			maxImages = 4
		}
		if len(files) < 1 || len(files) > maxImages {
			respondMessage(c, http.StatusBadRequest, fmt.Sprintf("images must be 1 to %d", maxImages))
			return
		}

		for _, fh := range files {
			if _, err := a.Validator.ValidateFile(fh); err != nil {
				var rejected *utils.FileRejectedError
				if errors.As(err, &rejected) {
					respondMessage(c, http.StatusBadRequest, rejected.Error())
					return
				}
				a.internalError(c, err, "image validation failed")
				return
			}
		}

		urls, err := a.Images.UploadImages(c.Request.Context(), seller.ID.Hex(), files)
		if err != nil {
			a.internalError(c, err, "image upload failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":    gin.H{"images": urls},
			"message": "Images uploaded successfully",
		})
	}
}
