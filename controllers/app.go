package controllers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/sellerdashboard/database"
	"github.com/princinho/sellerdashboard/middleware"
	"github.com/princinho/sellerdashboard/models"
	"github.com/princinho/sellerdashboard/utils"
	"github.com/sirupsen/logrus"
)

// SellerStore is implemented by *database.SellerCollection.
type SellerStore interface {
	Insert(ctx context.Context, seller *models.Seller) error
	FindByID(ctx context.Context, id string) (*models.Seller, error)
	Save(ctx context.Context, seller *models.Seller) error
}

// ImageStore is implemented by *utils.R2Client.
type ImageStore interface {
	UploadImages(ctx context.Context, sellerID string, files []*multipart.FileHeader) ([]string, error)
}

// App carries the handles every handler needs. Images may be nil, in which
// case uploads are refused.
type App struct {
	Sellers   SellerStore
	Images    ImageStore
	Validator *utils.FileValidator
	MaxImages int
	Log       logrus.FieldLogger
}

func (a *App) RegisterRoutes(r gin.IRouter) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/signup", a.Signup())

	inventory := r.Group("/inventory/:sellerId")
	{
		inventory.GET("", a.GetInventory())
		inventory.POST("/products", a.AddProduct())
		inventory.POST("/images", a.UploadImages())
	}
}

const internalErrorMessage = "Internal server error"

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// internalError logs err with the request context and answers with a
// generic 500.
func (a *App) internalError(c *gin.Context, err error, msg string) {
	a.Log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.RequestID(c),
		"path":       c.Request.URL.Path,
	}).Error(msg)
	respondMessage(c, http.StatusInternalServerError, internalErrorMessage)
}

// lookupSeller writes the error response itself and returns false when the
// seller cannot be loaded. Malformed ids land in the 500 branch.
func (a *App) lookupSeller(c *gin.Context) (*models.Seller, bool) {
	sellerID := c.Param("sellerId")

	seller, err := a.Sellers.FindByID(c.Request.Context(), sellerID)
	if err != nil {
		if errors.Is(err, database.ErrSellerNotFound) {
			respondMessage(c, http.StatusNotFound, fmt.Sprintf("Seller with ID %s not found", sellerID))
			return nil, false
		}
		a.internalError(c, err, "seller lookup failed")
		return nil, false
	}
	return seller, true
}
