package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princinho/sellerdashboard/dto"
	"github.com/sirupsen/logrus"
)

// GET /inventory/:sellerId
func (a *App) GetInventory() gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := a.lookupSeller(c)
		if !ok {
			return
		}
		seller.Normalize()

		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{
				"seller":  seller,
				"message": "Here is the inventory...",
			},
		})
	}
}

// POST /inventory/:sellerId/products
//
// The seller is read, the product appended in memory and the whole document
// written back. Two concurrent calls for one seller can lose one append.
func (a *App) AddProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := a.lookupSeller(c)
		if !ok {
			return
		}

		var body dto.AddProductDTO
		if err := c.ShouldBind(&body); err != nil && !errors.Is(err, io.EOF) {
			a.internalError(c, err, "add product: body could not be decoded")
			return
		}

		seller.AppendProduct(body.ToProduct())
		if err := a.Sellers.Save(c.Request.Context(), seller); err != nil {
			a.internalError(c, err, "add product: save failed")
			return
		}

		a.Log.WithFields(logrus.Fields{
			"seller_id": seller.ID.Hex(),
			"products":  len(seller.Products),
		}).Info("product added")
		respondMessage(c, http.StatusOK, "Product added successfully !!!")
	}
}
