package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/princinho/sellerdashboard/dto"
	"github.com/princinho/sellerdashboard/models"
)

const (
	msgFieldsRequired   = "All fields are required"
	msgPasswordMismatch = "Passwords do not match"
	msgInvalidBody      = "Invalid request body"
)

// POST /signup
func (a *App) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SignupDTO
		if err := c.ShouldBind(&body); err != nil {
			respondMessage(c, http.StatusBadRequest, signupErrorMessage(err))
			return
		}

		// password is kept as typed; nothing here hashes it
		seller := models.NewSeller(string(body.Email), string(body.BusinessName), string(body.Password))
		if err := a.Sellers.Insert(c.Request.Context(), seller); err != nil {
			a.internalError(c, err, "signup insert failed")
			return
		}

		a.Log.WithField("seller_id", seller.ID.Hex()).Info("seller signed up")
		respondMessage(c, http.StatusOK, "Signup successful")
	}
}

// signupErrorMessage reports missing fields before a password mismatch.
func signupErrorMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return msgFieldsRequired
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgInvalidBody
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return msgFieldsRequired
		}
	}
	for _, fe := range verrs {
		if fe.Tag() == "eqfield" {
			return msgPasswordMismatch
		}
	}
	return msgInvalidBody
}
