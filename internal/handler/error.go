package handler

import (
	"errors"
	"net/http"

	"digipasal-be/internal/cart"
	"digipasal-be/internal/order"
	"digipasal-be/internal/product"
	"digipasal-be/internal/user"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic body; the real cause is already
// in the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrMethodRequired),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, product.ErrTitleRequired),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, product.ErrNoUpdateField),
		errors.Is(err, cart.ErrProductRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
