package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidOrderData      = "Invalid order data"
	msgFailedToProcessOrder  = "Failed to process order"
	msgFailedToCreateProject = "Failed to create project"
	msgFailedToFetchProducts = "Failed to fetch products"
	msgFailedToFetchOrder    = "Failed to fetch order"
	msgOrderNotFound         = "Order not found"
	msgProductNotFound       = "Product not found"
	msgInvalidForm           = "Invalid form data"
	msgMissingStorageConfig  = "Missing storage configuration"
	msgFailedToConfigureAWS  = "Failed to configure AWS"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

// sendErrorResponse returns the caller-facing error payload. Messages are
// generic on purpose; store error text stays in the server log.
func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the SSend ordering API.

The following are the endpoints for this API:

CATALOG
- GET "/api/products/:projectName" - List products of a project with their toppings
- POST "/api/products/images" - Upload product images

SETUP
- POST "/submit" - Create a project with its products and toppings

ORDER
- POST "/receive" - Place an order with its items
- GET "/api/orders/:orderId" - Get an order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
