package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SHSW-Syu/SSend/models"
	"github.com/SHSW-Syu/SSend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type orderItemInput struct {
	ProductID  uint  `json:"productId" binding:"required"`
	Topping1ID *uint `json:"topping1Id"`
	Topping2ID *uint `json:"topping2Id"`
	Quantity   int   `json:"quantity" binding:"required,gt=0"`
}

type orderInput struct {
	ProjectID  uint             `json:"projectId" binding:"required"`
	UserID     uint             `json:"userId" binding:"required"`
	TotalPrice float64          `json:"totalPrice"`
	Items      []orderItemInput `json:"items" binding:"required,min=1,dive"`
}

// ReceiveOrder persists an order and its items as one unit of work. The
// generated order id is returned only after the transaction commits.
func ReceiveOrder(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input orderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Println("Order binding error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidOrderData)
			return
		}

		order := models.Order{
			ProjectID:  input.ProjectID,
			UserID:     input.UserID,
			TotalPrice: input.TotalPrice,
			Status:     0,
			Cashier:    0,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			items := make([]models.Item, 0, len(input.Items))
			for _, item := range input.Items {
				items = append(items, models.Item{
					OrderID:    order.ID,
					ProductID:  item.ProductID,
					Topping1ID: item.Topping1ID,
					Topping2ID: item.Topping2ID,
					Quantity:   item.Quantity,
				})
			}
			return tx.Create(&items).Error
		})
		if err != nil {
			log.Println("Error processing order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToProcessOrder)
			return
		}

		utils.NotifyOrderPlaced(order)

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"orderId": order.ID,
		})
	}
}

// GetOrderById returns a single order with its items.
func GetOrderById(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderId, err := strconv.Atoi(ctx.Param("orderId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
			return
		}

		var order models.Order
		result := db.Preload("Items").First(&order, orderId)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
			} else {
				log.Println("Order fetch error:", result.Error)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrder)
			}
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
	}
}
