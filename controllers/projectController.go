package controllers

import (
	"log"
	"net/http"

	"github.com/SHSW-Syu/SSend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitProject creates a project together with its products and toppings as
// one unit of work. If any insert fails, nothing from the request persists.
func SubmitProject(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := ctx.Request.ParseForm(); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidForm)
			return
		}

		setup, err := parseProjectSetup(ctx.Request.PostForm)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}

		project := models.Project{
			Name:  setup.Name,
			Floor: setup.Floor,
			Color: setup.Color,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&project).Error; err != nil {
				return err
			}

			products := make([]models.Product, 0, len(setup.Products))
			for _, p := range setup.Products {
				products = append(products, models.Product{
					ProjectID:    project.ID,
					Name:         p.Name,
					Price:        p.Price,
					ToppingGroup: p.ToppingGroup,
					ToppingLimit: p.ToppingLimit,
					Allergens:    p.Allergens,
				})
			}
			if err := tx.Create(&products).Error; err != nil {
				return err
			}

			toppings := make([]models.Topping, 0, len(setup.Toppings))
			for _, t := range setup.Toppings {
				toppings = append(toppings, models.Topping{
					ProjectID:    project.ID,
					Name:         t.Name,
					Price:        t.Price,
					ToppingGroup: t.ToppingGroup,
				})
			}
			return tx.Create(&toppings).Error
		})
		if err != nil {
			log.Println("Project setup error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateProject)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success":   true,
			"projectId": project.ID,
		})
	}
}
