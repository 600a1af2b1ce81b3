package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/SHSW-Syu/SSend/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type toppingInfo struct {
	ToppingID    uint    `json:"toppingId"`
	ToppingName  string  `json:"toppingName"`
	ToppingPrice float64 `json:"toppingPrice"`
}

type productWithToppings struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	ToppingGroup *int           `json:"toppingGroup"`
	ToppingLimit int            `json:"toppingLimit"`
	Allergens    datatypes.JSON `json:"allergens,omitempty"`
	Toppings     []toppingInfo  `json:"toppings"`
}

// GetProjectProducts lists the products of a project by project name, each
// with the toppings selectable for it. Toppings attach to a product through
// its topping group; a product without a group gets an empty list.
func GetProjectProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		projectName := ctx.Param("projectName")

		var products []models.Product
		if err := db.
			Joins("JOIN project ON project.id = product.project_id").
			Where("project.name = ?", projectName).
			Order("product.id").
			Find(&products).Error; err != nil {
			log.Println("Product query error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchProducts)
			return
		}

		var toppings []models.Topping
		if err := db.
			Joins("JOIN project ON project.id = topping.project_id").
			Where("project.name = ?", projectName).
			Order("topping.topping_id").
			Find(&toppings).Error; err != nil {
			log.Println("Topping query error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchProducts)
			return
		}

		byGroup := make(map[int][]toppingInfo)
		for _, t := range toppings {
			if t.ToppingGroup == nil {
				continue
			}
			byGroup[*t.ToppingGroup] = append(byGroup[*t.ToppingGroup], toppingInfo{
				ToppingID:    t.ToppingID,
				ToppingName:  t.Name,
				ToppingPrice: t.Price,
			})
		}

		result := make([]productWithToppings, 0, len(products))
		for _, p := range products {
			entry := productWithToppings{
				ID:           p.ID,
				Name:         p.Name,
				Price:        p.Price,
				ToppingGroup: p.ToppingGroup,
				ToppingLimit: p.ToppingLimit,
				Allergens:    p.Allergens,
				Toppings:     []toppingInfo{},
			}
			if p.ToppingGroup != nil {
				if group, ok := byGroup[*p.ToppingGroup]; ok {
					entry.Toppings = group
				}
			}
			result = append(result, entry)
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		form, err := ctx.MultipartForm()
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidForm)
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
			return
		}

		productIdStr := ctx.PostForm("productId")
		if productIdStr == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, "Missing productId")
			return
		}

		productId, err := strconv.Atoi(productIdStr)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid productId")
			return
		}

		var product models.Product
		if err := db.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			} else {
				log.Println("Product lookup error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgProductNotFound)
			}
			return
		}

		bucket := os.Getenv("S3_BUCKET")
		if bucket == "" {
			sendErrorResponse(ctx, http.StatusInternalServerError, msgMissingStorageConfig)
			return
		}

		uploader, err := getAWSUploader()
		if err != nil {
			log.Println("AWS config error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToConfigureAWS)
			return
		}

		var uploadedUrls []string
		var failedUploads []string

		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			// Unique key to prevent overwrites between uploads
			uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

			uploadResult, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
				Bucket:      aws.String(bucket),
				Key:         aws.String(uniqueFilename),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			uploadedUrls = append(uploadedUrls, uploadResult.Location)

			productImage := models.ProductImage{
				ProductID: uint(productId),
				Url:       uploadResult.Location,
			}
			if err := db.Create(&productImage).Error; err != nil {
				log.Printf("Error saving image to database: %v", err)
			}
		}

		response := gin.H{
			"message": "Files processed",
			"urls":    uploadedUrls,
		}
		if len(failedUploads) > 0 {
			response["failed"] = failedUploads
		}

		ctx.JSON(http.StatusOK, response)
	}
}
