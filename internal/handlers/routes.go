package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the plan and image endpoints on api.
func RegisterRoutes(api *gin.RouterGroup, plans *BusinessPlanHandler, images *ImagesHandler) {
	api.GET("/", RootHandler)

	api.GET("/business-plan", plans.GetBusinessPlan)
	api.POST("/business-plan", plans.CreateBusinessPlan)
	api.PUT("/business-plan/:id", plans.UpdateBusinessPlan)

	api.POST("/images", images.UploadImage)
	api.POST("/images/upload", images.UploadImage)
	api.GET("/images", images.ListImages)
	api.GET("/images/:id", images.GetImage)
	api.DELETE("/images/:id", images.DeleteImage)
}
