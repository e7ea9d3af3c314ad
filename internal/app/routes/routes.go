package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusshare/campusshare/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	resourceController *controllers.ResourceController,
	transactionController *controllers.TransactionController,
	rewardController *controllers.RewardController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("", studentController.Register)
		students.GET("/:id", studentController.GetByID)
		students.GET("/:id/transactions", transactionController.ListByStudent)
	}

	resources := v1.Group("/resources")
	{
		resources.POST("", resourceController.Add)
		resources.GET("", resourceController.ListAvailable)
		resources.GET("/search", resourceController.Search)
		resources.GET("/:id", resourceController.Get)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", transactionController.Process)
	}

	rewards := v1.Group("/rewards")
	{
		rewards.GET("", rewardController.List)
		rewards.POST("/redeem", rewardController.Redeem)
	}
}
