package router

import (
	"time"

	"tracker/api"
	"tracker/config"
	_ "tracker/docs"
	"tracker/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 用户
	userHandler := api.NewUserHandler()
	users := r.Group("/users")
	{
		// 注册接口限流，防止批量刷号
		users.POST("", middleware.RateLimit(20, time.Minute), userHandler.Create)
		users.GET("/:user_id", userHandler.Get)
		users.PUT("/:user_id", userHandler.Update)
		users.DELETE("/:user_id", userHandler.Delete)
	}

	// 消费类别
	categoryHandler := api.NewCategoryHandler()
	categories := r.Group("/categories")
	{
		categories.POST("", categoryHandler.Create)
		categories.GET("", categoryHandler.List)
		categories.PUT("/:category_id", categoryHandler.Update)
		categories.DELETE("/:category_id", categoryHandler.Delete)
	}

	// 消费记录
	expenseHandler := api.NewExpenseHandler()
	expenses := r.Group("/expenses")
	{
		expenses.POST("", expenseHandler.Create)
		expenses.GET("", expenseHandler.List)
		expenses.GET("/:expense_id", expenseHandler.Get)
		expenses.PUT("/:expense_id", expenseHandler.Update)
		expenses.DELETE("/:expense_id", expenseHandler.Delete)
	}

	// 报表
	reportHandler := api.NewReportHandler()
	reports := r.Group("/reports")
	{
		reports.GET("/category-wise/:user_id", reportHandler.CategoryWise)
		reports.GET("/month-wise/:user_id", reportHandler.MonthWise)
		reports.GET("/year-wise/:user_id", reportHandler.YearWise)
	}

	// 导出
	exportHandler := api.NewExportHandler()
	export := r.Group("/export")
	{
		export.GET("/csv", exportHandler.ExportCSV)
		export.GET("/excel", exportHandler.ExportExcel)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
