package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voya/cmd/fx/ai_fx"
	"voya/cmd/fx/board_fx"
	"voya/cmd/fx/cart_fx"
	"voya/cmd/fx/controllers_fx"
	"voya/cmd/fx/db_fx"
	"voya/cmd/fx/file_fx"
	"voya/cmd/fx/memcache_fx"
	"voya/cmd/fx/redis_fx"
	"voya/cmd/fx/schedule_fx"
	"voya/cmd/fx/user_fx"
	"voya/internal/api/controllers"
	"voya/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		user_fx.Module,
		board_fx.Module,
		cart_fx.Module,
		schedule_fx.Module,
		ai_fx.Module,
		file_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	boardController *controllers.BoardController,
	cartController *controllers.CartController,
	scheduleController *controllers.ScheduleController,
	fileController *controllers.FileController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userController, boardController, cartController, scheduleController, fileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	boardController *controllers.BoardController,
	cartController *controllers.CartController,
	scheduleController *controllers.ScheduleController,
	fileController *controllers.FileController) {

	usersGroup := r.Group("/users")
	usersGroup.POST("/register", userController.Register)
	usersGroup.POST("/login", userController.Login)

	usersAuthGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	usersAuthGroup.PUT("/me", userController.Update)
	usersAuthGroup.DELETE("/me", userController.Delete)

	boardsGroup := r.Group("/boards")
	boardsGroup.GET("", boardController.GetBoardList)
	boardsGroup.GET("/:id", boardController.GetBoardDetail)
	boardsGroup.GET("/:id/comments", boardController.ListComments)

	boardsAuthGroup := r.Group("/boards", middleware.JWTAuthMiddleware())
	boardsAuthGroup.POST("", boardController.CreateBoard)
	boardsAuthGroup.PUT("/:id", boardController.UpdateBoard)
	boardsAuthGroup.DELETE("/:id", boardController.DeleteBoard)
	boardsAuthGroup.POST("/:id/report", boardController.ReportBoard)
	boardsAuthGroup.POST("/:id/comments", boardController.CreateComment)

	commentsGroup := r.Group("/comments", middleware.JWTAuthMiddleware())
	commentsGroup.DELETE("/:commentId", boardController.DeleteComment)

	cartsGroup := r.Group("/carts", middleware.JWTAuthMiddleware())
	cartsGroup.GET("/me", cartController.GetCartDetail)
	cartsGroup.DELETE("/me", cartController.ClearCart)
	cartsGroup.POST("/tours", cartController.AddTour)
	cartsGroup.DELETE("/tours/:tourId", cartController.RemoveTour)

	schedulesGroup := r.Group("/schedules", middleware.JWTAuthMiddleware())
	schedulesGroup.POST("", scheduleController.CreateSchedule)
	schedulesGroup.GET("/:id", scheduleController.GetSchedule)
	schedulesGroup.PUT("/:id", scheduleController.UpdateSchedule)
	schedulesGroup.DELETE("/:id", scheduleController.DeleteSchedule)
	schedulesGroup.POST("/:id/daily-plan", scheduleController.GenerateDailyPlan)

	filesGroup := r.Group("/files", middleware.JWTAuthMiddleware())
	filesGroup.POST("/upload", fileController.UploadImage)
}
