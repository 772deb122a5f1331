package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/callmedory/sport-project/db"
	"github.com/callmedory/sport-project/internal/auth"
	"github.com/callmedory/sport-project/internal/handler"
	"github.com/callmedory/sport-project/internal/model"
	"github.com/callmedory/sport-project/internal/repository"
	"github.com/callmedory/sport-project/internal/service"
	"github.com/callmedory/sport-project/pkg/blob"
	"github.com/callmedory/sport-project/pkg/notify"
	"github.com/callmedory/sport-project/pkg/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("error ensuring schema: %v", err)
	}

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	ctx := context.Background()
	provider, err := telemetry.NewProvider(ctx, telemetry.Config{
		ServiceName:    "sport-api",
		ServiceVersion: "1.0.0",
	})
	if err != nil {
		log.Fatalf("error initializing telemetry: %v", err)
	}
	defer provider.Shutdown(ctx)

	tokens := auth.NewTokenManager(
		os.Getenv("JWT_SECRET"),
		os.Getenv("JWT_REFRESH_SECRET"),
		"sport-project",
		15*time.Minute,
		7*24*time.Hour,
	)

	articleRepo := repository.NewArticleRepository(db.DB)
	tagRepo := repository.NewTagRepository(db.DB)
	statsRepo := repository.NewStatsRepository(db.DB)
	favoritesRepo := repository.NewFavoritesRepository(db.DB)
	commentRepo := repository.NewCommentRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)

	blobs := blob.NewRedisStore(db.Redis)
	dispatcher := notify.NewQueueDispatcher(db.PushToQueue, db.NotifyQueueKey)

	tagService := service.NewTagService(tagRepo)
	statsService := service.NewStatsService(statsRepo, userRepo)
	favoritesService := service.NewFavoritesService(favoritesRepo)
	likesService := service.NewLikesService(articleRepo)
	articleService := service.NewArticleService(articleRepo, userRepo, tagService,
		statsService, favoritesService, commentRepo, blobs, dispatcher)
	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo)
	sportsService := service.NewSportsService()
	userService := service.NewUserService(userRepo, tokens)
	imageService := service.NewImageService(blobs)

	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	engagementHandler := handler.NewEngagementHandler(favoritesService, likesService)
	discoverHandler := handler.NewDiscoverHandler(tagService, statsService, sportsService)
	accountHandler := handler.NewAccountHandler(userService, notificationRepo)
	imageHandler := handler.NewImageHandler(imageService)

	r := gin.Default()
	r.Use(otelgin.Middleware("sport-api"))

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	authed := auth.RequireAuth(tokens)
	authorOnly := auth.RequireRole(model.RoleAuthor, model.RoleAdmin, model.RoleSuperAdmin)
	adminOnly := auth.RequireRole(model.RoleAdmin, model.RoleSuperAdmin)
	superAdminOnly := auth.RequireRole(model.RoleSuperAdmin)

	r.POST("/auth/register", accountHandler.Register)
	r.POST("/auth/login", accountHandler.Login)
	r.POST("/auth/refresh", accountHandler.Refresh)
	r.GET("/me", authed, accountHandler.Me)
	r.GET("/users", authed, adminOnly, accountHandler.Users)
	r.PUT("/users/role", authed, superAdminOnly, accountHandler.ChangeRole)
	r.GET("/notifications", authed, accountHandler.Notifications)

	r.GET("/sports", discoverHandler.Sports)
	r.GET("/tags/top", discoverHandler.TopTags)
	r.GET("/authors/top", discoverHandler.TopAuthors)

	r.GET("/articles", articleHandler.GetPublished)
	r.GET("/articles/review", authed, adminOnly, articleHandler.GetForReview)
	r.GET("/articles/mine", authed, authorOnly, articleHandler.GetMine)
	r.GET("/articles/tag/:tag", articleHandler.GetByTag)
	r.GET("/articles/sport/:sport", articleHandler.GetBySport)
	r.GET("/articles/search/title", articleHandler.SearchTitle)
	r.GET("/articles/search/tags", articleHandler.SearchTags)
	r.GET("/articles/search/author", articleHandler.SearchAuthor)
	r.GET("/articles/favorites", authed, articleHandler.GetFavorites)
	r.GET("/articles/:id", articleHandler.GetArticle)
	r.POST("/articles", authed, authorOnly, articleHandler.Create)
	r.PUT("/articles/:id", authed, authorOnly, articleHandler.Update)
	r.DELETE("/articles/:id", authed, adminOnly, articleHandler.Delete)
	r.POST("/articles/:id/publish", authed, adminOnly, articleHandler.Publish)

	r.GET("/articles/:id/comments", commentHandler.List)
	r.POST("/articles/:id/comments", authed, commentHandler.Add)
	r.DELETE("/comments/:commentID", authed, commentHandler.Delete)

	r.POST("/articles/:id/likes", authed, engagementHandler.AddLike)
	r.DELETE("/articles/:id/likes", authed, engagementHandler.RemoveLike)
	r.GET("/articles/:id/likes", engagementHandler.LikeCount)
	r.GET("/likes", authed, engagementHandler.LikedArticles)

	r.POST("/favorites/:id", authed, engagementHandler.AddFavorite)
	r.DELETE("/favorites/:id", authed, engagementHandler.RemoveFavorite)
	r.GET("/favorites", authed, engagementHandler.ListFavoriteIDs)

	r.POST("/images", authed, authorOnly, imageHandler.Upload)
	r.GET("/images/:key", imageHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		if err := db.DB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy", "database": "disconnected"})
			return
		}
		c.JSON(200, gin.H{"status": "healthy", "database": "connected"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
