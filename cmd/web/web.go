package main

import (
	"context"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/inquirylab/inquiry-board-be/config"
	"github.com/inquirylab/inquiry-board-be/controllers"
	db2 "github.com/inquirylab/inquiry-board-be/db"
	firestoredb "github.com/inquirylab/inquiry-board-be/db/firestore"
	"github.com/inquirylab/inquiry-board-be/db/memory"
	"github.com/inquirylab/inquiry-board-be/routes"
	"github.com/inquirylab/inquiry-board-be/services"
	"github.com/inquirylab/inquiry-board-be/util/log"
)

func main() {
	config.LoadDotEnvs()
	log.InitLogger()

	ctx := context.Background()

	var database db2.Database
	var bucket *services.StorageBucket
	if err := config.ConfigureFirebaseCredentials(); err != nil {
		log.Log.Warnf("firebase credentials missing, using in-memory storage: %v", err)
		database = memory.GetDatabase()
	} else {
		app, err := firebase.NewApp(ctx, nil)
		if err != nil {
			log.Log.Fatalf("error initializing firebase: %v", err)
		}
		database, err = firestoredb.GetDatabase(ctx, app)
		if err != nil {
			log.Log.Fatalf("error connecting to firestore: %v", err)
		}
		if bucketName := config.StorageBucket(); bucketName != "" {
			bucket, err = services.NewStorageBucket(ctx, app, bucketName)
			if err != nil {
				log.Log.Fatalf("error connecting to the uploads bucket: %v", err)
			}
		} else {
			log.Log.Warn("STORAGE_BUCKET not set, media uploads disabled")
		}
	}
	defer database.Close()

	postController := controllers.NewPostController(database)
	commentController := controllers.NewCommentController(database)
	adminController := controllers.NewAdminController(database)
	if err := adminController.EnsureDefaultAdmin(ctx); err != nil {
		log.Log.Fatalf("error seeding the admin registry: %v", err)
	}

	gin.SetMode(os.Getenv("GIN_MODE"))
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  config.FrontendOrigins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-User-Id", "X-Admin-Id", "X-Admin-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	routes.AddPostRoutes(api, postController, database)
	routes.AddCommentRoutes(api, commentController, database)
	routes.AddBoardRoutes(api, database)
	routes.AddAdminRoutes(api, adminController, database)
	if bucket != nil {
		routes.AddUploadRoutes(api, bucket)
	}
	routes.AddHealthCheckRoutes(api)

	// gin falls back to $PORT, then :8080
	if err := r.Run(); err != nil {
		log.Log.Fatalf("error running web server: %v", err)
	}
}
