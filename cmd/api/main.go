package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"showtracker/api"
	"showtracker/configs"
	"showtracker/db"
	"showtracker/db/firebase"
	"showtracker/db/mongodb"
	"showtracker/db/rabbitmq"
	"showtracker/db/redis"
	"showtracker/internal/handler"
	"showtracker/internal/repository"
	"showtracker/internal/service"
	"showtracker/pkg/catalog"
	"showtracker/pkg/logger"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/getsentry/sentry-go"
)

// @title						Show Tracker
// @version					1.0
// @description				Watchlist, reviews and playlists on top of the TVMaze catalog.
// @contact.name				API Support
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	logFile := logger.Setup(configs.GetConfigs().LogFile)
	defer logFile.Close()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	defer mongoDB.Close()
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err = mongoDB.EnsureIndexes(indexCtx); err != nil {
		log.Printf("could not create mongodb indexes: %s", err)
	}
	cancelIndex()
	go configs.LoadDbConfigs(mongoDB.GetDB())

	postgresDB, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	defer postgresDB.Close()
	err = retry.Do(
		postgresDB.Migrate,
		retry.Attempts(5),
		retry.Delay(3*time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(db.IsConnectionNotAcceptingError),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("postgres is not accepting connections yet, retrying migration (%d)", n+1)
		}),
	)
	if err != nil {
		log.Fatalf("could not migrate postgres database: %s", err)
	}

	var events service.IEventService
	if url := configs.GetConfigs().RabbitMqUrl; url != "" {
		publisher, err := rabbitmq.NewPublisher(url, configs.GetConfigs().RabbitMqExchange)
		if err != nil {
			log.Fatalf("could not connect to rabbitmq: %s", err)
		}
		defer publisher.Close()
		eventQueue := service.NewEventQueue(publisher, "activity_queue.json", 2, 10000)
		eventQueue.Start(500 * time.Millisecond)
		defer eventQueue.Close()
		events = eventQueue
	}

	var verifier service.IIdentityVerifier
	if projectId := configs.GetConfigs().FirebaseProjectId; projectId != "" {
		authClient, err := firebase.NewAuthClient(context.Background(), projectId, configs.GetConfigs().FirebaseCredentialsFile)
		if err != nil {
			log.Fatalf("could not initialize firebase auth: %s", err)
		}
		verifier = service.NewFirebaseVerifier(authClient)
	}

	cacheSvc := service.NewCacheService()

	accountRep := repository.NewAccountRepository(postgresDB.GetDB())
	watchlistRep := repository.NewWatchlistRepository(mongoDB.GetDB())
	reviewRep := repository.NewReviewRepository(mongoDB.GetDB())
	playlistRep := repository.NewPlaylistRepository(mongoDB.GetDB())
	profileRep := repository.NewProfileRepository(mongoDB.GetDB())

	accountSvc := service.NewAccountService(accountRep, cacheSvc, verifier)
	watchlistSvc := service.NewWatchlistService(watchlistRep, events)
	reviewSvc := service.NewReviewService(reviewRep, profileRep, events)
	playlistSvc := service.NewPlaylistService(playlistRep, events)
	statusSvc := service.NewStatusService(watchlistRep, reviewRep)
	profileSvc := service.NewProfileService(profileRep, accountRep, watchlistRep, reviewRep, playlistRep)
	catalogClient := catalog.NewClient(configs.GetConfigs().CatalogApiUrl, configs.GetConfigs().CatalogTimeout)
	catalogSvc := service.NewCatalogService(catalogClient, cacheSvc)
	adminSvc := service.NewAdminService(playlistRep, cacheSvc, func() error {
		return configs.FetchDbConfigs(mongodb.MONGODB.GetDB())
	})

	api.InitRouter(api.Handlers{
		Account:   handler.NewAccountHandler(accountSvc),
		Watchlist: handler.NewWatchlistHandler(watchlistSvc),
		Review:    handler.NewReviewHandler(reviewSvc),
		Playlist:  handler.NewPlaylistHandler(playlistSvc),
		Show:      handler.NewShowHandler(catalogSvc, statusSvc, reviewSvc),
		Profile:   handler.NewProfileHandler(profileSvc),
		Admin:     handler.NewAdminHandler(adminSvc),
	}, accountSvc)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = api.Shutdown()
	}()

	if err = api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Printf("server stopped: %s", err)
	}
}
