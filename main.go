package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-labyrinth/api"
	api_i "github.com/beka-birhanu/vinom-labyrinth/api/i"
	"github.com/beka-birhanu/vinom-labyrinth/api/identity"
	"github.com/beka-birhanu/vinom-labyrinth/api/level"
	"github.com/beka-birhanu/vinom-labyrinth/config"
	"github.com/beka-birhanu/vinom-labyrinth/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-labyrinth/infrastruture/log"
	"github.com/beka-birhanu/vinom-labyrinth/infrastruture/repo"
	"github.com/beka-birhanu/vinom-labyrinth/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-labyrinth/infrastruture/token"
	"github.com/beka-birhanu/vinom-labyrinth/maze"
	"github.com/beka-birhanu/vinom-labyrinth/service"
	"github.com/beka-birhanu/vinom-labyrinth/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const rankingKey = "levels:ranking"

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	designerRepo    *repo.DesignerRepo
	levelRepo       *repo.LevelRepo
	levelCache      i.LevelCache
	levelRanking    *sortedstorage.RedisLevelRanking
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	levelService    i.LevelService
	authController  api_i.Controller
	levelController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context) {
	designerRepo = repo.NewDesignerRepo(mongoClient, config.Envs.DBName, "designers")
	if err := designerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating designer indexes: %v", err))
		os.Exit(1)
	}

	levelRepo = repo.NewLevelRepo(mongoClient, config.Envs.DBName, "levels")
	if err := levelRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating level indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initRedisStorage(ctx context.Context) {
	var err error
	levelCache, err = cache.NewRedisLevelCache(redisClient, config.Envs.LevelCacheTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level cache: %v", err))
		os.Exit(1)
	}

	levelRanking, err = sortedstorage.NewRedisLevelRanking(redisClient, rankingKey, config.Envs.RankingSize)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level ranking: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Level cache and ranking initialized (%d ranked levels)", levelRanking.Count(ctx)))
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(designerRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initLevelService() {
	levelLogger, err := logger.New("LEVEL", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level logger: %v", err))
		os.Exit(1)
	}

	algorithm, err := maze.ParseAlgorithm(config.Envs.MazeAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Reading MAZE_ALGORITHM: %v", err))
		os.Exit(1)
	}

	levelService, err = service.NewLevelService(service.LevelServiceConfig{
		Levels:    levelRepo,
		Designers: designerRepo,
		Cache:     levelCache,
		Ranking:   levelRanking,
		Logger:    levelLogger,
		Defaults: service.LevelDefaults{
			Width:       config.Envs.MazeWidth,
			Height:      config.Envs.MazeHeight,
			Obstacles:   config.Envs.MazeObstacles,
			Algorithm:   algorithm,
			Print:       config.Envs.MazePrint,
			Output:      os.Stderr,
			RankingSize: config.Envs.RankingSize,
		},
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Level service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	levelController, err = level.NewController(levelService, appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, levelController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx)
	initRedisStorage(ctx)
	initJWTTokenizer()
	initAuthService()
	initLevelService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
