package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/guptaji1008/book-hotel/config"
	"github.com/guptaji1008/book-hotel/db"
	authhandler "github.com/guptaji1008/book-hotel/internal/auth/handler"
	authrepo "github.com/guptaji1008/book-hotel/internal/auth/repository/postgres"
	authservice "github.com/guptaji1008/book-hotel/internal/auth/service"
	"github.com/guptaji1008/book-hotel/internal/logger"
	roomdomain "github.com/guptaji1008/book-hotel/internal/room/domain"
	roomhandler "github.com/guptaji1008/book-hotel/internal/room/handler"
	roomrepo "github.com/guptaji1008/book-hotel/internal/room/repository/postgres"
	"github.com/guptaji1008/book-hotel/internal/room/repository/rediscache"
	roomservice "github.com/guptaji1008/book-hotel/internal/room/service"
	"github.com/guptaji1008/book-hotel/pkg/constant"
)

func main() {
	cfg := config.Load()
	log := logger.New()
	logger.SetDefault(log)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := db.RunMigrations(cfg.DBURL); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	accountRepo := authrepo.NewAccountRepository(dbPool)
	tokenService := authservice.NewTokenService(cfg.SessionSecret, cfg.SessionExpiryMin)
	userService := authservice.NewUserService(accountRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService, tokenService, log)

	var roomRepo roomdomain.RoomRepository = roomrepo.NewRoomRepository(dbPool)
	if cfg.RedisURL != "" {
		roomRepo = cachedRoomRepo(ctx, log, cfg, roomRepo)
	}
	roomService := roomservice.NewRoomService(roomRepo)
	roomHandler := roomhandler.NewRoomHandler(roomService, log)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authHandler)
	roomhandler.RegisterRoutes(app, roomHandler, authHandler.RequireAuth, authHandler.RequireRole(constant.RoleAdmin))

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// cachedRoomRepo wraps the repository with the Redis read-through cache. A
// Redis that is configured but unreachable downgrades to the plain repository
// rather than blocking startup.
func cachedRoomRepo(ctx context.Context, log *slog.Logger, cfg *config.Config, inner roomdomain.RoomRepository) roomdomain.RoomRepository {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, room cache disabled", "error", err)
		return inner
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, room cache disabled", "error", err)
		return inner
	}

	log.Info("room cache enabled", "ttl_min", cfg.RoomCacheTTLMin)

	return rediscache.NewCachedRoomRepository(inner, client, time.Duration(cfg.RoomCacheTTLMin)*time.Minute)
}
