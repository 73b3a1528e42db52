package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/KoheiTanihara/Gado-back/internal/app/di"
	"github.com/KoheiTanihara/Gado-back/internal/app/router"
	authadapters "github.com/KoheiTanihara/Gado-back/internal/feature/auth/adapters"
	authhandler "github.com/KoheiTanihara/Gado-back/internal/feature/auth/transport/handler"
	authusecase "github.com/KoheiTanihara/Gado-back/internal/feature/auth/usecase"
	itemhandler "github.com/KoheiTanihara/Gado-back/internal/feature/items/transport/handler"
	itemusecase "github.com/KoheiTanihara/Gado-back/internal/feature/items/usecase"
	infradb "github.com/KoheiTanihara/Gado-back/internal/platform/db"
	jwtmw "github.com/KoheiTanihara/Gado-back/internal/platform/jwt"
	infraredis "github.com/KoheiTanihara/Gado-back/internal/platform/redis"
)

const defaultTokenTTL = 30 * time.Minute

func main() {
	// .env（あれば）を読み込む
	_ = godotenv.Load()

	// JWT_SECRETが未設定なら空のキーで署名してしまう前に起動を中止する
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid ACCESS_TOKEN_TTL: %v", err)
		}
		ttl = d
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	itemRepo := di.NewItemRepository(rdb, db)

	// Usecase
	issuer := jwtmw.NewIssuer(secret, ttl)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	itemUC := itemusecase.NewItemUsecase(itemRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	itemH := itemhandler.NewItemHandler(itemUC)

	// ルータ生成
	r := router.NewRouter(authH, itemH, jwtmw.AuthRequired(secret, userRepo), db)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
