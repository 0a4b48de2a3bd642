package global

import (
	"os"

	"github.com/20225587/Tasker/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config *config.Config
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	Mdb    *gorm.DB
	Rdb    *redis.Client
)
