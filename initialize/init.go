package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/20225587/Tasker/app/controllers"
	"github.com/20225587/Tasker/app/db"
	"github.com/20225587/Tasker/app/middleware"
	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/notify"
	"github.com/20225587/Tasker/app/repo"
	"github.com/20225587/Tasker/app/services"
	"github.com/20225587/Tasker/app/session"
	"github.com/20225587/Tasker/config"
	"github.com/20225587/Tasker/global"
	"github.com/20225587/Tasker/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Users    *services.UserService
	Tasks    *services.TaskService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg
	ApplyLogLevel(cfg.LogLevel)

	// Only the log level is read per-request, so the reload callback
	// applies just that; global.Config stays the startup value and is
	// never written concurrently with request goroutines.
	if err := config.Watch(configPath, func(fresh *config.Config) {
		ApplyLogLevel(fresh.LogLevel)
		global.Logger.Info().Msg("config reloaded")
	}); err != nil {
		global.Logger.Warn().Err(err).Msg("config watch disabled")
	}

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Session backend
	var backend session.Backend
	if cfg.Session.Backend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr, Password: cfg.Session.RedisPass, DB: cfg.Session.RedisDB})
		global.Rdb = rdb
		backend = session.NewRedisBackend(rdb)
	} else {
		backend = session.NewMemoryBackend()
	}
	sessions := session.NewManager(backend, session.Options{
		CookieName: cfg.Session.CookieName,
		HashKey:    []byte(cfg.Session.HashKey),
		BlockKey:   blockKey(cfg.Session.BlockKey),
		TTL:        time.Duration(cfg.Session.TTLMin) * time.Minute,
	})

	// Services
	userRepo := repo.NewUserRepository(gdb)
	taskRepo := repo.NewTaskRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	var notifier notify.Notifier = notify.Noop{}
	if cfg.SMTP.Enabled {
		notifier = notify.NewSMTPNotifier(cfg.SMTP)
	}
	taskSvc := services.NewTaskService(taskRepo, userRepo, notifier)

	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}

	// Controllers
	guard := middleware.NewGuard(sessions)
	pageCtrl := controllers.NewPageController(sessions)
	authCtrl := controllers.NewAuthController(userSvc, sessions)
	userCtrl := controllers.NewUserController(userSvc)
	taskCtrl := controllers.NewTaskController(taskSvc)

	h := router.NewRouter(pageCtrl, authCtrl, userCtrl, taskCtrl, guard)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Sessions: sessions, Users: userSvc, Tasks: taskSvc}, nil
}

// blockKey enables cookie encryption only when a key of a size AES
// accepts is configured; securecookie signs either way.
func blockKey(key string) []byte {
	switch len(key) {
	case 16, 24, 32:
		return []byte(key)
	}
	return nil
}
