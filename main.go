package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"mahasiswa_backend/internals/configs"
	database "mahasiswa_backend/internals/databases"
	"mahasiswa_backend/internals/features/interests/catalog"
	"mahasiswa_backend/internals/features/interests/recommendation"
	helper "mahasiswa_backend/internals/helpers"
	"mahasiswa_backend/internals/helpers/gemini"
	"mahasiswa_backend/internals/helpers/logger"
	middlewares "mahasiswa_backend/internals/middlewares"
	routes "mahasiswa_backend/internals/route"
	routeDetails "mahasiswa_backend/internals/route/details"
	"mahasiswa_backend/internals/seeds"
)

// request guard: cukup untuk satu panggilan Gemini penuh + query DB
const requestSlack = 15 * time.Second

func main() {
	cfg := configs.LoadEnv(logger.NewStructured("info", "json"))
	log := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error("Konfigurasi tidak valid", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FromFiberError,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg, log)

	// HTTP timeout guard
	requestTimeout := cfg.Gemini.Timeout + requestSlack
	app.Use(func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		log.Error("Gagal konek database", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	if cfg.RunSeeds {
		if err := seeds.RunAllSeeds(db, log, cfg.SeedFile); err != nil {
			log.Error("Seed gagal", map[string]interface{}{"error": err.Error()})
		}
	}

	// 🤖 satu klien Gemini untuk seluruh proses
	genClient, err := gemini.NewClient(context.Background(), cfg.Gemini)
	if err != nil {
		log.Error("Gagal inisialisasi klien Gemini", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	courseCatalog := catalog.NewFileCatalog(cfg.DataDir, log)
	engine := recommendation.NewEngine(
		courseCatalog,
		recommendation.NewInvoker(cfg.Gemini.APIKey, genClient, cfg.Gemini.Timeout),
		log,
	)

	// ✅ Routes
	routes.SetupRoutes(app, routeDetails.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Catalog: courseCatalog,
		Engine:  engine,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = requestTimeout + 5*time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Info("✅ Listening", map[string]interface{}{"port": cfg.Port, "model": genClient.Model()})
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Error("server error", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(db); err != nil {
		log.Warn("Gagal menutup koneksi DB", map[string]interface{}{"error": err.Error()})
	}
}
