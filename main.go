package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"eksporyuk_backend/internals/configs"
	database "eksporyuk_backend/internals/databases"
	trxService "eksporyuk_backend/internals/features/finance/transactions/service"
	umScheduler "eksporyuk_backend/internals/features/memberships/user_membership/scheduler"
	notifService "eksporyuk_backend/internals/features/notifications/service"
	middlewares "eksporyuk_backend/internals/middlewares"
	routes "eksporyuk_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"}, // sesuaikan dengan CIDR Cloudflare jika perlu
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                 // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB)
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// ✅ Payment gateways
	trxService.InitXendit(configs.XenditSecretKey)
	useMidtransProd := false
	if v := os.Getenv("MIDTRANS_USE_PROD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useMidtransProd = b
		}
	}
	trxService.InitMidtrans(configs.MidtransServerKey, useMidtransProd)

	// 📣 Notification dispatcher (email + WA + push, fire-and-forget)
	dispatcher := notifService.NewDispatcher(database.DB,
		notifService.NewMailketingChannel(
			configs.GetEnv("MAILKETING_API_TOKEN"),
			configs.GetEnv("MAIL_FROM_NAME", "EksporYuk"),
			configs.GetEnv("MAIL_FROM_EMAIL", "noreply@eksporyuk.com"),
		),
		notifService.NewStarsenderChannel(configs.GetEnv("STARSENDER_API_KEY")),
		notifService.NewOneSignalChannel(
			configs.GetEnv("ONESIGNAL_APP_ID"),
			configs.GetEnv("ONESIGNAL_API_KEY"),
		),
	)

	// ⏱ scheduler internal setelah DB siap
	cronRunner := umScheduler.StartMembershipScheduler(database.DB, dispatcher, configs.GetEnv("MEMBERSHIP_CRON_SPEC"))

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, dispatcher)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cronRunner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
