package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/app"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/config"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/handler"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/notifier"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/postgres"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/repo"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/service"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Perfume Shop API
// @version         1.0
// @description     HTTP API магазина парфюмерии: каталог, заказы, уведомления
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(db))

	ordersRepo := repo.NewOrdersRepo(db)
	perfumesRepo := repo.NewPerfumesRepo(db)
	txManager := trm.NewManager(db)

	orderService := service.NewOrderService(logger, txManager, ordersRepo)
	catalogService := service.NewCatalogService(logger, perfumesRepo)

	// Каналы без конфигурации остаются nil и пропускаются при отправке
	var telegram, email notifier.Notifier
	if conf.Telegram.Configured() {
		telegram = notifier.NewTelegram(conf.Telegram)
	}
	if conf.SMTP.Configured() {
		email = notifier.NewEmail(conf.SMTP)
	}
	notifyService := service.NewNotifyService(logger, telegram, email)

	app := app.New(logger, conf)
	app.SetHttpHandlers(
		handler.NewOrdersHandler(logger, orderService),
		handler.NewAdminOrdersHandler(logger, orderService, conf.Admin.Password),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewNotifyHandler(logger, notifyService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
