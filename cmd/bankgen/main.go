package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/sgerasimov/bankgen/internal/app"
	"github.com/sgerasimov/bankgen/internal/config"
	"github.com/sgerasimov/bankgen/internal/logger"
)

func main() {
	// .env опционален: в контейнере конфиг приходит из окружения.
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
