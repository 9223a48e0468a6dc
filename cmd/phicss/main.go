// phicss собирает таблицу стилей из файла токенов (YAML, TOML или JSON) без запуска сервиса.
//
//	phicss -tokens tokens.yaml [-o phi.css]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"phiCalc/internal/infrastructure/tokens"
	"phiCalc/internal/pkg/golden"
	"phiCalc/internal/pkg/logger"
	"phiCalc/internal/usecase/stylesheet"
)

const AppName = "PHICSS"

// Config — настройки CLI. Переменные: PHICSS_LOG_LEVEL, PHICSS_LOG_FORMAT, PHICSS_LOG_FILE.
type Config struct {
	Log logger.Config `envconfig:"LOG"`
}

func main() {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "phicss: config:", err)
		os.Exit(2)
	}
	if os.Getenv(AppName+"_LOG_FORMAT") == "" {
		cfg.Log.Format = logger.FormatPretty
	}
	log := logger.New(cfg.Log)

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Error("phicss failed", "error", err)
		os.Exit(1)
	}
}

// run разбирает флаги, читает токены и пишет CSS в out или в файл из -o.
func run(args []string, out io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("phicss", flag.ContinueOnError)
	tokensPath := fs.String("tokens", "", "файл токенов: .yaml, .yml, .toml или .json")
	outPath := fs.String("o", "", "файл результата; пусто — stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tokensPath == "" {
		return fmt.Errorf("-tokens is required")
	}

	t, err := tokens.Load(*tokensPath)
	if err != nil {
		return err
	}
	css, err := stylesheet.Build(golden.NewPowerCache(), t)
	if err != nil {
		return err
	}

	if *outPath == "" {
		_, err = io.WriteString(out, css)
		return err
	}
	if err := os.WriteFile(*outPath, []byte(css), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *outPath, err)
	}
	log.Info("stylesheet written", "tokens", *tokensPath, "out", *outPath, "bytes", len(css))
	return nil
}
