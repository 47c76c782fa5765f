package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/render"
	"github.com/goliatone/go-quotegen/pkg/renderers/document"
	"github.com/goliatone/go-quotegen/pkg/templates"
)

func main() {
	orderPath := flag.String("order", "", "order document path (.json, .yaml, .yml)")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "optional config file resolving template paths and rates")
	summaryPath := flag.String("summary-template", "", "summary template path or URL (overrides config)")
	detailPath := flag.String("detail-template", "", "detail template path or URL (overrides config)")
	interactive := flag.Bool("interactive", false, "prompt for missing customer details")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := newLogger(*logLevel)
	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	if *orderPath == "" {
		logger.Fatal().Msg("an -order document is required")
	}
	req, err := readOrderFile(*orderPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *orderPath).Msg("read order document")
	}

	if *interactive {
		if err := promptMetadata(&req.Meta); err != nil {
			logger.Fatal().Err(err).Msg("interactive prompts")
		}
	}
	ensureQuoteNumber(&req.Meta)

	options := []document.Option{document.WithLogger(logger)}

	set, err := resolveTemplates(ctx, cfg, *summaryPath, *detailPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load templates")
	}
	if set != nil {
		options = append(options, document.WithTemplates(*set))
	}
	if card := cfg.rateCard(); card != nil {
		options = append(options, document.WithProvider(pricing.NewTableProvider(*card)))
	}

	renderer, err := document.New(options...)
	if err != nil {
		logger.Fatal().Err(err).Msg("configure renderer")
	}

	html, err := renderer.Render(ctx, req, render.RenderOptions{})
	if err != nil {
		logger.Fatal().Err(err).Msg("render quote")
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			logger.Fatal().Err(err).Str("path", *output).Msg("write output")
		}
		logger.Info().Str("path", *output).Msg("quote written")
	} else {
		fmt.Println(string(html))
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// cliConfig mirrors the config file schema:
//
//	templates:
//	  summary: quote/summary.html
//	  detail: quote/detail.html
//	ratecard:
//	  discount_percent: 15
//	  delivery_rate: 35
//	  installation_rate: 25
//	  removal_rate: 10
//	  price_multiplier: 1.1
//	  accessories:
//	    motor: 220
type cliConfig struct {
	v *viper.Viper
}

func loadConfig(path string) (cliConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("QUOTEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return cliConfig{v: v}, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cliConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return cliConfig{v: v}, nil
}

func (c cliConfig) templatePath(key string) string {
	if c.v == nil {
		return ""
	}
	return strings.TrimSpace(c.v.GetString("templates." + key))
}

func (c cliConfig) rateCard() *pricing.RateCard {
	if c.v == nil || !c.v.IsSet("ratecard") {
		return nil
	}

	card := pricing.DefaultRateCard()
	card.DiscountPercent = decimalSetting(c.v, "ratecard.discount_percent", card.DiscountPercent)
	card.DeliveryRate = decimalSetting(c.v, "ratecard.delivery_rate", card.DeliveryRate)
	card.InstallationRate = decimalSetting(c.v, "ratecard.installation_rate", card.InstallationRate)
	card.RemovalRate = decimalSetting(c.v, "ratecard.removal_rate", card.RemovalRate)
	card.PriceMultiplier = decimalSetting(c.v, "ratecard.price_multiplier", card.PriceMultiplier)

	for kind := range card.Accessories {
		key := "ratecard.accessories." + string(kind)
		card.Accessories[kind] = decimalSetting(c.v, key, card.Accessories[kind])
	}
	return &card
}

// resolveTemplates returns nil when neither flags nor config name templates,
// letting the renderer fall back to the embedded bundle.
func resolveTemplates(ctx context.Context, cfg cliConfig, summaryFlag, detailFlag string) (*templates.Set, error) {
	summary := firstNonEmpty(summaryFlag, cfg.templatePath("summary"))
	detail := firstNonEmpty(detailFlag, cfg.templatePath("detail"))

	if summary == "" && detail == "" {
		return nil, nil
	}
	if summary == "" || detail == "" {
		return nil, fmt.Errorf("both summary and detail templates must be configured, got summary=%q detail=%q", summary, detail)
	}

	loader := templates.NewLoader(templates.LoaderOptions{AllowHTTP: true})
	set, err := loader.LoadSet(ctx, parseSource(summary), parseSource(detail))
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func parseSource(raw string) templates.Source {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return templates.SourceFromURL(raw)
	}
	return templates.SourceFromFile(raw)
}

func decimalSetting(v *viper.Viper, key string, fallback decimal.Decimal) decimal.Decimal {
	if !v.IsSet(key) {
		return fallback
	}
	return decimal.NewFromFloat(v.GetFloat64(key))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
