package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	numfmt "github.com/goliatone/go-numfmt"
)

type cliConfig struct {
	mode     string
	locale   string
	currency string
	digits   int
	minFrac  int
	maxFrac  int
	noRatio  bool
	markers  string
}

func main() {
	cfg := cliConfig{}

	flag.StringVar(&cfg.mode, "mode", "number", "formatting mode: number, currency, or percent")
	flag.StringVar(&cfg.locale, "locale", "", "display locale (default en)")
	flag.StringVar(&cfg.currency, "currency", "", "currency code when no marker is detected")
	flag.IntVar(&cfg.digits, "digits", -1, "fixed decimal places for percent mode")
	flag.IntVar(&cfg.minFrac, "min", -1, "minimum fraction digits for number and currency modes")
	flag.IntVar(&cfg.maxFrac, "max", -1, "maximum fraction digits for number and currency modes")
	flag.BoolVar(&cfg.noRatio, "no-ratio", false, "disable ratio scaling in percent mode")
	flag.StringVar(&cfg.markers, "markers", "", "path to a YAML or JSON currency marker file")
	flag.Parse()

	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "numfmt:", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, args []string) error {
	opts := []numfmt.Option{}
	if cfg.locale != "" {
		opts = append(opts, numfmt.WithLocale(cfg.locale))
	}
	if cfg.markers != "" {
		markers, err := numfmt.LoadMarkersFile(cfg.markers)
		if err != nil {
			return err
		}
		opts = append(opts, numfmt.WithMarkers(markers...))
	}

	formatter := numfmt.New(opts...)

	format, err := buildFormatFunc(formatter, cfg)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		for _, arg := range args {
			fmt.Println(format(arg))
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(format(scanner.Text()))
	}
	return scanner.Err()
}

func buildFormatFunc(formatter *numfmt.Formatter, cfg cliConfig) (func(string) string, error) {
	switch cfg.mode {
	case "number":
		opts := []numfmt.NumberOption{}
		if cfg.minFrac >= 0 {
			opts = append(opts, numfmt.WithMinFractionDigits(cfg.minFrac))
		}
		if cfg.maxFrac >= 0 {
			opts = append(opts, numfmt.WithMaxFractionDigits(cfg.maxFrac))
		}
		return func(value string) string {
			return formatter.FormatNumber(value, opts...)
		}, nil
	case "currency":
		opts := []numfmt.CurrencyOption{}
		if cfg.currency != "" {
			opts = append(opts, numfmt.WithCurrencyCode(cfg.currency))
		}
		if cfg.minFrac >= 0 && cfg.maxFrac >= 0 {
			opts = append(opts, numfmt.WithCurrencyFractionDigits(cfg.minFrac, cfg.maxFrac))
		}
		return func(value string) string {
			return formatter.FormatCurrency(value, opts...)
		}, nil
	case "percent":
		opts := []numfmt.PercentOption{}
		if cfg.digits >= 0 {
			opts = append(opts, numfmt.WithPercentDigits(cfg.digits))
		}
		if cfg.noRatio {
			opts = append(opts, numfmt.WithRatioScaling(false))
		}
		return func(value string) string {
			return formatter.FormatPercent(value, opts...)
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.mode)
	}
}
