package numfmt

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is rendered whenever input fails normalization. Callers get a
// visible glyph instead of an empty cell or an error.
const Placeholder = "—"

// DefaultCurrency is the ISO code used when no marker matches the input and
// no option supplies a code.
const DefaultCurrency = "UAH"

const (
	defaultMinFractionDigits      = 0
	defaultMaxFractionDigits      = 2
	defaultCurrencyFractionDigits = 2
	defaultPercentDigits          = 1
)

// Formatter renders loosely formatted numeric input for display in a fixed
// locale. Construct instances with New; a Formatter is immutable after
// construction and safe for concurrent use.
type Formatter struct {
	tag         language.Tag
	printer     *message.Printer
	placeholder string
	currency    string
	markers     []Marker
}

// Option mutates a Formatter during construction
type Option func(*Formatter)

// WithLocale sets the display locale used for grouping and decimal symbols.
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			return
		}
		f.tag = language.Make(trimmed)
	}
}

// WithDefaultCurrency replaces the fallback currency code.
func WithDefaultCurrency(code string) Option {
	return func(f *Formatter) {
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			return
		}
		f.currency = strings.ToUpper(trimmed)
	}
}

// WithPlaceholder replaces the glyph rendered for unparseable input.
func WithPlaceholder(glyph string) Option {
	return func(f *Formatter) {
		if glyph == "" {
			return
		}
		f.placeholder = glyph
	}
}

// WithMarkers replaces the currency marker set used for detection and
// symbol lookup. Order is priority order.
func WithMarkers(markers ...Marker) Option {
	return func(f *Formatter) {
		if len(markers) == 0 {
			return
		}
		f.markers = cloneMarkers(markers)
	}
}

// New builds a Formatter. Defaults: English display locale, UAH fallback
// currency, the builtin EUR/UAH/USD marker set, and the em-dash placeholder.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		tag:         language.English,
		placeholder: Placeholder,
		currency:    DefaultCurrency,
		markers:     defaultMarkers(),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}

	f.printer = message.NewPrinter(f.tag)
	return f
}

type numberConfig struct {
	minDigits int
	maxDigits int
}

// NumberOption adjusts a single FormatNumber call.
type NumberOption func(*numberConfig)

// WithMinFractionDigits sets the floor on decimal digits shown.
func WithMinFractionDigits(digits int) NumberOption {
	return func(c *numberConfig) {
		c.minDigits = digits
	}
}

// WithMaxFractionDigits sets the ceiling on decimal digits shown.
func WithMaxFractionDigits(digits int) NumberOption {
	return func(c *numberConfig) {
		c.maxDigits = digits
	}
}

type currencyConfig struct {
	code      string
	minDigits int
	maxDigits int
}

// CurrencyOption adjusts a single FormatCurrency call.
type CurrencyOption func(*currencyConfig)

// WithCurrencyCode sets the code used when no marker is detected in the input.
func WithCurrencyCode(code string) CurrencyOption {
	return func(c *currencyConfig) {
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			return
		}
		c.code = strings.ToUpper(trimmed)
	}
}

// WithCurrencyFractionDigits overrides the 2/2 fraction digit bounds.
func WithCurrencyFractionDigits(minDigits, maxDigits int) CurrencyOption {
	return func(c *currencyConfig) {
		c.minDigits = minDigits
		c.maxDigits = maxDigits
	}
}

type percentConfig struct {
	digits      int
	assumeRatio bool
}

// PercentOption adjusts a single FormatPercent call.
type PercentOption func(*percentConfig)

// WithPercentDigits sets the fixed decimal places rendered after scaling.
func WithPercentDigits(digits int) PercentOption {
	return func(c *percentConfig) {
		if digits < 0 {
			return
		}
		c.digits = digits
	}
}

// WithRatioScaling controls whether values in [-1, 1] are treated as
// fractions of one and multiplied by 100 before rendering.
func WithRatioScaling(enabled bool) PercentOption {
	return func(c *percentConfig) {
		c.assumeRatio = enabled
	}
}

// FormatNumber renders value as a locale formatted plain number, honoring
// fraction digit bounds (defaults 0 and 2). Unparseable input renders as the
// placeholder glyph.
func (f *Formatter) FormatNumber(value any, opts ...NumberOption) string {
	cfg := numberConfig{
		minDigits: defaultMinFractionDigits,
		maxDigits: defaultMaxFractionDigits,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	v, ok := Normalize(value)
	if !ok {
		return f.placeholder
	}
	return f.decimal(v, cfg.minDigits, cfg.maxDigits)
}

// FormatCurrency renders value as a currency amount. When the original input
// is text, registered markers are scanned in priority order to infer the
// currency; plain numeric input never triggers detection and resolves through
// the option code or the formatter default.
func (f *Formatter) FormatCurrency(value any, opts ...CurrencyOption) string {
	cfg := currencyConfig{
		code:      f.currency,
		minDigits: defaultCurrencyFractionDigits,
		maxDigits: defaultCurrencyFractionDigits,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	v, ok := Normalize(value)
	if !ok {
		return f.placeholder
	}

	code := cfg.code
	if text, isText := textInput(value); isText {
		if marker, found := detectCurrency(f.markers, text); found {
			code = marker.Code
		}
	}

	amount := f.decimal(v, cfg.minDigits, cfg.maxDigits)

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code) + " " + amount
	}
	if symbol, found := markerSymbol(f.markers, unit.String()); found {
		return symbol + amount
	}
	return unit.String() + " " + amount
}

// FormatPercent renders value as a percentage with a literal "%" suffix.
// With ratio scaling on (the default), absolute values not exceeding one are
// multiplied by 100, so 0.42 and 42 both render as "42.0%".
func (f *Formatter) FormatPercent(value any, opts ...PercentOption) string {
	cfg := percentConfig{
		digits:      defaultPercentDigits,
		assumeRatio: true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	v, ok := Normalize(value)
	if !ok {
		return f.placeholder
	}

	if cfg.assumeRatio && math.Abs(v) <= 1 {
		v *= 100
	}
	return fixedPoint(v, cfg.digits) + "%"
}

// Placeholder returns the glyph this formatter substitutes for unparseable input.
func (f *Formatter) Placeholder() string {
	return f.placeholder
}

func (f *Formatter) decimal(v float64, minDigits, maxDigits int) string {
	opts := []number.Option{}
	if minDigits >= 0 {
		opts = append(opts, number.MinFractionDigits(minDigits))
	}
	if maxDigits >= 0 {
		opts = append(opts, number.MaxFractionDigits(maxDigits))
	}
	return f.printer.Sprintf("%v", number.Decimal(v, opts...))
}

// fixedPoint renders v with a fixed number of decimal places, independent of
// the locale-aware number path. Values outside the decimal range fall back to
// strconv.
func fixedPoint(v float64, digits int) string {
	if digits <= decimal.MaxScale {
		if d, err := decimal.NewFromFloat64(v); err == nil {
			return d.Rescale(digits).String()
		}
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// textInput reports the original textual form of value, when it has one.
// Marker detection only ever sees this form.
func textInput(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return string(v), true
	}
	return "", false
}

var std = New()

// FormatNumber renders value with the package default Formatter.
func FormatNumber(value any, opts ...NumberOption) string {
	return std.FormatNumber(value, opts...)
}

// FormatCurrency renders value with the package default Formatter.
func FormatCurrency(value any, opts ...CurrencyOption) string {
	return std.FormatCurrency(value, opts...)
}

// FormatPercent renders value with the package default Formatter.
func FormatPercent(value any, opts ...PercentOption) string {
	return std.FormatPercent(value, opts...)
}
