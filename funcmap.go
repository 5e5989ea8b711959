package numfmt

// FuncMap exposes the formatter entry points under template friendly names,
// for use with text/template or html/template.
func (f *Formatter) FuncMap() map[string]any {
	return map[string]any{
		"format_number":   f.FormatNumber,
		"format_currency": f.FormatCurrency,
		"format_percent":  f.FormatPercent,
	}
}
