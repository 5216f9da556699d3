package compare

// Formatter renders a comparison for one output medium.
type Formatter interface {
	Format(c *Comparison) ([]byte, error)
}

// GetFormatterByName returns the formatter for a --format value, or nil
// for an unknown name.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "console", "":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	case "pdf":
		return &PDFFormatter{}
	default:
		return nil
	}
}
