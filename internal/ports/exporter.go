package ports

type ExportItem struct {
	Key  string
	Text string
}

type Exporter interface {
	Format() string
	Export(locale string, items []ExportItem) ([]byte, error)
}
