package http

//go:generate mockgen -source=exporter.go -destination=./mocks/exporter_mock.go -package=mocks

// Exporter is the read side of a metrics registry.
type Exporter interface {
	// Namespaces lists the namespaces that can be exported.
	Namespaces() []string
	// ExportText returns the metrics of a namespace in text exposition format.
	ExportText(namespace string) ([]byte, error)
}
