package config

import (
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
)

// Server holds HTTP server configuration
type Server struct {
	Addr           string
	AllowedOrigins string
	ExportSchedule string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("AIWATCH_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "allowed-origins",
			Usage:       "Comma-separated CORS origins allowed to call the API",
			Category:    "Server",
			Value:       "*",
			Sources:     cli.EnvVars("AIWATCH_ALLOWED_ORIGINS"),
			Destination: &s.AllowedOrigins,
		},
		&cli.StringFlag{
			Name:        "export-schedule",
			Usage:       "Cron spec for checking due subscription exports",
			Category:    "Server",
			Value:       "@hourly",
			Sources:     cli.EnvVars("AIWATCH_EXPORT_SCHEDULE"),
			Destination: &s.ExportSchedule,
		},
	}
}

// Origins returns the configured CORS origins as a list
func (s *Server) Origins() []string {
	parts := strings.Split(s.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("allowedOrigins", s.AllowedOrigins),
		slog.String("exportSchedule", s.ExportSchedule),
	)
}
