package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/rentledger/models"
	"github.com/dtnitsch/rentledger/pkg/aggregate"
	"github.com/dtnitsch/rentledger/pkg/db"
	"github.com/dtnitsch/rentledger/pkg/pipeline"
	"github.com/dtnitsch/rentledger/pkg/transcript"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	path := c.Args().First()
	if path == "" {
		path = c.String("file")
	}
	if path == "" {
		return fmt.Errorf("no transcript file provided (pass a path or use --file)")
	}

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sender := config.Sender
	if c.IsSet("sender") {
		sender = c.String("sender")
	}
	outputFormat := config.Format
	if c.IsSet("format") {
		outputFormat = c.String("format")
	}

	var format transcript.Format
	switch kind := c.String("kind"); kind {
	case "", "auto":
		// Detected from content by the pipeline.
	case "html":
		format = transcript.FormatHTML
	case "json":
		format = transcript.FormatJSON
	default:
		return fmt.Errorf("unknown transcript kind %q (want html, json or auto)", kind)
	}

	controller := pipeline.NewController()
	result, used, err := controller.RunFile(path, format, sender)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrLoad):
			logger.Error("failed to load transcript", "path", path, "error", err)
		case errors.Is(err, transcript.ErrFormat):
			logger.Error("transcript format is invalid", "path", path, "error", err)
		case errors.Is(err, aggregate.ErrNoEvents):
			logger.Error("no relevant events in transcript", "path", path, "error", err)
		default:
			logger.Error("analysis failed", "path", path, "error", err)
		}
		return err
	}

	logger.Info("analysis complete", "path", path, "transcript_format", used,
		"events", result.TotalEvents, "revenue", result.TotalRevenue.String())

	if !c.Bool("no-store") {
		database, err := openDB(c, config)
		if err != nil {
			logger.Warn("failed to open history database", "error", err)
		} else {
			defer database.Close()
			if _, err := database.InsertRun(path, string(used), result); err != nil {
				logger.Warn("failed to record run", "error", err)
			}
		}
	}

	var outputData []byte
	var marshalErr error
	if strings.ToLower(outputFormat) == "yaml" {
		outputData, marshalErr = yaml.Marshal(result)
	} else {
		outputData, marshalErr = json.MarshalIndent(result, "", "  ")
	}
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal result: %w", marshalErr)
	}
	fmt.Println(string(outputData))

	return nil
}

func openDB(c *cli.Context, config *models.Config) (*db.DB, error) {
	if c.IsSet("db") {
		return db.OpenAt(c.String("db"))
	}
	if config.DBPath != "" {
		return db.OpenAt(config.DBPath)
	}
	return db.Open()
}
