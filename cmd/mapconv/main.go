// Package main is the entry point for mapconv.
//
// Usage:
//
//	mapconv [-preview] <map.tmx>
//
// The map's width, height and first layer are printed to stdout as a quoted
// string of base-32 digits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mapconv/internal/config"
	"github.com/samdwyer/mapconv/internal/telemetry"
	"github.com/samdwyer/mapconv/internal/tilecode"
	"github.com/samdwyer/mapconv/internal/viewer"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mapconv: ")

	preview := flag.Bool("preview", false, "show the first layer in the terminal after printing")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mapconv [-preview] <map file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), os.Stdout, flag.Arg(0), *preview); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, out io.Writer, path string, preview bool) error {
	// A missing .env is normal; anything else is worth a note
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := config.Load()
	if cfg.TelemetryEnabled() {
		shutdown, err := telemetry.Setup(ctx, cfg)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	tracer := telemetry.Tracer("cli")
	ctx, span := tracer.Start(ctx, "mapconv.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("run.id", uuid.NewString()),
		attribute.Bool("run.preview", preview),
	)

	encoded, m, err := tilecode.EncodeFile(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, encoded)

	if !preview {
		return nil
	}

	v, err := viewer.New(m)
	if err != nil {
		return fmt.Errorf("failed to open preview: %w", err)
	}
	return v.Run(ctx)
}
