package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/orayew2002/dummy-employees/config"
	"github.com/orayew2002/dummy-employees/domain"
	"github.com/orayew2002/dummy-employees/exporter"
	"github.com/orayew2002/dummy-employees/storage"
	"github.com/sirupsen/logrus"
)

const previewCount = 5

func main() {
	cfg, err := config.Load(config.DefaultEnvFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := cfg.Logger().WithField("run_id", uuid.NewString())
	ctx := context.Background()

	// Step 1: generate the batch. An exhausted id space ends the run.
	log.WithField("count", cfg.EmployeeCount).Info("generating dummy employee records")
	employees, err := generate(cfg, log)
	if err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}

	// Step 2: export locally and to the bucket. Failures are reported, not fatal.
	key := exporter.ObjectKey(cfg.GCS.KeyPrefix, time.Now(), cfg.GCS.KeyUTCOffset)
	if err := export(ctx, cfg, log, employees, key); err != nil {
		fmt.Printf("Error exporting employees: %v\n", err)
	} else {
		fmt.Printf("Exported %d employees to %s and gs://%s/%s\n", len(employees), cfg.LocalCSVPath, cfg.GCS.Bucket, key)
	}

	// Step 3: print a few records for a quick look.
	printPreview(os.Stdout, employees, previewCount)
}

func generate(cfg *config.Configuration, log *logrus.Entry) ([]domain.Employee, error) {
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	gen := domain.NewGenerator(domain.NewFakerProvider(rnd),
		domain.WithRand(rnd),
		domain.WithLogger(log),
	)
	return gen.Generate(cfg.EmployeeCount)
}

func export(ctx context.Context, cfg *config.Configuration, log *logrus.Entry, employees []domain.Employee, key string) error {
	opts := []exporter.Option{exporter.WithLogger(log)}
	if cfg.WorkbookPath != "" {
		opts = append(opts, exporter.WithWorkbook(cfg.WorkbookPath))
	}

	var client exporter.BlobWriter
	gcs, err := storage.NewGCS(ctx, storage.Config{
		CredentialsFile: cfg.GCS.CredentialsFile,
		Endpoint:        cfg.GCS.Endpoint,
	})
	if err != nil {
		// Export still writes the local copy and reports the missing client.
		log.WithError(err).Error("gcs client unavailable")
	} else {
		defer gcs.Close()
		client = gcs
	}

	return exporter.New(client, cfg.GCS.Bucket, opts...).Export(ctx, employees, cfg.LocalCSVPath, key)
}

func printPreview(w io.Writer, employees []domain.Employee, n int) {
	if len(employees) < n {
		n = len(employees)
	}

	fmt.Fprintf(w, "\nFirst %d dummy employee records (from generated data):\n", n)

	headers := exporter.Headers()
	for i, emp := range employees[:n] {
		fmt.Fprintf(w, "\nEmployee %d:\n", i+1)
		for col, value := range exporter.Row(emp) {
			fmt.Fprintf(w, "  %s: %s\n", headers[col], value)
		}
	}
}
