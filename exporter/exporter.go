package exporter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/orayew2002/dummy-employees/domain"
	"github.com/sirupsen/logrus"
)

// ContentTypeCSV is the content type stored with uploaded objects.
const ContentTypeCSV = "text/csv"

// BlobWriter writes a named blob to a named bucket.
type BlobWriter interface {
	WriteBlob(ctx context.Context, bucket, key, contentType string, data []byte) error
}

// Stage names one step of an export.
type Stage string

const (
	StageEncode   Stage = "encode"
	StageLocal    Stage = "local"
	StageUpload   Stage = "upload"
	StageWorkbook Stage = "workbook"
)

// ExportError reports the stages of an export that failed.
type ExportError struct {
	Stages []Stage
	Err    error
}

func (e *ExportError) Error() string {
	names := make([]string, len(e.Stages))
	for i, s := range e.Stages {
		names[i] = string(s)
	}
	return fmt.Sprintf("export failed (%s): %v", strings.Join(names, ", "), e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Failed reports whether stage is among the failed stages.
func (e *ExportError) Failed(stage Stage) bool {
	return slices.Contains(e.Stages, stage)
}

// Exporter writes employee batches to a local CSV file and a bucket.
type Exporter struct {
	client       BlobWriter
	bucket       string
	workbookPath string
	log          *logrus.Entry
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used for progress and failures.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Exporter) { e.log = log }
}

// WithWorkbook makes every export also save an Excel copy at path.
func WithWorkbook(path string) Option {
	return func(e *Exporter) { e.workbookPath = path }
}

// New creates an Exporter uploading to bucket through client.
func New(client BlobWriter, bucket string, opts ...Option) *Exporter {
	e := &Exporter{
		client: client,
		bucket: bucket,
		log:    nopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export serializes employees to CSV, overwrites localPath with it and uploads
// the same bytes as remoteKey. Each step is attempted once even if an earlier
// one failed. Failures are logged and returned as *ExportError.
func (e *Exporter) Export(ctx context.Context, employees []domain.Employee, localPath, remoteKey string) error {
	log := e.log.WithFields(logrus.Fields{
		"bucket":  e.bucket,
		"key":     remoteKey,
		"path":    localPath,
		"records": len(employees),
	})

	data, err := MarshalCSV(employees)
	if err != nil {
		return e.fail(log, []Stage{StageEncode}, []error{err})
	}

	var (
		stages []Stage
		errs   []error
	)

	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		stages = append(stages, StageLocal)
		errs = append(errs, fmt.Errorf("write %s: %w", localPath, err))
	} else {
		log.Info("saved local copy")
	}

	if err := e.upload(ctx, remoteKey, data); err != nil {
		stages = append(stages, StageUpload)
		errs = append(errs, fmt.Errorf("upload gs://%s/%s: %w", e.bucket, remoteKey, err))
	} else {
		log.Info("uploaded to bucket")
	}

	if e.workbookPath != "" {
		if err := WriteWorkbook(employees, e.workbookPath); err != nil {
			stages = append(stages, StageWorkbook)
			errs = append(errs, fmt.Errorf("workbook: %w", err))
		} else {
			log.WithField("workbook", e.workbookPath).Info("saved workbook copy")
		}
	}

	if len(errs) > 0 {
		return e.fail(log, stages, errs)
	}

	return nil
}

// upload performs a single write attempt. A panicking client is reported as an error.
func (e *Exporter) upload(ctx context.Context, key string, data []byte) (err error) {
	if e.client == nil {
		return errors.New("no blob client configured")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("blob client panic: %v", r)
		}
	}()

	return e.client.WriteBlob(ctx, e.bucket, key, ContentTypeCSV, data)
}

func (e *Exporter) fail(log *logrus.Entry, stages []Stage, errs []error) error {
	exportErr := &ExportError{Stages: stages, Err: errors.Join(errs...)}
	log.WithError(exportErr.Err).WithField("stages", stages).Error("export failed")
	return exportErr
}

func nopLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
