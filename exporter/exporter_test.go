package exporter

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orayew2002/dummy-employees/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blobCall struct {
	bucket      string
	key         string
	contentType string
	data        []byte
}

// fakeBlobWriter records every write and fails with err when set.
type fakeBlobWriter struct {
	calls []blobCall
	err   error
}

func (f *fakeBlobWriter) WriteBlob(_ context.Context, bucket, key, contentType string, data []byte) error {
	f.calls = append(f.calls, blobCall{bucket: bucket, key: key, contentType: contentType, data: data})
	return f.err
}

type panickingBlobWriter struct{}

func (panickingBlobWriter) WriteBlob(context.Context, string, string, string, []byte) error {
	panic("credentials not found")
}

func generate(t *testing.T, count int) []domain.Employee {
	t.Helper()

	rnd := rand.New(rand.NewPCG(9, 10))
	employees, err := domain.NewGenerator(domain.NewFakerProvider(rnd), domain.WithRand(rnd)).Generate(count)
	require.NoError(t, err)
	return employees
}

func TestExport_WritesLocalFileAndUploads(t *testing.T) {
	employees := generate(t, 5)
	client := &fakeBlobWriter{}
	path := filepath.Join(t.TempDir(), "dummy_employees.csv")

	err := New(client, "bkpemp-data").Export(context.Background(), employees, path, "dummy_employees_20261015_160000.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, bytes.Count(data, []byte("\n")))

	header, rows, err := UnmarshalCSV(data)
	require.NoError(t, err)
	assert.Equal(t, Headers(), header)
	assert.Len(t, rows, 5)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "bkpemp-data", call.bucket)
	assert.Equal(t, "dummy_employees_20261015_160000.csv", call.key)
	assert.Equal(t, ContentTypeCSV, call.contentType)
	assert.Equal(t, data, call.data)
}

func TestExport_EmptyBatchWritesHeaderOnly(t *testing.T) {
	client := &fakeBlobWriter{}
	path := filepath.Join(t.TempDir(), "empty.csv")

	err := New(client, "bucket").Export(context.Background(), generate(t, 0), path, "empty.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))

	header, rows, err := UnmarshalCSV(data)
	require.NoError(t, err)
	assert.Equal(t, Headers(), header)
	assert.Empty(t, rows)
	require.Len(t, client.calls, 1)
}

func TestExport_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale\n"), 50), 0o644))

	err := New(&fakeBlobWriter{}, "bucket").Export(context.Background(), generate(t, 2), path, "k.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Equal(t, 3, bytes.Count(data, []byte("\n")))
}

func TestExport_UploadFailureIsReported(t *testing.T) {
	client := &fakeBlobWriter{err: errors.New("403 forbidden")}
	path := filepath.Join(t.TempDir(), "out.csv")

	var err error
	require.NotPanics(t, func() {
		err = New(client, "bucket").Export(context.Background(), generate(t, 3), path, "k.csv")
	})

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.True(t, exportErr.Failed(StageUpload))
	assert.False(t, exportErr.Failed(StageLocal))
	assert.ErrorIs(t, err, client.err)

	// The local copy is still written.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestExport_PanickingClientIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	var err error
	require.NotPanics(t, func() {
		err = New(panickingBlobWriter{}, "bucket").Export(context.Background(), generate(t, 1), path, "k.csv")
	})

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, []Stage{StageUpload}, exportErr.Stages)
	assert.Contains(t, err.Error(), "credentials not found")
}

func TestExport_NilClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := New(nil, "bucket").Export(context.Background(), generate(t, 1), path, "k.csv")

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.True(t, exportErr.Failed(StageUpload))
}

func TestExport_LocalFailureStillUploads(t *testing.T) {
	client := &fakeBlobWriter{}
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.csv")

	err := New(client, "bucket").Export(context.Background(), generate(t, 2), path, "k.csv")

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, []Stage{StageLocal}, exportErr.Stages)
	assert.Len(t, client.calls, 1)
}

func TestExport_WithWorkbook(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "employees.xlsx")

	err := New(&fakeBlobWriter{}, "bucket", WithWorkbook(workbook)).
		Export(context.Background(), generate(t, 4), filepath.Join(dir, "out.csv"), "k.csv")
	require.NoError(t, err)

	info, err := os.Stat(workbook)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestObjectKey(t *testing.T) {
	now := time.Date(2026, time.October, 15, 20, 45, 9, 0, time.UTC)

	assert.Equal(t, "dummy_employees_20261016_021509.csv", ObjectKey("dummy_employees_", now, 5*time.Hour+30*time.Minute))
	assert.Equal(t, "exports/20261015_204509.csv", ObjectKey("exports/", now, 0))
}
