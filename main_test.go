package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/orayew2002/dummy-employees/config"
	"github.com/orayew2002/dummy-employees/domain"
	"github.com/orayew2002/dummy-employees/exporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPreview(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	employees, err := domain.NewGenerator(domain.NewFakerProvider(rnd), domain.WithRand(rnd)).Generate(7)
	require.NoError(t, err)

	var buf bytes.Buffer
	printPreview(&buf, employees, previewCount)
	out := buf.String()

	assert.Contains(t, out, "First 5 dummy employee records")
	assert.Contains(t, out, "Employee 5:")
	assert.NotContains(t, out, "Employee 6:")
	assert.Equal(t, 5, strings.Count(out, "  Emergency Contact Phone: "))
	assert.Contains(t, out, "  First Name: "+employees[0].FirstName+"\n")
}

func TestPrintPreview_ShortBatch(t *testing.T) {
	var buf bytes.Buffer
	printPreview(&buf, nil, previewCount)

	assert.Contains(t, buf.String(), "First 0 dummy employee records")
	assert.NotContains(t, buf.String(), "Employee 1:")
}

func TestObjectKey_ConfigDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	now := time.Date(2026, time.October, 15, 20, 45, 9, 0, time.UTC)
	assert.Equal(t, "dummy_employees_20261016_021509.csv", exporter.ObjectKey(cfg.GCS.KeyPrefix, now, cfg.GCS.KeyUTCOffset))
}
