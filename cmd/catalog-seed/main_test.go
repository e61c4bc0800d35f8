// README: Catalog seed command tests: dumping and the error paths that need no database.
package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"sensei/internal/config"
	"sensei/internal/modules/catalog"
)

func TestRun_DumpBuiltin(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), config.Config{}, options{dump: true}, &out, zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	src, err := catalog.Decode(&out)
	if err != nil {
		t.Fatalf("Decode(dump) error = %v", err)
	}
	if _, err := catalog.Build(src); err != nil {
		t.Fatalf("Build(dump) error = %v", err)
	}
	if got, want := len(src.Templates), len(catalog.Builtin().Templates); got != want {
		t.Errorf("dumped %d templates, want %d", got, want)
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	err := run(ctx, config.Config{}, options{}, &bytes.Buffer{}, zap.NewNop())
	if !errors.Is(err, errNoDSN) {
		t.Errorf("seed without DSN: err = %v, want errNoDSN", err)
	}

	err = run(ctx, config.Config{}, options{list: true}, &bytes.Buffer{}, zap.NewNop())
	if !errors.Is(err, errNoDSN) {
		t.Errorf("list without DSN: err = %v, want errNoDSN", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := run(ctx, config.Config{}, options{file: missing, dump: true}, &bytes.Buffer{}, zap.NewNop()); err == nil {
		t.Error("missing catalog file should fail")
	}
}
