// README: Writes a catalog snapshot to Postgres, lists snapshots, or dumps the catalog as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sensei/internal/config"
	"sensei/internal/infra"
	"sensei/internal/modules/catalog"
)

type options struct {
	file string
	name string
	dump bool
	list bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "catalog JSON to seed instead of the builtin tables")
	flag.StringVar(&opts.name, "name", "", "snapshot name (defaults to SENSEI_CATALOG_SNAPSHOT)")
	flag.BoolVar(&opts.dump, "dump", false, "print the catalog as JSON and exit")
	flag.BoolVar(&opts.list, "list", false, "list stored snapshots and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, os.Stdout, logger); err != nil {
		logger.Fatal("Catalog seed failed", zap.Error(err))
	}
}

var errNoDSN = errors.New("SENSEI_DB_DSN is required to seed or list snapshots")

func run(ctx context.Context, cfg config.Config, opts options, out io.Writer, logger *zap.Logger) error {
	src, err := readSource(opts.file)
	if err != nil {
		return fmt.Errorf("read catalog %q: %w", opts.file, err)
	}
	if opts.dump {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(src); err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		return nil
	}

	if cfg.DB.DSN == "" {
		return errNoDSN
	}
	pool, err := infra.NewDB(ctx, cfg.DB.DSN, cfg.DB.ConnectTimeout, logger)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	if err := infra.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	store := catalog.NewStore(pool)

	if opts.list {
		infos, err := store.ListSnapshots(ctx)
		if err != nil {
			return fmt.Errorf("list snapshots: %w", err)
		}
		for _, info := range infos {
			fmt.Fprintf(out, "%-20s templates=%d roads=%d updated=%s\n",
				info.Name, info.Templates, info.Roads, info.UpdatedAt.Format(time.RFC3339))
		}
		return nil
	}

	snapshot := opts.name
	if snapshot == "" {
		snapshot = cfg.Catalog.Snapshot
	}
	if err := store.SaveSnapshot(ctx, snapshot, src); err != nil {
		return fmt.Errorf("save snapshot %q: %w", snapshot, err)
	}
	logger.Info("Catalog snapshot saved",
		zap.String("name", snapshot),
		zap.Int("templates", len(src.Templates)),
		zap.Int("roads", len(src.Roads)))
	return nil
}

// readSource returns the builtin tables, or the decoded file when one is given.
// The result is validated either way.
func readSource(path string) (catalog.Source, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return catalog.Source{}, err
	}
	return c.Source(), nil
}
