// Command seed loads fixture words into the configured store and can export
// the stored dictionary to a file or a MinIO object.
package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wordbook/dictionary/internal/config"
	"github.com/wordbook/dictionary/internal/fixtures"
	"github.com/wordbook/dictionary/internal/storage"
	"github.com/wordbook/dictionary/internal/word"
	"github.com/wordbook/dictionary/internal/word/repository"
	"github.com/wordbook/dictionary/pkg/logger"
)

func main() {
	file := flag.String("file", "", "seed from a JSON file of drafts instead of the built-in words")
	object := flag.String("object", "", "seed from a JSON object in the MinIO bucket")
	exportFile := flag.String("export-file", "", "write every stored word to this file after seeding")
	exportObject := flag.String("export-object", "", "upload every stored word to this MinIO object after seeding")
	skipSeed := flag.Bool("export-only", false, "export without seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	var objects *storage.MinIOStorage
	if *object != "" || *exportObject != "" {
		if objects, err = storage.NewMinIOStorage(ctx, cfg.MinIO); err != nil {
			logger.Fatalf("failed to connect to MinIO: %v", err)
		}
	}

	if !*skipSeed {
		drafts, err := loadDrafts(ctx, *file, *object, objects)
		if err != nil {
			logger.Fatalf("failed to load fixtures: %v", err)
		}
		rep, err := fixtures.Seed(ctx, store, drafts)
		if err != nil {
			logger.Fatalf("seed failed: %v", err)
		}
		for _, w := range rep.Skipped {
			logger.Infof("skipped %q: already exists", w)
		}
		logger.Infof("seed complete: added=%d skipped=%d total=%d", len(rep.Added), len(rep.Skipped), rep.Total)
	}

	if *exportFile != "" {
		f, err := os.Create(*exportFile)
		if err != nil {
			logger.Fatalf("failed to create %s: %v", *exportFile, err)
		}
		n, err := fixtures.Export(ctx, store, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			logger.Fatalf("export to %s failed: %v", *exportFile, err)
		}
		logger.Infof("exported %d words to %s", n, *exportFile)
	}

	if *exportObject != "" {
		var buf bytes.Buffer
		n, err := fixtures.Export(ctx, store, &buf)
		if err != nil {
			logger.Fatalf("export failed: %v", err)
		}
		if err := objects.UploadFile(ctx, *exportObject, &buf, int64(buf.Len()), "application/json"); err != nil {
			logger.Fatalf("upload %s failed: %v", *exportObject, err)
		}
		url, err := objects.GetPresignedURL(ctx, *exportObject, time.Hour)
		if err != nil {
			logger.Warnf("exported %d words to %s; presign failed: %v", n, *exportObject, err)
			return
		}
		logger.Infof("exported %d words to %s (%s)", n, *exportObject, url)
	}
}

func loadDrafts(ctx context.Context, file, object string, objects *storage.MinIOStorage) ([]word.Draft, error) {
	var r io.ReadCloser
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		r = f
	case object != "":
		rc, err := objects.DownloadFile(ctx, object)
		if err != nil {
			return nil, err
		}
		r = rc
	default:
		return fixtures.Defaults(), nil
	}
	defer r.Close()
	return fixtures.Decode(r)
}
