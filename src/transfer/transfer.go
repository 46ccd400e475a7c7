// Package transfer copies the selected objects out of a container into a
// local folder named after it.
package transfer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gocloud.dev/blob"

	"azpull/src/blobstore"
)

// Mode selects which objects a run copies out of the container.
type Mode int

const (
	ModeSQLDump Mode = iota
	ModeStaticFiles
	ModeEverything
)

// DumpObject is the well-known path of the SQL dump inside a container.
const DumpObject = "dump.sql"

// StaticPrefix is the path prefix holding the static file tree.
const StaticPrefix = "static/"

// ModeLabels returns the fixed menu entries, indexed by Mode.
func ModeLabels() []string {
	return []string{
		"SQL dump only",
		"Static files only",
		"Everything in the container",
	}
}

// ParseMode validates a selection against the closed mode set. Anything
// outside {0,1,2} is an invalid selection, never a silent no-op.
func ParseMode(i int) (Mode, error) {
	switch m := Mode(i); m {
	case ModeSQLDump, ModeStaticFiles, ModeEverything:
		return m, nil
	default:
		return 0, fmt.Errorf("invalid download mode selection %d", i)
	}
}

// Options configures a transfer run.
type Options struct {
	// DryRun reports what would be copied without touching the
	// filesystem.
	DryRun bool
	// Out receives progress and summary lines.
	Out io.Writer
}

// Run copies the objects selected by mode from the container bucket into
// destRoot/<containerName>. Partial failures leave whatever was already
// copied in place; there is no rollback.
func Run(ctx context.Context, bkt *blob.Bucket, containerName, destRoot string, mode Mode, opts Options) error {
	if _, err := ParseMode(int(mode)); err != nil {
		return err
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	dest := filepath.Join(destRoot, containerName)
	if opts.DryRun {
		return dryRun(ctx, bkt, dest, mode, out)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create destination folder: %w", err)
	}

	switch mode {
	case ModeSQLDump:
		if err := blobstore.DownloadObject(ctx, bkt, DumpObject, filepath.Join(dest, DumpObject), out); err != nil {
			return err
		}
		fmt.Fprintf(out, "Copied %s to %s\n", DumpObject, dest)
	case ModeStaticFiles:
		n, err := blobstore.DownloadBatch(ctx, bkt, StaticPrefix, dest, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Copied %d static files to %s\n", n, dest)
	case ModeEverything:
		n, err := blobstore.DownloadBatch(ctx, bkt, "", dest, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Copied %d objects to %s\n", n, dest)
	}
	return nil
}

func dryRun(ctx context.Context, bkt *blob.Bucket, dest string, mode Mode, out io.Writer) error {
	prefix := ""
	switch mode {
	case ModeSQLDump:
		fmt.Fprintf(out, "Would copy %s to %s\n", DumpObject, dest)
		return nil
	case ModeStaticFiles:
		prefix = StaticPrefix
	}
	keys, err := blobstore.ListKeys(ctx, bkt, prefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(out, "Would copy %s to %s\n", k, dest)
	}
	fmt.Fprintf(out, "%d objects total\n", len(keys))
	return nil
}
