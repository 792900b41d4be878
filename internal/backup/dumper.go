package backup

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// pgDumper shells out to pg_dump and optionally gzips its output.
type pgDumper struct {
	dsn string
}

// NewPGDumper returns the production Dumper backed by pg_dump.
func NewPGDumper(dsn string) Dumper {
	return &pgDumper{dsn: dsn}
}

func (d *pgDumper) Dump(ctx context.Context, dest string, compress bool) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer out.Close()

	cmd := exec.CommandContext(ctx, "pg_dump", "--no-owner", "--no-privileges", "--dbname", d.dsn)
	var stderr []byte
	if compress {
		gz := gzip.NewWriter(out)
		cmd.Stdout = gz
		stderr, err = d.run(cmd)
		if closeErr := gz.Close(); err == nil {
			err = closeErr
		}
	} else {
		cmd.Stdout = out
		stderr, err = d.run(cmd)
	}
	if err != nil {
		return fmt.Errorf("pg_dump: %w: %s", err, stderr)
	}
	return out.Sync()
}

func (d *pgDumper) run(cmd *exec.Cmd) ([]byte, error) {
	var buf limitedBuffer
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.data, err
}

// limitedBuffer keeps the first 4 KiB of stderr for error messages.
type limitedBuffer struct {
	data []byte
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := 4096 - len(b.data); room > 0 {
		if len(p) > room {
			b.data = append(b.data, p[:room]...)
		} else {
			b.data = append(b.data, p...)
		}
	}
	return len(p), nil
}
