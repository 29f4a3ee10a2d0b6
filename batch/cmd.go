package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"texparse/convert"
	"texparse/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan string `help:"Source folder to scan" default:"."`
	Dest string `help:"Destination folder for texture files. Relative to scan dir if not absolute." default:"textures"`
	Ext  string `help:"Extension of the written texture files" default:".txt"`

	convert.Options
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Ext != "" && !strings.HasPrefix(c.Ext, ".") {
		c.Ext = "." + c.Ext
	}

	return c.Options.Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, j := range c.plan(files) {
		if j.dest == "" {
			errCount.Add(1)
			slog.Error("destination already taken by another image", "file", filepath.Join(c.Scan, j.name))
			continue
		}

		worker(func(fileName, destName string) func() {
			return func() {
				src := filepath.Join(c.Scan, fileName)
				dest := filepath.Join(c.Dest, destName)
				logger := slog.Default().With("file", src)

				if _, err := convert.File(logger, src, dest, "", &c.Options); err != nil {
					errCount.Add(1)
					logger.Error("could not convert image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(j.name, j.dest))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

type job struct {
	name string
	dest string
}

// plan picks an output name for every regular file. Sources sharing a stem
// keep their extension (a.png.txt, a.jpg.txt); a name that still clashes,
// compared case-insensitively, gets an empty dest.
func (c *CLICmd) plan(files []os.DirEntry) []job {
	var jobs []job
	stems := make(map[string]int)
	for _, file := range files {
		if !file.Type().IsRegular() {
			continue
		}
		jobs = append(jobs, job{name: file.Name()})
		stems[strings.ToLower(stem(file.Name()))]++
	}

	taken := make(map[string]bool, len(jobs))
	for i := range jobs {
		name := jobs[i].name
		dest := stem(name) + c.Ext
		if stems[strings.ToLower(stem(name))] > 1 {
			dest = name + c.Ext
		}
		if key := strings.ToLower(dest); !taken[key] {
			taken[key] = true
			jobs[i].dest = dest
		}
	}
	return jobs
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
