package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adl-lang/adl/internal/logctx"
	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/printer"
)

func newFmtCmd() *cobra.Command {
	var overwrite bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a schema file",
		Long: `Pretty-print a schema file to stdout.

If a file is provided, it must have a .adl extension.
If no file is provided, reads schema source from stdin.

Use -w to overwrite the file in place (requires a file argument).
Use --watch to reformat every time the file changes on disk (requires
a file argument, implies -w).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) == 0 {
					return fmt.Errorf("--watch requires a file argument")
				}
				return watchAndFormat(args[0])
			}

			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if overwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return errors.Wrap(err, "read stdin")
				}
				filename = "<stdin>"
			} else {
				filename = args[0]
				if ext := filepath.Ext(filename); ext != ".adl" {
					return fmt.Errorf("expected .adl file, got %s", ext)
				}
				source, err = os.ReadFile(filename)
				if err != nil {
					return errors.Wrap(err, "read file")
				}
			}

			output := formatSource(filename, string(source))

			if overwrite {
				return os.WriteFile(filename, []byte(output), 0o644)
			}
			_, err = os.Stdout.WriteString(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVar(&watch, "watch", false, "reformat the file in place on every change")

	return cmd
}

func formatSource(filename, source string) string {
	result := parser.Parse(filename, source)
	return printer.Print(result.Script)
}

// watchAndFormat reformats filename in place every time fsnotify reports a
// write to it, the same reparse-on-change trigger the language server's
// didSave handler uses, but driven from a standalone CLI process instead of
// an editor's save event.
func watchAndFormat(filename string) error {
	if ext := filepath.Ext(filename); ext != ".adl" {
		return fmt.Errorf("expected .adl file, got %s", ext)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrap(err, "watch directory")
	}

	reformat := func() error {
		source, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrap(err, "read file")
		}
		output := formatSource(filename, string(source))
		if output == string(source) {
			return nil
		}
		return os.WriteFile(filename, []byte(output), 0o644)
	}

	logger := logctx.Default()
	logger.Infof("watching %s for changes", filename)

	if err := reformat(); err != nil {
		logger.Errorf("format %s: %v", filename, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(filename) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := reformat(); err != nil {
				logger.Errorf("format %s: %v", filename, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("watch %s: %v", filename, err)
		}
	}
}
