package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dyntext/dyntext/printer"
	"github.com/dyntext/dyntext/template"
	"github.com/dyntext/dyntext/trace"
	"github.com/dyntext/dyntext/transcoder"
	"github.com/dyntext/dyntext/value"
)

func main() {
	var (
		tmpl        = flag.String("t", "", "Template string ({} and {N} placeholders)")
		cfgPath     = flag.String("config", "", "Path to a YAML config file")
		encName     = flag.String("encoding", "", "Console output encoding (utf-8, latin-1, cp1252)")
		bits        = flag.String("bits", "", "Print hex and binary forms of an integer and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		traceOn     = flag.Bool("trace", false, "Report value lifecycle counters on exit")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// Flags override the config file.
	if *encName != "" {
		cfg.Encoding = *encName
	}
	if *debug {
		cfg.Debug = true
	}
	if *traceOn {
		cfg.Trace = true
	}

	if err := run(cfg, *tmpl, *bits, *interactive, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, tmpl, bits string, interactive bool, args []string) error {
	if cfg.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		template.SetLogger(logger)
		printer.SetLogger(logger)
		trace.SetLogger(logger)
	}

	if cfg.Trace {
		rec := trace.NewRecorder()
		rec.Install()
		defer func() {
			rec.Uninstall()
			rec.Report()
		}()
	}

	enc, err := transcoder.Lookup(cfg.Encoding)
	if err != nil {
		return err
	}
	printer.SetOutput(transcoder.NewWriter(os.Stdout, enc))

	if bits != "" {
		v, ok := value.FromLiteral(bits)
		if !ok || v.Kind() != value.KindInt {
			return fmt.Errorf("-bits wants an integer, got %q", bits)
		}
		return printer.PrintHexBin(v.AsInt())
	}

	if interactive {
		return runInteractive()
	}

	if tmpl == "" {
		fmt.Fprintln(os.Stderr, "Usage: dyntext -t <template> [value ...]")
		fmt.Fprintln(os.Stderr, "       dyntext -bits <integer>")
		fmt.Fprintln(os.Stderr, "       dyntext -i  (interactive mode)")
		os.Exit(1)
	}

	return printer.Print(tmpl, classifyArgs(args)...)
}

// classifyArgs turns CLI arguments into values: numeric literals
// become Int/Float, everything else a Str.
func classifyArgs(args []string) []value.Value {
	vals := make([]value.Value, 0, len(args))
	for _, arg := range args {
		if v, ok := value.FromLiteral(arg); ok {
			vals = append(vals, v)
			continue
		}
		vals = append(vals, value.Str(arg))
	}
	return vals
}
