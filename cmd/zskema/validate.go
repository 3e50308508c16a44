package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/source"
)

var errInvalid = errors.New("validation failed")

type validateOptions struct {
	schema     string
	format     string
	coerce     bool
	output     string
	printValue bool
	allowDups  bool
	maxDepth   int
}

// report is the JSON output for one document.
type report struct {
	File   string        `json:"file"`
	OK     bool          `json:"ok"`
	Value  any           `json:"value,omitempty"`
	Issues []issueReport `json:"issues,omitempty"`
}

type issueReport struct {
	Path    string         `json:"path"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate documents against a schema",
		Long: `Reads each file (or stdin when no file or "-" is given), decodes it as JSON or YAML
and evaluates it with the selected schema. Exits non-zero when any document fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.schema, "schema", "s", "", "name of the schema to apply (see 'zskema schemas')")
	f.StringVarP(&opts.format, "format", "f", "", "input format: json or yaml (default: by file extension, json for stdin)")
	f.BoolVar(&opts.coerce, "coerce", false, "coerce primitive values toward the schema's types")
	f.StringVarP(&opts.output, "output", "o", "text", "report format: text or json")
	f.BoolVar(&opts.printValue, "print-value", false, "print the validated value of passing documents")
	f.BoolVar(&opts.allowDups, "allow-duplicate-keys", false, "let the last duplicate JSON key win instead of failing")
	f.IntVar(&opts.maxDepth, "max-depth", 0, "maximum nesting depth of input documents (0 = unlimited)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts *validateOptions, args []string) error {
	entry, err := a.registry.Lookup(opts.schema)
	if err != nil {
		return err
	}
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	srcOpts := []source.Option{source.WithMaxDepth(opts.maxDepth)}
	if opts.allowDups {
		srcOpts = append(srcOpts, source.WithDuplicateKeys(source.DupIgnore))
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range args {
		data, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		format, err := pickFormat(opts.format, name)
		if err != nil {
			return err
		}
		a.logger.Debug("validating", "file", name, "schema", entry.Name, "format", format.String(), "coerce", opts.coerce)
		r := zskema.ParseBytes(ctx, entry.Schema, format, data, opts.coerce, srcOpts...)
		if !r.OK() {
			failed++
			a.logger.Info("document rejected", "file", name, "issues", len(r.Issues))
		}
		if err := writeReport(out, opts, name, r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d document(s)", errInvalid, failed, len(args))
	}
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func pickFormat(flag, name string) (zskema.Format, error) {
	if flag != "" {
		f, ok := zskema.ParseFormat(flag)
		if !ok {
			return f, fmt.Errorf("unknown input format %q", flag)
		}
		return f, nil
	}
	if f, ok := zskema.ParseFormat(trimDot(filepath.Ext(name))); ok {
		return f, nil
	}
	return zskema.FormatJSON, nil
}

func trimDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}

func writeReport(w io.Writer, opts *validateOptions, name string, r zskema.Result) error {
	if opts.output == "json" {
		rep := report{File: name, OK: r.OK()}
		if r.OK() && opts.printValue {
			rep.Value = r.Value
		}
		for _, it := range r.Issues {
			rep.Issues = append(rep.Issues, issueReport{Path: it.Path.Pointer(), Code: it.Code, Message: it.Message, Params: it.Params})
		}
		b, err := gojson.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	if r.OK() {
		if _, err := fmt.Fprintf(w, "%s: ok\n", name); err != nil {
			return err
		}
		if opts.printValue {
			_, err := fmt.Fprintln(w, zskema.Render(r.Value))
			return err
		}
		return nil
	}
	for _, it := range r.Issues {
		loc := it.Path.String()
		if loc == "" {
			loc = "(root)"
		}
		if _, err := fmt.Fprintf(w, "%s: %s: %s [%s]\n", name, loc, it.Message, it.Code); err != nil {
			return err
		}
	}
	return nil
}
