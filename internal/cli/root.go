// Package cli implements the fediskema command: validate, round-trip and
// describe entity payloads from the shell.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/entity"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	kind       string
	lenient    bool
	maxDepth   int
	unknown    string
	yamlInput  bool
	logFormat  string
	debug      bool
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "fediskema",
		Short:         "Validate and re-encode federated social-network entity payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML file with decode options")
	pf.StringVarP(&o.kind, "kind", "k", "", "entity kind, e.g. account or status")
	pf.BoolVar(&o.lenient, "lenient", false, "keep invalid content-typed strings and report them as warnings")
	pf.IntVar(&o.maxDepth, "max-depth", 0, "maximum nesting of self-referential fields (0 = default)")
	pf.StringVar(&o.unknown, "unknown", "", "unknown key policy: strip|passthrough|strict")
	pf.BoolVar(&o.yamlInput, "yaml", false, "input is YAML instead of JSON")
	pf.StringVar(&o.logFormat, "log-format", "text", "log format: text|json")
	pf.BoolVar(&o.debug, "debug", false, "log warnings and decode details to stderr")

	cmd.AddCommand(
		validateCmd(o),
		roundtripCmd(o),
		schemaCmd(o),
		kindsCmd(),
	)
	return cmd
}

// parseOpt merges the config file with explicitly set flags.
func (o *options) parseOpt(cmd *cobra.Command) (fediskema.ParseOpt, error) {
	fc, err := loadConfig(o.configPath)
	if err != nil {
		return fediskema.ParseOpt{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("lenient") {
		fc.Mode = "strict"
		if o.lenient {
			fc.Mode = "lenient"
		}
	}
	if flags.Changed("max-depth") {
		fc.MaxDepth = o.maxDepth
	}
	if flags.Changed("unknown") {
		fc.Unknown = o.unknown
	}
	opt, err := fc.parseOpt()
	if err != nil {
		return opt, err
	}
	opt.Logger, err = newLogger(cmd.ErrOrStderr(), o.logFormat, o.debug)
	return opt, err
}

func (o *options) resolveKind() (entity.Kind, error) {
	if o.kind == "" {
		return "", fmt.Errorf("--kind is required")
	}
	k, ok := entity.Lookup(o.kind)
	if !ok {
		return "", fmt.Errorf("unknown kind %q (see `fediskema kinds`)", o.kind)
	}
	return k, nil
}

// source reads the payload named by args ("-" or nothing reads stdin).
func (o *options) source(cmd *cobra.Command, args []string) (fediskema.Source, error) {
	var (
		b   []byte
		err error
	)
	if len(args) == 0 || args[0] == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	if o.yamlInput {
		return fediskema.YAMLBytes(b), nil
	}
	return fediskema.JSONBytes(b), nil
}

// decode runs the shared decode step of validate and roundtrip.
func (o *options) decode(cmd *cobra.Command, args []string) (entity.Kind, fediskema.Decoded[any], fediskema.ParseOpt, error) {
	var dm fediskema.Decoded[any]
	k, err := o.resolveKind()
	if err != nil {
		return k, dm, fediskema.ParseOpt{}, err
	}
	opt, err := o.parseOpt(cmd)
	if err != nil {
		return k, dm, opt, err
	}
	src, err := o.source(cmd, args)
	if err != nil {
		return k, dm, opt, err
	}
	opt.Logger.Debug("decode.start", "kind", string(k), "mode", opt.Mode.String())
	dm, err = entity.DecodeFrom(cmd.Context(), k, src, opt)
	return k, dm, opt, err
}

func printIssues(w io.Writer, label string, iss fediskema.Issues) {
	for _, it := range iss {
		fmt.Fprintf(w, "%s: %s\n", label, it.String())
	}
}
