package head

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rcarmo/go-head/pkg/core"
)

// Version is reported by --version. Overridden at link time.
var Version = "0.1.0"

const defaultLines = 10

// Options is the resolved configuration for one invocation.
type Options struct {
	Files []string
	Lines uint64
	// Bytes is nil unless -c was given; when set it overrides Lines.
	Bytes *uint64
	Debug bool
}

// countValue is a pflag.Value accepting base-10 non-negative integers only.
type countValue struct {
	n *uint64
}

var _ pflag.Value = countValue{}

func newCountValue(def uint64, p *uint64) countValue {
	*p = def
	return countValue{n: p}
}

func (c countValue) String() string {
	if c.n == nil {
		return "0"
	}
	return strconv.FormatUint(*c.n, 10)
}

func (c countValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*c.n = n
	return nil
}

func (c countValue) Type() string {
	return "uint"
}

// NewCommand builds the cobra command for head. When the command runs
// (that is, not for --help or --version) the resolved options are handed to fn.
func NewCommand(stdio *core.Stdio, fn func(*Options) error) *cobra.Command {
	opts := &Options{}
	var bytes uint64

	cmd := &cobra.Command{
		Use:   "head [FILE]...",
		Short: "Print the first lines or bytes of each FILE",
		Long: `Print the first 10 lines of each FILE to standard output.
With more than one FILE, precede each with a header giving the file name.
With no FILE, or when FILE is -, read standard input.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			if len(opts.Files) == 0 {
				opts.Files = []string{"-"}
			}
			if cmd.Flags().Changed("bytes") {
				opts.Bytes = &bytes
			}
			return fn(opts)
		},
	}
	cmd.SetIn(stdio.In)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarP(newCountValue(defaultLines, &opts.Lines), "lines", "n", "print the first `N` lines of each file")
	flags.VarP(newCountValue(0, &bytes), "bytes", "c", "print the first `N` bytes of each file")
	flags.BoolP("version", "V", false, "print version and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "log diagnostics to stderr")
	_ = flags.MarkHidden("debug")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")

	return cmd
}

// ParseArgs resolves args into Options. A nil result means the caller should
// exit with the returned code: usage errors return ExitUsage, --help and
// --version return ExitSuccess.
func ParseArgs(stdio *core.Stdio, args []string) (*Options, int) {
	var resolved *Options
	cmd := NewCommand(stdio, func(o *Options) error {
		resolved = o
		return nil
	})
	cmd.SetArgs(expandObsoleteCount(args))
	if err := cmd.Execute(); err != nil {
		return nil, core.UsageError(stdio, "head", err.Error())
	}
	return resolved, core.ExitSuccess
}

// expandObsoleteCount rewrites the historical -NUM form into -n NUM.
func expandObsoleteCount(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if i > 0 && takesValue(args[i-1]) {
			out = append(out, arg)
			continue
		}
		if len(arg) > 1 && arg[0] == '-' && isDigits(arg[1:]) {
			out = append(out, "-n", arg[1:])
			continue
		}
		out = append(out, arg)
	}
	return out
}

func takesValue(arg string) bool {
	switch arg {
	case "-n", "-c", "--lines", "--bytes":
		return true
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
