// Package cli builds the here command line.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/here/internal/version"
	"github.com/arthur-debert/here/pkg/config"
	"github.com/arthur-debert/here/pkg/core"
	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/types"
	"github.com/arthur-debert/here/pkg/ui"
)

// Flag names shared between registration and validation
const (
	flagFolder          = "folder"
	flagFromWhere       = "from-where"
	flagChangeDirectory = "change-directory"
	flagEscape          = "escape-backslash"
	flagQuote           = "wrap-quote"
	flagResolveSymlink  = "resolve-symlink"
	flagNoCopy          = "no-copy"
	flagNoColor         = "no-color"
	flagPosix           = "posix"
	flagNoPosix         = "no-posix"
	flagSelectFirst     = "select-first"
	flagVerbose         = "verbose"
	flagConfig          = "config"
	flagCompletion      = "completion"
	flagMarkdown        = "markdown"
	flagGenConfig       = "gen-config"
)

// metaFlags replace the normal run and tolerate only these companions
var metaFlags = []string{flagCompletion, flagMarkdown, flagGenConfig}

var metaCompanions = map[string]bool{flagVerbose: true, flagConfig: true}

type options struct {
	verbosity   int
	configPath  string
	whereSearch bool
	flags       types.TransformFlags

	completion string
	markdown   bool
	genConfig  bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("here %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date))
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	f := rootCmd.Flags()
	f.BoolVarP(&opts.flags.FolderComponent, flagFolder, "f", false, MsgFlagFolder)
	f.BoolVarP(&opts.whereSearch, flagFromWhere, "w", false, MsgFlagFromWhere)
	f.BoolVarP(&opts.flags.ChangeDirectory, flagChangeDirectory, "d", false, MsgFlagChangeDirectory)
	f.BoolVarP(&opts.flags.EscapeBackslash, flagEscape, "e", false, MsgFlagEscape)
	f.BoolVarP(&opts.flags.WrapQuote, flagQuote, "q", false, MsgFlagQuote)
	f.BoolVarP(&opts.flags.ResolveSymlink, flagResolveSymlink, "r", false, MsgFlagResolveSymlink)
	f.BoolVarP(&opts.flags.NoCopy, flagNoCopy, "n", false, MsgFlagNoCopy)
	f.BoolVarP(&opts.flags.NoColor, flagNoColor, "c", false, MsgFlagNoColor)
	f.BoolVar(&opts.flags.PosixStyle, flagPosix, false, MsgFlagPosix)
	f.BoolVar(&opts.flags.NoPosixStyle, flagNoPosix, false, MsgFlagNoPosix)
	f.BoolVar(&opts.flags.SelectFirstOption, flagSelectFirst, false, MsgFlagSelectFirst)
	f.CountVarP(&opts.verbosity, flagVerbose, "v", MsgFlagVerbose)
	f.StringVar(&opts.configPath, flagConfig, "", MsgFlagConfig)
	f.StringVar(&opts.completion, flagCompletion, "", MsgFlagCompletion)
	f.BoolVar(&opts.markdown, flagMarkdown, false, MsgFlagMarkdown)
	f.BoolVar(&opts.genConfig, flagGenConfig, false, MsgFlagGenConfig)

	rootCmd.MarkFlagsMutuallyExclusive(flagPosix, flagNoPosix)
	rootCmd.MarkFlagsMutuallyExclusive(metaFlags...)
	_ = rootCmd.MarkFlagFilename(flagConfig, "toml")
	_ = rootCmd.RegisterFlagCompletionFunc(flagCompletion, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return shells, cobra.ShellCompDirectiveNoFileComp
	})

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if meta := changedMeta(cmd); meta != "" {
		if err := checkMetaExclusive(cmd, meta, args); err != nil {
			return err
		}
		return runMeta(cmd, meta, opts)
	}

	raw := types.RawArgs{
		WhereSearch: opts.whereSearch,
		Flags:       opts.flags,
	}
	if len(args) == 1 {
		raw.Positional = args[0]
		raw.HasPositional = true
	}

	inv, err := types.NewInvocation(raw)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{Path: opts.configPath})
	if err != nil {
		return err
	}

	plain := ui.FormatAuto.Resolve(stdout(cmd), opts.flags.NoColor) == ui.FormatText
	deps, err := core.Build(cfg, core.StdStreams(), plain)
	if err != nil {
		return err
	}

	log.Debug().Str("request", inv.Request.String()).Bool("plain", plain).Msg("Running pipeline")
	_, err = core.Run(cmd.Context(), inv, deps)
	return err
}

// changedMeta returns the meta flag the user passed, if any
func changedMeta(cmd *cobra.Command) string {
	for _, name := range metaFlags {
		if cmd.Flags().Changed(name) {
			return name
		}
	}
	return ""
}

// checkMetaExclusive rejects a meta flag paired with the positional or
// with any flag that shapes a normal run
func checkMetaExclusive(cmd *cobra.Command, meta string, args []string) error {
	if len(args) > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrMetaExclusive, meta)
	}

	var conflict string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name != meta && !metaCompanions[f.Name] && conflict == "" {
			conflict = f.Name
		}
	})
	if conflict != "" {
		return errors.Newf(errors.ErrInvalidInput, MsgErrMetaExclusive, meta).
			WithDetail("conflict", conflict)
	}
	return nil
}
