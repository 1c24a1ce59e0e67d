package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/here/pkg/config"
	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/output"
	"github.com/arthur-debert/here/pkg/ui"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// markdownWidth is the wrap column for rendered help
const markdownWidth = 100

func runMeta(cmd *cobra.Command, meta string, opts *options) error {
	w := cmd.OutOrStdout()
	switch meta {
	case flagCompletion:
		return GenerateCompletion(cmd.Root(), opts.completion, w)
	case flagMarkdown:
		return generateMarkdown(cmd.Root(), w, ui.IsTerminal(stdout(cmd)))
	case flagGenConfig:
		cfg, err := config.Load(config.LoadOptions{Path: opts.configPath})
		if err != nil {
			return err
		}
		content, err := config.Generate(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, content)
		return err
	}
	return errors.Newf(errors.ErrInternal, "unhandled meta flag %q", meta)
}

// GenerateCompletion writes the completion script for shell
func GenerateCompletion(root *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(w, true)
	case "zsh":
		err = root.GenZshCompletion(w)
	case "fish":
		err = root.GenFishCompletion(w, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", shell)
	}
	return nil
}

// generateMarkdown writes the help page as markdown, rendered for the
// terminal when w is one
func generateMarkdown(root *cobra.Command, w io.Writer, render bool) error {
	var buf bytes.Buffer
	if err := doc.GenMarkdown(root, &buf); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to generate markdown")
	}

	if !render {
		_, err := w.Write(buf.Bytes())
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create markdown renderer")
	}
	rendered, err := renderer.Render(buf.String())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render markdown")
	}
	_, err = io.WriteString(w, rendered)
	return err
}

// stdout returns the command's output as a file, or nil when it was
// redirected to something else
func stdout(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}

// ReportError prints err for the user on the command's error stream
func ReportError(cmd *cobra.Command, err error) {
	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	errOut := cmd.ErrOrStderr()

	plain := true
	if f, ok := errOut.(*os.File); ok {
		plain = ui.FormatAuto.Resolve(f, noColor) == ui.FormatText
	}

	output.NewRenderer(cmd.OutOrStdout(), errOut, plain).RenderError(err)
	// cobra's own parse errors carry no code
	if code := errors.GetErrorCode(err); code == errors.ErrInvalidInput || code == errors.ErrUnknown {
		_, _ = fmt.Fprintf(errOut, "Run '%s --help' for usage.\n", cmd.Root().Name())
	}
}
