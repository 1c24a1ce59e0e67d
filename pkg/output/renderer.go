package output

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/here/pkg/errors"
	"github.com/arthur-debert/here/pkg/logging"
	"github.com/arthur-debert/here/pkg/output/styles"
	"github.com/arthur-debert/here/pkg/types"
)

// Renderer writes echo output to one stream and diagnostics to another
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	plain  bool

	outRenderer *lipgloss.Renderer
	errRenderer *lipgloss.Renderer
}

// NewRenderer creates a Renderer. When plain is set, nothing it prints
// carries escape sequences.
func NewRenderer(out, errOut io.Writer, plain bool) *Renderer {
	log := logging.GetLogger("output.Renderer")

	r := &Renderer{
		out:         out,
		errOut:      errOut,
		plain:       plain,
		outRenderer: lipgloss.NewRenderer(out),
		errRenderer: lipgloss.NewRenderer(errOut),
	}

	log.Debug().
		Bool("plain", plain).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("TERM", os.Getenv("TERM")).
		Str("colorProfile", fmt.Sprintf("%v", r.outRenderer.ColorProfile())).
		Msg("Creating renderer with color settings")

	return r
}

// SetColorProfile overrides terminal detection on both streams
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.outRenderer.SetColorProfile(p)
	r.errRenderer.SetColorProfile(p)
}

// Echo prints the display string on its own line
func (r *Renderer) Echo(display string) error {
	text := display
	if !r.plain {
		text = styles.GetStyleFor(r.outRenderer, styles.Accent).
			TabWidth(lipgloss.NoTabConversion).
			Render(display)
	}

	_, err := fmt.Fprintln(r.out, text)
	return err
}

// Warning reports a non-fatal problem found while transforming, naming the
// path it concerns
func (r *Renderer) Warning(w types.Warning) {
	if w.Path == "" {
		r.warn(w.Message)
		return
	}
	r.warn(fmt.Sprintf("%s: %s", w.Message, w.Path))
}

// SinkWarning reports a sink that failed without ending the invocation
func (r *Renderer) SinkWarning(err error) {
	r.warn(Message(err))
}

func (r *Renderer) warn(message string) {
	if r.plain {
		_, _ = fmt.Fprintf(r.errOut, "Warning: %s\n", message)
		return
	}
	_, _ = fmt.Fprintln(r.errOut, pterm.Warning.Sprint(message))
}

// RenderError prints a fatal error. Aborts are reported without the
// error prefix since the user asked for them.
func (r *Renderer) RenderError(err error) {
	if err == nil {
		return
	}

	message := Message(err)
	if errors.IsAbort(err) {
		if !r.plain {
			message = styles.GetStyleFor(r.errRenderer, styles.Muted).Render(message)
		}
		_, _ = fmt.Fprintln(r.errOut, message)
		return
	}

	if r.plain {
		_, _ = fmt.Fprintf(r.errOut, "Error: %s\n", message)
		return
	}
	prefix := styles.GetStyleFor(r.errRenderer, styles.Error).Render("Error:")
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", prefix, message)
}

// Message renders err for people rather than for logs: coded errors drop
// their code and keep their cause.
func Message(err error) string {
	var hereErr *errors.HereError
	if !stderrors.As(err, &hereErr) {
		return err.Error()
	}
	if hereErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", hereErr.Message, hereErr.Wrapped)
	}
	return hereErr.Message
}
