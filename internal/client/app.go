package client

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-selfie/internal/imaging"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/utils"
	"github.com/MKhiriev/go-secret-selfie/models"
)

// App runs CLI commands and prints their results to Out.
type App struct {
	backend Backend

	Out io.Writer

	copyToClipboard func(string) error
	now             func() time.Time

	logger *logger.Logger
}

func NewApp(backend Backend, out io.Writer, logger *logger.Logger) *App {
	return &App{
		backend:         backend,
		Out:             out,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
		logger:          logger,
	}
}

// HideOptions are the inputs of [App.Hide].
type HideOptions struct {
	Input   string
	Output  string
	Message string
	// Passcode is used as is; empty asks the backend to generate one.
	Passcode string
	Stamp    bool
	Publish  bool
	Copy     bool
}

// Passcode prints a fresh passcode and optionally copies it.
func (a *App) Passcode(ctx context.Context, copyCode bool) error {
	ctx = a.traced(ctx)

	code, err := a.backend.GeneratePasscode(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, code)
	if copyCode {
		a.copy(code)
	}
	return nil
}

func (a *App) Hide(ctx context.Context, opts HideOptions) error {
	ctx = a.traced(ctx)

	if strings.TrimSpace(opts.Message) == "" {
		return ErrEmptyMessage
	}

	format, err := imaging.FormatFromPath(opts.Output)
	if err != nil {
		return err
	}
	if !format.Lossless() {
		return ErrLossyOutput
	}

	img, err := readImage(opts.Input)
	if err != nil {
		return err
	}

	req := models.HideRequest{
		Image:   img,
		Message: opts.Message,
		Mode:    models.GenerateNew{},
	}
	if opts.Passcode != "" {
		req.Mode = models.UseExisting{Passcode: opts.Passcode}
	}
	if opts.Stamp {
		req.TakenAt = a.now()
	}

	var (
		result models.HideResult
		entry  models.GalleryEntry
	)
	if opts.Publish {
		result, entry, err = a.backend.HideAndPublish(ctx, req)
	} else {
		result, err = a.backend.Hide(ctx, req)
	}
	if err != nil {
		return err
	}

	if err = writeImage(opts.Output, result.Image, format); err != nil {
		return err
	}

	a.logger.Info().
		Str("output", opts.Output).
		Int("payload_bits", result.PayloadBits).
		Int("capacity_bits", result.CapacityBits).
		Msg("message hidden")

	fmt.Fprintf(a.Out, "Wrote %s (%d of %d bits used)\n", opts.Output, result.PayloadBits, result.CapacityBits)
	if result.Passcode != "" {
		fmt.Fprintf(a.Out, "Passcode: %s\n", result.Passcode)
		if opts.Copy {
			a.copy(result.Passcode)
		}
	}
	if entry.DownloadToken != "" {
		fmt.Fprintf(a.Out, "Download token: %s\n", entry.DownloadToken)
		if !entry.ExpiresAt.IsZero() {
			fmt.Fprintf(a.Out, "Expires: %s\n", entry.ExpiresAt.Local().Format(time.RFC1123))
		}
	}
	return nil
}

func (a *App) Reveal(ctx context.Context, input, passcode string) error {
	ctx = a.traced(ctx)

	img, err := readImage(input)
	if err != nil {
		return err
	}

	result, err := a.backend.Reveal(ctx, models.RevealRequest{Image: img, Passcode: passcode})
	if err != nil {
		return err
	}

	if !result.Note.TakenAt.IsZero() {
		fmt.Fprintf(a.Out, "Taken: %s\n", result.Note.TakenAt.Format(time.DateTime))
	}
	fmt.Fprintln(a.Out, result.Note.Message)
	return nil
}

func (a *App) Capacity(ctx context.Context, input string) error {
	ctx = a.traced(ctx)

	img, err := readImage(input)
	if err != nil {
		return err
	}

	report, err := a.backend.Capacity(ctx, img)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Size:        %dx%d\n", report.Width, report.Height)
	fmt.Fprintf(a.Out, "Capacity:    %d bits\n", report.CapacityBits)
	fmt.Fprintf(a.Out, "Max token:   %d bytes\n", report.MaxTokenBytes)
	fmt.Fprintf(a.Out, "Max message: %d bytes (%d with --stamp)\n", report.MaxMessageBytes, report.MaxStampedMessageBytes)
	return nil
}

// Fetch downloads a published image to output, converting it when output
// names another lossless format.
func (a *App) Fetch(ctx context.Context, token, output string) error {
	ctx = a.traced(ctx)

	format, err := imaging.FormatFromPath(output)
	if err != nil {
		return err
	}
	if !format.Lossless() {
		return ErrLossyOutput
	}

	data, err := a.backend.Fetch(ctx, token)
	if err != nil {
		return err
	}

	if format == imaging.PNG {
		err = os.WriteFile(output, data, 0o600)
	} else {
		var img image.Image
		if img, _, err = imaging.Decode(bytes.NewReader(data)); err == nil {
			err = writeImage(output, img, format)
		}
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Fprintf(a.Out, "Wrote %s\n", output)
	return nil
}

func (a *App) Version(ctx context.Context, build models.AppBuildInfo) error {
	ctx = a.traced(ctx)

	fmt.Fprintf(a.Out, "Client version: %s\n", orNA(build.BuildVersion()))
	fmt.Fprintf(a.Out, "Build date: %s\n", orNA(build.BuildDate()))
	fmt.Fprintf(a.Out, "Build commit: %s\n", orNA(build.BuildCommit()))

	v, err := a.backend.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Backend version: %s\n", orNA(v))
	return nil
}

// traced tags ctx with a fresh trace ID so that one command can be followed
// through client and server logs.
func (a *App) traced(ctx context.Context) context.Context {
	traceID := uuid.NewString()
	l := a.logger.With().Str("trace_id", traceID).Logger()
	return utils.WithTraceID(l.WithContext(ctx), traceID)
}

func (a *App) copy(text string) {
	if err := a.copyToClipboard(text); err != nil {
		a.logger.Warn().Err(err).Msg("clipboard unavailable")
		fmt.Fprintln(a.Out, "(could not copy to clipboard)")
		return
	}
	fmt.Fprintln(a.Out, "(copied to clipboard)")
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

func writeImage(path string, img image.Image, format imaging.Format) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if err = imaging.Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
