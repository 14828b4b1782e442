package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/MKhiriev/go-secret-selfie/internal/adapter"
	"github.com/MKhiriev/go-secret-selfie/internal/app"
	"github.com/MKhiriev/go-secret-selfie/internal/client"
	"github.com/MKhiriev/go-secret-selfie/internal/config"
	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/logger"
	"github.com/MKhiriev/go-secret-selfie/internal/service"
	"github.com/MKhiriev/go-secret-selfie/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type cli struct {
	Server  string        `help:"Address of a secret-selfie server. Without it everything runs locally." env:"SELFIE_SERVER"`
	Timeout time.Duration `help:"Request timeout when talking to a server." default:"30s" env:"SELFIE_TIMEOUT"`
	Salt    string        `help:"Key derivation salt for local mode. Must match the one used to hide." env:"SELFIE_SALT"`
	LogFile string        `help:"Write debug logs to this file." type:"path" env:"SELFIE_LOG_FILE"`

	Passcode passcodeCmd `cmd:"" help:"Generate a new passcode."`
	Hide     hideCmd     `cmd:"" help:"Hide a message in an image."`
	Reveal   revealCmd   `cmd:"" help:"Reveal the message hidden in an image."`
	Capacity capacityCmd `cmd:"" help:"Show how long a message an image can carry."`
	Fetch    fetchCmd    `cmd:"" help:"Download a published image from the server gallery."`
	Version  versionCmd  `cmd:"" help:"Print client and backend versions."`
}

func main() {
	var cli cli

	kctx := kong.Parse(&cli,
		kong.Name("selfie"),
		kong.Description("Hide encrypted messages in the pixels of your photos."),
	)

	log := logger.NewClientLogger("secret-selfie-client", cli.LogFile)

	selfie, err := cli.newApp(log)
	kctx.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = kctx.Run(&runContext{ctx: ctx, app: selfie}); err != nil {
		log.Error().Err(err).Str("command", kctx.Command()).Msg("command failed")
		kctx.Fatalf("%s", app.Message(err))
	}
}

// newApp picks the remote backend when --server is set and the in-process
// pipeline otherwise.
func (c *cli) newApp(log *logger.Logger) (*client.App, error) {
	if c.Server != "" {
		remote, err := adapter.NewHTTPServerAdapter(c.Server, c.Timeout, log)
		if err != nil {
			return nil, err
		}
		return client.NewApp(remote, os.Stdout, log), nil
	}

	cfg := config.App{Salt: c.Salt, Version: buildVersion}
	if cfg.Salt == "" {
		cfg.Salt = crypto.DefaultSalt
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	appInfo, err := service.NewAppInfoService(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return nil, err
	}

	return client.NewApp(client.NewLocalBackend(service.NewStegoService(cfg, log), appInfo), os.Stdout, log), nil
}

type runContext struct {
	ctx context.Context
	app *client.App
}

type passcodeCmd struct {
	Copy bool `help:"Copy the passcode to the clipboard."`
}

func (cmd *passcodeCmd) Run(rc *runContext) error {
	return rc.app.Passcode(rc.ctx, cmd.Copy)
}

type hideCmd struct {
	Input   string `arg:"" type:"existingfile" help:"The carrier image."`
	Output  string `arg:"" type:"path" help:"Where to write the stego image (.png, .bmp or .tiff)."`
	Message string `short:"m" required:"" help:"The secret message."`

	Passcode string `short:"p" help:"Seal under this passcode instead of generating one."`
	Stamp    bool   `help:"Seal the current date and time along with the message."`
	Publish  bool   `help:"Also publish the result to the server gallery."`
	Copy     bool   `help:"Copy a generated passcode to the clipboard."`
}

func (cmd *hideCmd) Run(rc *runContext) error {
	return rc.app.Hide(rc.ctx, client.HideOptions{
		Input:    cmd.Input,
		Output:   cmd.Output,
		Message:  cmd.Message,
		Passcode: cmd.Passcode,
		Stamp:    cmd.Stamp,
		Publish:  cmd.Publish,
		Copy:     cmd.Copy,
	})
}

type revealCmd struct {
	Input    string `arg:"" type:"existingfile" help:"The stego image."`
	Passcode string `short:"p" help:"The passcode. Prompted for when omitted."`
}

func (cmd *revealCmd) Run(rc *runContext) error {
	code := cmd.Passcode
	if code == "" {
		var err error
		if code, err = askPasscode("Passcode: "); err != nil {
			return err
		}
	}

	return rc.app.Reveal(rc.ctx, cmd.Input, code)
}

type capacityCmd struct {
	Input string `arg:"" type:"existingfile" help:"The carrier image."`
}

func (cmd *capacityCmd) Run(rc *runContext) error {
	return rc.app.Capacity(rc.ctx, cmd.Input)
}

type fetchCmd struct {
	Token  string `arg:"" help:"The download token printed by hide --publish."`
	Output string `arg:"" type:"path" help:"Where to write the image."`
}

func (cmd *fetchCmd) Run(rc *runContext) error {
	return rc.app.Fetch(rc.ctx, cmd.Token, cmd.Output)
}

type versionCmd struct{}

func (cmd *versionCmd) Run(rc *runContext) error {
	return rc.app.Version(rc.ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}

func askPasscode(prompt string) (string, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read passcode: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
