package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zbeacon/internal/cli"
	"github.com/zarlcorp/zbeacon/internal/config"
	"github.com/zarlcorp/zbeacon/internal/identity"
	"github.com/zarlcorp/zbeacon/internal/logging"
	"github.com/zarlcorp/zbeacon/internal/nickname"
	"github.com/zarlcorp/zbeacon/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = `usage: zbeacon [command]

With no command, zbeacon starts the interactive interface.

commands:
  version
  names <first> [middle] <last>
  usernames <first> [middle] <last>
  emails <first> [middle] <last> [--domain d]...
  nicknames <name>
  locate <first> [middle] <last> [--domain d]... [--linkedin u]
         [--angellist u] [--twitter u] [--save] [--json]
  list [--json]
  forget <id>
`

func main() {
	app := zapp.New(zapp.WithName("zbeacon"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	err := run(ctx, os.Args[1:])
	if closeErr := app.Close(); closeErr != nil {
		slog.Error("shutdown", "err", closeErr)
		if err == nil {
			err = closeErr
		}
	}

	switch {
	case err == nil:
		return
	case cli.IsUsage(err):
		fmt.Fprintf(os.Stderr, "zbeacon: %v\n\n%s", err, usage)
		cancel()
		os.Exit(2)
	default:
		slog.Error("zbeacon", "err", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string) error {
	if len(argv) > 0 && argv[0] == "version" {
		fmt.Printf("zbeacon %s\n", version)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}

	if len(argv) == 0 {
		return runTUI(ctx, cfg.DataDir, gen)
	}
	return runCLI(os.Stdout, cfg.DataDir, gen, argv[0], argv[1:])
}

func newGenerator(cfg config.Config, logger *slog.Logger) (*identity.Generator, error) {
	nicknames, err := loadNicknames(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("nicknames loaded", "names", nicknames.Len(), "file", cfg.NicknamesFile)

	opts := []identity.Option{identity.WithLogger(logger)}
	if len(cfg.EmailServices) > 0 {
		opts = append(opts, identity.WithServices(cfg.EmailServices))
	}
	return identity.New(nicknames, opts...), nil
}

func loadNicknames(cfg config.Config) (*nickname.Store, error) {
	weight := nickname.WithMinWeight(cfg.MinNicknameWeight)
	if cfg.NicknamesFile == "" {
		return nickname.Default(weight)
	}

	fsys := zfilesystem.NewOSFileSystem(filepath.Dir(cfg.NicknamesFile))
	return nickname.LoadFile(fsys, filepath.Base(cfg.NicknamesFile), weight)
}

func runCLI(w io.Writer, dataDir string, gen *identity.Generator, cmd string, argv []string) error {
	open := cli.StoreOpener(dataDir)

	switch cmd {
	case "names":
		return cli.CmdNames(w, gen, argv)
	case "usernames":
		return cli.CmdUsernames(w, gen, argv)
	case "emails":
		return cli.CmdEmails(w, gen, argv)
	case "nicknames":
		return cli.CmdNicknames(w, gen, argv)
	case "locate":
		return cli.CmdLocate(w, gen, open, argv)
	case "list":
		return cli.CmdList(w, open, argv)
	case "forget":
		return cli.CmdForget(w, open, argv)
	case "help", "-h", "--help":
		fmt.Fprint(w, usage)
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, cmd)
}

func runTUI(ctx context.Context, dataDir string, gen *identity.Generator) error {
	m := tui.New(version, dataDir, gen, cli.IsFirstRun(dataDir))
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
