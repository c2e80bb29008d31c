// Command goviet-imed is the D-Bus daemon that exposes the core engine to
// an Fcitx5 frontend. It owns every concern the engine itself must not:
// configuration file loading, structured logging, and the D-Bus transport.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nihmtaho/goviet-ime/internal/appconfig"
	"github.com/nihmtaho/goviet-ime/internal/encoding"
	"github.com/nihmtaho/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

var rootCmd = &cobra.Command{
	Use:   "goviet-imed",
	Short: "Vietnamese IME engine daemon",
}

func main() {
	rootCmd.AddCommand(serveCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var configPath, inputMethod, logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the D-Bus engine daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appconfig.Default()
			if configPath != "" {
				loaded, err := appconfig.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if inputMethod != "" {
				cfg.InputMethod = inputMethod
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&inputMethod, "input-method", "", "override input_method (Telex|VNI|Plain)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override log_level")
	return cmd
}

func runServe(cfg appconfig.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("requesting bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s already taken", serviceName)
	}

	engineCfg := buildEngineConfig(cfg)
	svc := newInputEngineService(engineCfg, cfg.Encoding, logger)

	if err := conn.Export(svc, dbus.ObjectPath(objectPath), serviceName); err != nil {
		return fmt.Errorf("exporting D-Bus object: %w", err)
	}

	logger.Info().
		Str("service", serviceName).
		Str("object_path", objectPath).
		Str("input_method", cfg.InputMethod).
		Str("encoding", cfg.Encoding).
		Msg("goviet-imed ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Info().Msg("shutting down")
	return nil
}

func buildEngineConfig(cfg appconfig.Config) *engine.EngineConfig {
	ec := engine.DefaultConfig()
	ec.InputMethodName = cfg.InputMethod
	ec.UseModernTonePlacement = cfg.UseModernTonePlacement
	ec.Enabled = cfg.Enabled
	ec.SmartMode = cfg.SmartMode
	ec.InstantRestore = cfg.InstantRestore
	ec.EscRestore = cfg.EscRestore
	ec.ShortcutsEnabled = cfg.ShortcutsEnabled
	ec.MaxHistorySize = cfg.MaxHistorySize
	switch cfg.ToneStrategy {
	case "modern":
		ec.ToneStrategy = engine.ToneModern
	case "traditional":
		ec.ToneStrategy = engine.ToneTraditional
	default:
		ec.ToneStrategy = engine.ToneAuto
	}
	ec.Normalize()
	return ec
}

// inputEngineService is the D-Bus object Fcitx5 talks to. It tracks the
// host-visible preedit string locally, deriving it from the engine's Diff
// stream, and encodes commit text per cfg.Encoding on the way out.
type inputEngineService struct {
	engine  *engine.CompositionEngine
	encoder encoding.Encoder
	logger  zerolog.Logger
	preedit []rune
}

func newInputEngineService(cfg *engine.EngineConfig, encodingName string, logger zerolog.Logger) *inputEngineService {
	return &inputEngineService{
		engine:  engine.NewCompositionEngine(cfg),
		encoder: encoding.ByName(encodingName),
		logger:  logger,
	}
}

// ProcessKey handles one key event from the Fcitx5 frontend. Returns
// (handled, commitText, preeditText).
func (s *inputEngineService) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	diff := s.engine.OnKey(engine.KeyEvent{KeySym: keysym, Modifiers: modifiers})

	if int(diff.Backspace) > len(s.preedit) {
		diff.Backspace = uint8(len(s.preedit))
	}
	s.preedit = s.preedit[:len(s.preedit)-int(diff.Backspace)]
	s.preedit = append(s.preedit, diff.Chars...)

	handled := diff.Action == engine.ActionSend
	var commitText string

	if isCommitKey(keysym) {
		commitText = string(s.encoder.Encode(s.preedit))
		s.preedit = nil
		handled = true
	}

	s.logger.Debug().
		Uint32("keysym", keysym).
		Uint32("modifiers", modifiers).
		Bool("handled", handled).
		Str("preedit", string(s.preedit)).
		Str("commit", commitText).
		Msg("key processed")

	return handled, commitText, string(s.preedit), nil
}

func isCommitKey(keysym uint32) bool {
	switch keysym {
	case engine.KeySpace, engine.KeyReturn, engine.KeyTab:
		return true
	}
	return false
}

// Reset clears the current composition state.
func (s *inputEngineService) Reset() *dbus.Error {
	s.engine.OnKey(engine.KeyEvent{KeySym: engine.KeyEscape})
	s.preedit = nil
	return nil
}

// GetPreedit returns the current preedit string.
func (s *inputEngineService) GetPreedit() (string, *dbus.Error) {
	return string(s.preedit), nil
}
