package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/otec/pkg/config"
	"github.com/dmitrymomot/otec/pkg/environment"
	"github.com/dmitrymomot/otec/pkg/i18n"
	"github.com/dmitrymomot/otec/pkg/logger"
)

const serviceName = "otec"

// app carries what every subcommand needs. It is filled in PersistentPreRunE.
type app struct {
	cfg    config.App
	log    *slog.Logger
	tr     *i18n.Translator
	lang   string
	output string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Back-office toolbox for Chilean training providers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language (es|en), defaults to OTEC_LANG")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputTable, "output format (table|json|yaml)")

	root.AddCommand(
		newRUTCmd(a),
		newSearchCmd(a),
		newGlobalCmd(a),
		newImportCmd(a),
		newSeedCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.lang == "" {
		a.lang = cfg.Lang
	}
	switch a.output {
	case outputTable, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, a.output)
	}

	env := cfg.Environment()
	a.log = logger.New(
		logger.WithEnvironment(env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)
	cmd.SetContext(environment.WithContext(cmd.Context(), env))

	tr, err := i18n.Default(cmd.Context(), i18n.WithLogger(a.log), i18n.WithMissingTranslationsLogging(true))
	if err != nil {
		return err
	}
	if !tr.Supports(a.lang) {
		return fmt.Errorf("%w: %q", errUnknownLanguage, a.lang)
	}
	a.tr = tr

	a.log.DebugContext(cmd.Context(), "command started", logger.Command(cmd.CommandPath()), slog.String("lang", a.lang))
	return nil
}

func (a *app) t(key string, args ...string) string {
	return a.tr.T(a.lang, key, args...)
}

func (a *app) stdout(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
