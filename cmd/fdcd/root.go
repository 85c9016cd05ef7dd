package main

import (
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orivej/fchdir/filename"
)

const (
	envPrefix        = "FDCD"
	configFlagName   = "config"
	logLevelDefault  = "warn"
	logLevelFlagName = "log-level"
	syntaxFlagName   = "syntax"
)

var syntaxes = map[string]filename.Syntax{
	"native":  filename.Native,
	"posix":   filename.POSIX,
	"windows": filename.Windows,
	"cygwin":  filename.Cygwin,
}

type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	syntax filename.Syntax
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		log:    zerolog.Nop(),
		syntax: filename.Native,
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:               "fdcd",
		Short:             "Change directories through descriptors and split file names",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.String(configFlagName, "", "config file (yaml, json or toml)")
	flags.String(logLevelFlagName, logLevelDefault, "log level (trace, debug, info, warn, error)")
	flags.String(syntaxFlagName, "native", "file name syntax (native, posix, windows, cygwin)")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.dirnameCommand(),
		a.basenameCommand(),
		a.concatCommand(),
		a.visitCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if name := a.v.GetString(configFlagName); name != "" {
		a.v.SetConfigFile(name)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidConfig, "reading config %s", name)
		}
	}

	level, err := zerolog.ParseLevel(a.v.GetString(logLevelFlagName))
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidConfig, "the flag --%s can only be set to one of trace, debug, info, warn and error", logLevelFlagName)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).With().Timestamp().Logger()

	a.syntax, err = parseSyntax(a.v.GetString(syntaxFlagName))
	return err
}

func parseSyntax(s string) (filename.Syntax, error) {
	sx, ok := syntaxes[strings.ToLower(s)]
	if !ok {
		return filename.Syntax{}, errors.Newf(errors.CodeInvalidConfig, "unknown file name syntax %q", s)
	}
	return sx, nil
}
