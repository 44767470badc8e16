package cli

import (
	"github.com/oliverisaac/gcloudctx/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rootUsage = `gcloudctx                       list the contexts
  gcloudctx <NAME>                switch to context <NAME>
  gcloudctx -                     switch to the previous context
  gcloudctx -c, --current         show the current context name
  gcloudctx <NEW>=<OLD>           rename context <OLD> to <NEW>
  gcloudctx <NEW>=.               rename current context to <NEW>
  gcloudctx -f <NEW>=<OLD>        rename, deleting an existing <NEW> first (destructive)
  gcloudctx -d <NAME>             delete context <NAME> ('.' for current context)`

func NewRootCommand() *cobra.Command {
	var flags dispatchFlags
	var verbose bool
	var jsonOut bool

	root := &cobra.Command{
		Use:   "gcloudctx",
		Short: "Switch between gcloud configurations",
		Long: `Switch between gcloud configurations.

--force deletes the existing configuration record named <NEW> before renaming;
this cannot be undone. Deleting a context removes its configuration only, shared
credentials stay in place.`,
		Version:       app.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := parseInvocation(args, flags)
			if err != nil {
				_ = cmd.Usage()
				return app.WrapExit(app.ExitUserError, err)
			}

			log, err := newLogger(verbose)
			if err != nil {
				return app.WrapExit(app.ExitIOFailure, err)
			}
			defer func() { _ = log.Sync() }()

			cfg, err := app.LoadConfig()
			if err != nil {
				return app.WrapExit(app.ExitUserError, err)
			}
			engine, _, err := app.Open(cfg, log)
			if err != nil {
				return err
			}
			r := &runner{
				engine:  engine,
				printer: newPrinter(cmd.OutOrStdout(), cfg.Color),
				json:    jsonOut,
				log:     log,
			}
			return r.run(inv)
		},
	}
	root.SetUsageTemplate("Usage:\n  " + rootUsage + "\n\nFlags:\n{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return app.WrapExit(app.ExitUserError, err)
	})

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log store calls to stderr")
	root.Flags().BoolVarP(&flags.force, "force", "f", false, "With NEW=OLD, overwrite an existing NEW context (destructive)")
	root.Flags().BoolVarP(&flags.delete, "delete", "d", false, "Delete the named context")
	root.Flags().BoolVarP(&flags.current, "current", "c", false, "Print the current context name")
	root.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return root
}

type runner struct {
	engine  *app.Engine
	printer *printer
	json    bool
	log     *zap.Logger
}

func (r *runner) run(inv invocation) error {
	switch inv.action {
	case actionList:
		listing, err := r.engine.List()
		if err != nil {
			return err
		}
		if r.json {
			return printJSON(r.printer.out, listing)
		}
		r.printer.list(listing)
		return nil

	case actionCurrent:
		active, err := r.engine.Current()
		if err != nil {
			return err
		}
		if r.json {
			return printJSON(r.printer.out, map[string]string{"active": active})
		}
		_, err = r.printer.out.Write([]byte(active + "\n"))
		return err

	case actionSwitch, actionSwap:
		var state app.State
		var err error
		if inv.action == actionSwap {
			state, err = r.engine.Swap()
		} else {
			state, err = r.engine.Switch(inv.name)
		}
		if err != nil {
			return err
		}
		if r.json {
			return printJSON(r.printer.out, state)
		}
		r.printer.switched(state)
		return nil

	case actionRename:
		state, err := r.engine.Rename(inv.oldName, inv.newName, inv.force)
		if err != nil {
			return err
		}
		if r.json {
			return printJSON(r.printer.out, state)
		}
		r.printer.renamed(inv.oldName, state.Active)
		return nil

	case actionDelete:
		name, err := r.engine.Delete(inv.name)
		if err != nil {
			return err
		}
		if r.json {
			return printJSON(r.printer.out, map[string]string{"deleted": name})
		}
		r.printer.deleted(name)
		return nil
	}
	r.log.Error("unhandled action", zap.Int("action", int(inv.action)))
	return app.WrapExit(app.ExitUserError, newUsageError("unsupported invocation"))
}
