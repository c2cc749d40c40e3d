package packlist

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/arthur-debert/packlist/internal/version"
	"github.com/arthur-debert/packlist/internal/web"
	"github.com/arthur-debert/packlist/pkg/cobrax/topics"
	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/config"
	"github.com/arthur-debert/packlist/pkg/export"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/tui"
	"github.com/arthur-debert/packlist/pkg/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "packlist",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The wizard owns the terminal, its logs go to the log file only
			if cmd.Name() == "wizard" {
				logging.SetupFileLogger(verbosity)
			} else {
				logging.SetupLogger(verbosity)
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newWizardCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, "packlist help catalog-file"
	renderer := topics.NewGlamourRenderer()
	if !isTerminal() {
		renderer.Style = "notty"
	}
	if tm, err := topics.Load(topicsFS, "topics", topics.Options{Renderer: renderer}); err == nil {
		tm.Install(rootCmd)
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.disciplines, "discipline", "d", nil, MsgFlagDiscipline)
	cmd.Flags().StringSliceVarP(&opts.extras, "extra", "e", nil, MsgFlagExtra)
	cmd.Flags().StringSliceVarP(&opts.checked, "checked", "c", nil, MsgFlagChecked)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&opts.exportDir, "export-dir", "", MsgFlagExportDir)
	cmd.Flags().BoolVar(&opts.open, "open", false, MsgFlagOpen)

	_ = cmd.RegisterFlagCompletionFunc("discipline", tagCompletion(func(c *catalog.Catalog) []catalog.Tag { return c.Disciplines }))
	_ = cmd.RegisterFlagCompletionFunc("extra", tagCompletion(func(c *catalog.Catalog) []catalog.Tag { return c.Extras }))
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "term", "json", "pdf", "print", "email"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newWizardCmd() *cobra.Command {
	var exportDir string

	cmd := &cobra.Command{
		Use:     "wizard",
		Short:   MsgWizardShort,
		Long:    MsgWizardLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, overrides{"export.dir": exportDir})
			if err != nil {
				return err
			}
			exOpts, err := export.OptionsFromConfig(env.cfg)
			if err != nil {
				return err
			}
			exporter := export.New(afero.NewOsFs(), exOpts, export.SystemOpener)

			return tui.Run(wizard.New(env.cat), exporter, tea.WithAltScreen())
		},
	}

	cmd.Flags().StringVar(&exportDir, "export-dir", "", MsgFlagExportDir)
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		addr    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := overrides{"server.addr": addr}
			if noWatch {
				ov["server.watch_catalog"] = false
			}
			env, err := loadEnv(cmd, ov)
			if err != nil {
				return err
			}
			exOpts, err := export.OptionsFromConfig(env.cfg)
			if err != nil {
				return err
			}

			store := web.NewCatalogStore(env.cat)
			srv, err := web.NewServer(store, web.Options{Export: exOpts, Title: env.cfg.PDF.Title})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if env.cfg.Catalog.Path != "" && env.cfg.Server.WatchCatalog {
				watcher, err := web.NewCatalogWatcher(store, afero.NewOsFs(), env.cfg.Catalog.Path)
				if err != nil {
					return err
				}
				go watcher.Run(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), MsgWatching, env.cfg.Catalog.Path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgServing, env.cfg.Server.Addr)
			return srv.Run(ctx, env.cfg.Server.Addr, env.cfg.Server.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, MsgFlagNoWatch)
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   MsgCatalogShort,
		Long:    MsgCatalogLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(env.cat.Listing())
			}
			return printCatalog(cmd, env.cat)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// tagCompletion completes discipline and extra ids from the active catalog
func tagCompletion(vocab func(*catalog.Catalog) []catalog.Tag) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := loadEnv(cmd, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, tag := range vocab(env.cat) {
			if strings.HasPrefix(tag.ID, toComplete) {
				out = append(out, tag.ID+"\t"+tag.Label)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func printCatalog(cmd *cobra.Command, cat *catalog.Catalog) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, MsgCatalogVersion, cat.Version)

	tags := pterm.TableData{{"Kind", "ID", "Label"}}
	for _, t := range cat.Disciplines {
		tags = append(tags, []string{MsgDisciplines, t.ID, t.Label})
	}
	for _, t := range cat.Extras {
		tags = append(tags, []string{MsgExtras, t.ID, t.Label})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tags).WithWriter(out).Render(); err != nil {
		return err
	}

	for _, section := range cat.Sections {
		fmt.Fprintf(out, "\n%s\n", formatBoldUpper(section.Title))
		rows := pterm.TableData{{"ID", "Item", "Required", "Packed when"}}
		for _, item := range section.Items {
			required := ""
			if item.Required {
				required = "yes"
			}
			rows = append(rows, []string{item.ID, item.Name, required, item.Rule.String()})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).WithWriter(out).Render(); err != nil {
			return err
		}
	}
	return nil
}

// now is the clock used for generation dates
var now = time.Now
