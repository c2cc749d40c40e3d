package packlist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/config"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/export"
	"github.com/arthur-debert/packlist/pkg/render"
	"github.com/arthur-debert/packlist/pkg/wizard"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// overrides maps flag values onto dotted config keys. Empty strings are
// flags the user did not set.
type overrides map[string]interface{}

func (o overrides) set() map[string]interface{} {
	out := make(map[string]interface{}, len(o))
	for k, v := range o {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// appEnv is what every command runs against
type appEnv struct {
	cfg *config.Config
	cat *catalog.Catalog
}

func loadEnv(cmd *cobra.Command, ov overrides) (*appEnv, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, err := config.LoadWithOverrides(configPath, ov.set())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(afero.NewOsFs(), cfg.Catalog.Path)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadCatalog, err)
	}

	log.Debug().
		Str("catalog", cat.Version).
		Int("items", cat.ItemCount()).
		Msg("Environment loaded")
	return &appEnv{cfg: cfg, cat: cat}, nil
}

type generateOptions struct {
	disciplines []string
	extras      []string
	checked     []string
	format      string
	output      string
	exportDir   string
	open        bool
}

// buildChecklist drives a wizard through its steps with the given
// selection, so the command line obeys the same rules as the wizard
func buildChecklist(cat *catalog.Catalog, opts generateOptions) (*checklist.Checklist, error) {
	if err := cat.CheckTags(opts.disciplines, opts.extras); err != nil {
		return nil, err
	}

	wiz := wizard.New(cat)
	for _, id := range opts.disciplines {
		if !wiz.State().HasDiscipline(id) {
			if _, err := wiz.ToggleDiscipline(id); err != nil {
				return nil, err
			}
		}
	}
	if err := wiz.Advance(); err != nil {
		return nil, err
	}
	for _, id := range opts.extras {
		if !wiz.State().HasExtra(id) {
			if _, err := wiz.ToggleExtra(id); err != nil {
				return nil, err
			}
		}
	}
	if err := wiz.Advance(); err != nil {
		return nil, err
	}
	for _, id := range opts.checked {
		if wiz.State().IsChecked(id) {
			continue
		}
		if _, err := wiz.ToggleItem(id); err != nil {
			return nil, err
		}
	}

	return wiz.Checklist(now())
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	env, err := loadEnv(cmd, overrides{"export.dir": opts.exportDir})
	if err != nil {
		return err
	}

	cl, err := buildChecklist(env.cat, opts)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	toStdout := opts.output == "" || opts.output == "-"
	// auto always prints, only an explicit format saves a download
	download := opts.output == "" && isDownload(format)
	if format == render.FormatAuto {
		format = render.FormatText
		if f, ok := cmd.OutOrStdout().(*os.File); ok && toStdout {
			format = render.DetectFormat(f)
		}
	}

	exOpts, err := export.OptionsFromConfig(env.cfg)
	if err != nil {
		return err
	}
	var opener export.Opener
	if opts.open {
		opener = export.SystemOpener
	}
	exporter := export.New(afero.NewOsFs(), exOpts, opener)
	out := cmd.OutOrStdout()

	switch {
	case format == render.FormatEmail:
		res, err := exporter.Email(cl)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, MsgEmailLink, res.URI)
		return nil

	case download:
		res, err := exporter.Export(format, cl)
		if err != nil {
			return err
		}
		reportFallback(cmd.ErrOrStderr(), res.Notice)
		pterm.Success.WithWriter(out).Printf(MsgSaved, res.Format, res.Path)
		return nil
	}

	art, err := exporter.Render(format, cl)
	if err != nil {
		return err
	}
	reportFallback(cmd.ErrOrStderr(), art.Notice)

	if toStdout {
		_, err = out.Write(art.Data)
		return err
	}
	return writeOutput(afero.NewOsFs(), opts.output, art.Data)
}

func isDownload(format render.Format) bool {
	switch format {
	case render.FormatText, render.FormatPDF, render.FormatHTML:
		return true
	default:
		return false
	}
}

func reportFallback(w io.Writer, notice string) {
	if notice == "" {
		return
	}
	pterm.Warning.WithWriter(w).Println(notice)
}

func writeOutput(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir).WithDetail("path", dir)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail("path", path)
	}
	return nil
}
