package packlist

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build the packing checklist for a competition"
	MsgGenerateShort   = "Generate a checklist for the given disciplines and extras"
	MsgCatalogShort    = "List the disciplines, extras and items of the catalog"
	MsgWizardShort     = "Run the interactive checklist wizard"
	MsgServeShort      = "Serve the checklist wizard over HTTP"
	MsgConfigShort     = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSaved          = "Saved %s checklist to %s\n"
	MsgEmailLink      = "%s\n"
	MsgServing        = "Serving the checklist wizard on http://%s\n"
	MsgWatching       = "Watching %s for changes\n"
	MsgVersionFormat  = "packlist %s (commit %s, built %s)\n"
	MsgCatalogVersion = "Catalog version %s\n"
	MsgDisciplines    = "Disciplines"
	MsgExtras         = "Extras"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrLoadCatalog = "failed to load catalog: %w"
	MsgErrNoCommand   = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to the config file (default: $XDG_CONFIG_HOME/packlist/config.toml)"
	MsgFlagDiscipline = "Discipline to pack for, repeat or comma separate for several"
	MsgFlagExtra      = "Extra to pack for, repeat or comma separate for several"
	MsgFlagChecked    = "Item id to start ticked"
	MsgFlagFormat     = "Output format (auto, text, term, json, pdf, print, email)"
	MsgFlagOutput     = "Write to this file instead of the default location, - for stdout"
	MsgFlagOpen       = "Open the printable page or email link once created"
	MsgFlagExportDir  = "Directory exported checklists are saved to"
	MsgFlagAddr       = "Address to listen on"
	MsgFlagNoWatch    = "Do not reload the catalog file when it changes"
	MsgFlagJSON       = "Print the catalog as JSON"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/catalog-long.txt
	msgCatalogLongRaw string
	MsgCatalogLong    = strings.TrimSpace(msgCatalogLongRaw)

	//go:embed msgs/wizard-long.txt
	msgWizardLongRaw string
	MsgWizardLong    = strings.TrimSpace(msgWizardLongRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
