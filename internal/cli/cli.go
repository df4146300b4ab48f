// Package cli processes command-line arguments into an app configuration.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/provgraphgo/internal/app"
	"github.com/vk/provgraphgo/internal/record"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("provgraphgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ProvGraphGo - builds and inspects materials provenance graphs.

Usage:
  provgraphgo [options] [DIR_PATH]

Arguments:
  DIR_PATH
    Directory containing serialized provenance record files.

Options:
`)
		flagSet.PrintDefaults()
	}

	dirFlag := flagSet.String("dir", "", "Directory containing record files.")
	dFlag := flagSet.String("d", "", "Directory containing record files (shorthand).")
	scopeFlag := flagSet.String("scope", "run", "Record variant to graph. Options: 'spec', 'run' or 'template'.")
	namespaceFlag := flagSet.String("namespace", "auto", "Identifier namespace to key nodes by.")
	outputFlag := flagSet.String("output", "", "Directory for the dot/svg artifacts. Defaults to the input directory.")
	globFlag := flagSet.String("glob", "", "Glob pattern filtering record files, relative to the input directory.")

	identifierFlag := flagSet.String("identifier", "", "Anchor identifier for subgraph extraction.")
	ancestorsFlag := flagSet.Bool("ancestors", false, "Include the anchor's ancestors in the extracted subgraph.")
	descendantsFlag := flagSet.Bool("descendants", false, "Include the anchor's descendants in the extracted subgraph.")

	attributesFlag := flagSet.Bool("add-attributes", false, "Attach parameters, properties and conditions to the graph.")
	fileLinksFlag := flagSet.Bool("add-file-links", false, "Attach file links to the graph.")
	tagsFlag := flagSet.Bool("add-tags", false, "Attach tags to the graph.")
	separateFlag := flagSet.Bool("separate-nodes", false, "Place attribute values as separate nodes instead of node attributes.")
	strictFlag := flagSet.Bool("strict", false, "Fail on unrecognized attribute value types instead of skipping them.")

	viewsFlag := flagSet.String("views", "", "Path to an HCL view profile file to run after the build.")
	notebookFlag := flagSet.Bool("launch-notebook", false, "Launch the interactive notebook on the built graph.")
	notebookDirFlag := flagSet.String("notebook-dir", "", "Directory the notebook process is pointed at. Defaults to the output directory.")
	watchFlag := flagSet.Bool("watch", false, "Watch the input directory and rebuild on every new file.")
	watchOutputFlag := flagSet.String("watch-output", "live_graph_output", "Output directory for watch-mode artifacts.")

	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *dirFlag != "" {
		path = *dirFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if _, ok := record.ParseScope(*scopeFlag); !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid scope: must be 'spec', 'run' or 'template'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if (*ancestorsFlag || *descendantsFlag) && *identifierFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "ancestors/descendants require an identifier"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DirPath:        path,
		OutputPath:     *outputFlag,
		Scope:          strings.ToLower(*scopeFlag),
		Namespace:      *namespaceFlag,
		Glob:           *globFlag,
		Identifier:     *identifierFlag,
		Ancestors:      *ancestorsFlag,
		Descendants:    *descendantsFlag,
		AddAttributes:  *attributesFlag,
		AddFileLinks:   *fileLinksFlag,
		AddTags:        *tagsFlag,
		SeparateNodes:  *separateFlag,
		Strict:         *strictFlag,
		ViewsPath:      *viewsFlag,
		LaunchNotebook: *notebookFlag,
		NotebookDir:    *notebookDirFlag,
		Watch:          *watchFlag,
		WatchOutput:    *watchOutputFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
