package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DirPath    string // record files
	OutputPath string // dot/svg artifacts; empty means DirPath

	Scope     string // spec, run or template
	Namespace string // tracked identifier namespace
	Glob      string // optional record-file filter

	Identifier  string // anchor for subgraph extraction
	Ancestors   bool
	Descendants bool

	AddAttributes bool
	AddFileLinks  bool
	AddTags       bool
	SeparateNodes bool
	Strict        bool

	ViewsPath      string // optional HCL view profile file
	LaunchNotebook bool
	NotebookDir    string // empty means the output directory

	Watch       bool
	WatchOutput string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DirPath == "" {
		return nil, errors.New("DirPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// outputDir resolves where artifacts are written.
func (c *Config) outputDir() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return c.DirPath
}

// notebookDir resolves where the notebook process is pointed.
func (c *Config) notebookDir() string {
	if c.NotebookDir != "" {
		return c.NotebookDir
	}
	return c.outputDir()
}
