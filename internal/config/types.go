package config

import "path/filepath"

// Format configures the formatter stage. The formatter runs against
// the repository root and is expected to rewrite files in place.
type Format struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Argv returns the formatter invocation as an argument vector.
func (f Format) Argv() []string {
	return append([]string{f.Command}, f.Args...)
}

// Build configures the build stage. By default it compiles the named
// example with the Go toolchain; Command and Args replace the whole
// invocation when set, which keeps the artifact path unchanged.
type Build struct {
	Example   string   `yaml:"example"`
	OutputDir string   `yaml:"output_dir"`
	Release   bool     `yaml:"release"`
	Command   string   `yaml:"command,omitempty"`
	Args      []string `yaml:"args,omitempty"`
}

// Artifact returns the path of the binary the build produces.
func (b Build) Artifact() string {
	return filepath.Join(b.OutputDir, b.Example)
}

// Argv returns the build invocation as an argument vector.
func (b Build) Argv() []string {
	if b.Command != "" {
		return append([]string{b.Command}, b.Args...)
	}
	argv := []string{"go", "build"}
	if b.Release {
		argv = append(argv, "-trimpath", "-ldflags", "-s -w")
	}
	return append(argv, "-o", b.Artifact(), "./examples/"+b.Example)
}

// Gate configures the readiness gate shown between building and
// launching. The prompt may contain one %s, replaced by the artifact
// path.
type Gate struct {
	Prompt string `yaml:"prompt"`
}

// Launch configures the launch stage: the file handed to the artifact
// as its only argument, and the file its stderr is captured to.
type Launch struct {
	Target string `yaml:"target"`
	Log    string `yaml:"log"`
}

// Config represents the .devloop.yaml file. Keys omitted from the
// file keep their default values.
type Config struct {
	Format Format `yaml:"format"`
	Build  Build  `yaml:"build"`
	Gate   Gate   `yaml:"gate"`
	Launch Launch `yaml:"launch"`
}
