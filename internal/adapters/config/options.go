package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"go.trai.ch/tsrun/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LoadServiceOptions reads tsrun.yaml from dir. A missing file yields empty options.
func LoadServiceOptions(dir string) (*ServiceOptions, error) {
	path := filepath.Join(dir, domain.OptionsFileName)

	var opts ServiceOptions
	if err := readAndUnmarshalYAML(path, &opts); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ServiceOptions{}, nil
		}
		return nil, zerr.With(err, "path", path)
	}
	return &opts, nil
}

// Apply copies the file's settings onto opts. Flags applied afterwards take precedence.
func (o *ServiceOptions) Apply(opts *domain.TranspileOptions) {
	if o.TranspileOnly {
		opts.TypeCheck = false
	}
	if o.SkipProject {
		opts.SkipProject = true
	}
	if o.Project != "" {
		opts.ConfigFileName = o.Project
	}
	if len(o.CompilerOptions) > 0 {
		opts.CompilerOptions = opts.CompilerOptions.Merge(domain.NewCompilerSettings(o.CompilerOptions))
	}
	if len(o.IgnoreDiagnostics) > 0 {
		opts.IgnoreDiagnostics = append(opts.IgnoreDiagnostics, o.IgnoreDiagnostics...)
	}
	if o.Cache != nil && !*o.Cache {
		opts.NoCache = true
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrOptionsReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrOptionsParseFailed.Error())
	}

	return nil
}

// ParseCompilerOptions reads a JSON object of compiler option overrides, as given on the
// command line. Comments and trailing commas are accepted.
func ParseCompilerOptions(raw string) (domain.CompilerSettings, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.CompilerSettings{}, nil
	}
	standard, err := hujson.Standardize([]byte(raw))
	if err != nil {
		return domain.CompilerSettings{}, zerr.Wrap(err, domain.ErrInvalidCompilerOptions.Error())
	}
	var values map[string]any
	if err := json.Unmarshal(standard, &values); err != nil {
		return domain.CompilerSettings{}, zerr.Wrap(err, domain.ErrInvalidCompilerOptions.Error())
	}
	return domain.NewCompilerSettings(values), nil
}
