package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned when the host platform provides no context
var ErrUnavailable = errors.New("host context unavailable")

// Context describes the environment and user the console runs for
type Context struct {
	EnvironmentID string         `yaml:"environment_id" json:"environmentId"`
	UserID        string         `yaml:"user_id" json:"userId"`
	UserEmail     string         `yaml:"user_email" json:"userEmail"`
	UserRoles     []Role         `yaml:"user_roles" json:"userRoles"`
	AppConfig     map[string]any `yaml:"app_config" json:"appConfig,omitempty"`
}

// Role is a role the user holds in the environment
type Role struct {
	ID       string `yaml:"id" json:"id"`
	Codename string `yaml:"codename" json:"codename"`
}

// Provider supplies the host context
type Provider interface {
	Context(ctx context.Context) (Context, error)
}

/* FileProvider reads the host context from a YAML file
 * A missing file means the console is running outside the host
 */
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading path on every call
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Context loads and parses the file
func (p *FileProvider) Context(ctx context.Context) (Context, error) {
	if err := ctx.Err(); err != nil {
		return Context{}, err
	}
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Context{}, fmt.Errorf("reading host context %s: %w", p.path, ErrUnavailable)
	}
	if err != nil {
		return Context{}, fmt.Errorf("reading host context: %w", err)
	}

	var c Context
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Context{}, fmt.Errorf("parsing host context YAML: %w", err)
	}
	if c.EnvironmentID == "" {
		return Context{}, fmt.Errorf("host context has no environment_id: %w", ErrUnavailable)
	}
	return c, nil
}

// StaticProvider returns a fixed context, or ErrUnavailable when it is empty
type StaticProvider struct {
	C Context
}

func (p StaticProvider) Context(ctx context.Context) (Context, error) {
	if p.C.EnvironmentID == "" {
		return Context{}, ErrUnavailable
	}
	return p.C, nil
}
