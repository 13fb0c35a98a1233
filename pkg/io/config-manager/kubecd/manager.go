package configmanager

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/devantler-tech/kubecd/pkg/apis/kubecd/v1alpha1"
	configmanagerinterface "github.com/devantler-tech/kubecd/pkg/io/config-manager"
	"github.com/devantler-tech/kubecd/pkg/utils/envvar"
	"github.com/devantler-tech/kubecd/pkg/utils/notify"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigName is the base name of the environments file, without extension.
	ConfigName = "kubecd"
	// EnvPrefix prefixes environment variables that override settings.
	EnvPrefix = "KUBECD"
	// ConfigFileKey is the viper key (and flag name) holding an explicit config path.
	ConfigFileKey = "config"
	// UserConfigDir is the per-user search path.
	UserConfigDir = "$HOME/.kubecd"
)

// ErrConfigNotFound is returned when no environments file could be located.
var ErrConfigNotFound = errors.New("kubecd config file not found")

// ConfigManager loads v1alpha1.Config from the environments file.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *v1alpha1.Config
	Writer io.Writer

	fs           afero.Fs
	configLoaded bool
}

var _ configmanagerinterface.ConfigManager[v1alpha1.Config] = (*ConfigManager)(nil)

// Option customizes a ConfigManager.
type Option func(*ConfigManager)

// WithFs reads configuration from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(m *ConfigManager) {
		m.fs = fs
		m.Viper.SetFs(fs)
	}
}

// WithConfigFile reads configuration from path instead of searching for it.
func WithConfigFile(path string) Option {
	return func(m *ConfigManager) {
		m.Viper.Set(ConfigFileKey, path)
	}
}

// WithSearchPaths adds directories searched for kubecd.{yaml,yml,json}.
func WithSearchPaths(paths ...string) Option {
	return func(m *ConfigManager) {
		for _, path := range paths {
			m.Viper.AddConfigPath(path)
		}
	}
}

// NewConfigManager creates a ConfigManager that writes notifications to writer.
func NewConfigManager(writer io.Writer, opts ...Option) *ConfigManager {
	fs := afero.NewOsFs()

	manager := &ConfigManager{
		Viper:  InitializeViper(fs),
		Config: v1alpha1.NewConfig(),
		Writer: writer,
		fs:     fs,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// InitializeViper returns a viper instance reading from fs, searching the working
// directory and UserConfigDir, with KUBECD_ environment overrides.
func InitializeViper(fs afero.Fs) *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetFs(fs)
	viperInstance.SetConfigName(ConfigName)
	viperInstance.AddConfigPath(".")
	viperInstance.AddConfigPath(UserConfigDir)
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// BindFlags binds the --config flag of flags, if present.
func (m *ConfigManager) BindFlags(flags *pflag.FlagSet) error {
	flag := flags.Lookup(ConfigFileKey)
	if flag == nil {
		return nil
	}

	err := m.Viper.BindPFlag(ConfigFileKey, flag)
	if err != nil {
		return fmt.Errorf("bind --%s flag: %w", ConfigFileKey, err)
	}

	return nil
}

// Load reads, decodes and validates the environments file. Subsequent calls return
// the cached config.
func (m *ConfigManager) Load(opts configmanagerinterface.LoadOptions) (*v1alpha1.Config, error) {
	if m.configLoaded {
		logrus.Debug("config already loaded, reusing it")

		return m.Config, nil
	}

	if !opts.Silent {
		m.notify(notify.ActivityType, "loading kubecd config")
	}

	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	if !opts.Silent {
		m.notify(notify.ActivityType, "'%s' found", m.Viper.ConfigFileUsed())
	}

	err = m.unmarshal()
	if err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		err = m.Config.Validate()
		if err != nil {
			if !opts.Silent {
				m.notify(notify.ErrorType, "%s", err.Error())
			}

			return nil, fmt.Errorf("invalid config %q: %w", m.Viper.ConfigFileUsed(), err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"file":         m.Viper.ConfigFileUsed(),
		"clusters":     len(m.Config.Clusters),
		"environments": len(m.Config.Environments),
	}).Debug("config loaded")

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig() error {
	if path := m.Viper.GetString(ConfigFileKey); path != "" {
		exists, err := afero.Exists(m.fs, path)
		if err != nil {
			return fmt.Errorf("stat config file %q: %w", path, err)
		}

		if !exists {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		m.Viper.SetConfigFile(path)
	}

	err := m.Viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf(
				"%w: no %s.yaml in the working directory or %s",
				ErrConfigNotFound, ConfigName, UserConfigDir,
			)
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	logrus.WithField("file", m.Viper.ConfigFileUsed()).Debug("read config file")

	return nil
}

func (m *ConfigManager) unmarshal() error {
	decoderConfig := func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.Squash = true
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			emptyProviderVariantDecodeHook(),
			expandEnvDecodeHook(),
		)
	}

	m.Config.APIVersion = ""
	m.Config.Kind = ""

	err := m.Viper.Unmarshal(m.Config, decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return nil
}

// emptyProviderVariantDecodeHook decodes a provider variant written without a body
// ("minikube:") as the empty variant instead of leaving it unset.
func emptyProviderVariantDecodeHook() mapstructure.DecodeHookFuncType {
	providerType := reflect.TypeFor[v1alpha1.Provider]()

	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != providerType {
			return data, nil
		}

		variants, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}

		filled := make(map[string]any, len(variants))

		for key, value := range variants {
			if value == nil {
				value = map[string]any{}
			}

			filled[key] = value
		}

		return filled, nil
	}
}

// expandEnvDecodeHook replaces ${NAME} placeholders in every string value.
func expandEnvDecodeHook() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data any) (any, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}

		value, ok := data.(string)
		if !ok {
			return data, nil
		}

		return envvar.Expand(value), nil
	}
}

func (m *ConfigManager) notify(msgType notify.MessageType, content string, args ...any) {
	notify.WriteMessage(notify.Message{
		Type:    msgType,
		Content: content,
		Args:    args,
		Writer:  m.Writer,
	})
}
