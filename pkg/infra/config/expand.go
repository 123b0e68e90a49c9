package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// ExpandEnv expands ${VAR} and $VAR references in the string values of
// v's configuration file. Expanded values are merged back into the file
// layer, so flags, environment variables and later reads of the file
// still take precedence over them. References to unset variables are
// kept as written.
func ExpandEnv(v *viper.Viper) error {
	file := v.ConfigFileUsed()
	if file == "" {
		return nil
	}

	raw := viper.New()
	raw.SetConfigFile(file)
	if err := raw.ReadInConfig(); err != nil {
		return err
	}

	expanded := make(map[string]any)
	for _, key := range raw.AllKeys() {
		s, ok := raw.Get(key).(string)
		if !ok {
			continue
		}
		if out := ExpandString(s); out != s {
			setPath(expanded, strings.Split(key, "."), out)
		}
	}
	if len(expanded) == 0 {
		return nil
	}
	return v.MergeConfigMap(expanded)
}

// ExpandString replaces ${VAR} and $VAR with the value of the
// environment variable, leaving unset ones untouched.
func ExpandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")
		if val := os.Getenv(name); val != "" {
			return val
		}
		return match
	})
}

func setPath(m map[string]any, path []string, value any) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}
