package config

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const APP_NAME = "crystal"

var DEFAULT_ENV_FILE string = `CRYSTAL_SKIP=none
CRYSTAL_HISTORY=.crystal_history
CRYSTAL_TRACE=0
`

//go:embed env
var DEFAULT_DEV_ENV_FILE string

var CRYSTAL_CONFIG_DIR string

var ENVS *Envs

type Envs struct {
	SKIP    string `env:"CRYSTAL_SKIP"`
	HISTORY string `env:"CRYSTAL_HISTORY"`
	TRACE   string `env:"CRYSTAL_TRACE"`
}

func (e *Envs) ShowAll(w io.Writer) {
	v := reflect.ValueOf(e)

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			fmt.Fprintf(w, "%s='%s'\n", envTag, fieldValue.String())
		}
	}
}

func (e *Envs) SkipPolicy() (SkipPolicy, error) {
	return ParseSkipPolicy(e.SKIP)
}

func (e *Envs) Trace() bool {
	return e.TRACE == "1"
}

// HistoryPath resolves the REPL history file inside the config directory
// unless it is already absolute.
func (e *Envs) HistoryPath() string {
	if e.HISTORY == "" || filepath.IsAbs(e.HISTORY) {
		return e.HISTORY
	}
	return filepath.Join(CRYSTAL_CONFIG_DIR, e.HISTORY)
}

func SetupConfigDir() error {
	cfgDir, err := getConfigDir(APP_NAME)
	if err != nil {
		return err
	}
	CRYSTAL_CONFIG_DIR = cfgDir
	return nil
}

func SetupEnvFile() error {
	envFile := filepath.Join(CRYSTAL_CONFIG_DIR, "env")
	envs, err := LoadEnvs(envFile)
	if err != nil {
		return err
	}
	ENVS = envs
	return nil
}

func LoadEnvs(path string) (*Envs, error) {
	envs, err := loadEnvFile(path)
	if err != nil {
		return nil, err
	}

	parsedEnvs := Envs{}
	err = MapEnvToStruct(envs, &parsedEnvs)
	if err != nil {
		return nil, err
	}
	return &parsedEnvs, nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

func loadEnvFile(path string) (map[string]string, error) {
	_, err := os.Stat(path)
	envFileCreated := false
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		envFileCreated = true
	}

	// NOTE: in development mode the env file is always rewritten because
	// developers might have changed the defaults for debugging
	if DEV {
		envFileCreated = true
	}

	if envFileCreated {
		var err error
		if DEV {
			err = writeStringToFile(path, DEFAULT_DEV_ENV_FILE)
		} else {
			err = writeStringToFile(path, DEFAULT_ENV_FILE)
		}
		if err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseEnv(file)
}

func parseEnv(r io.Reader) (map[string]string, error) {
	env := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return env, nil
}

func writeStringToFile(fileName, content string) error {
	// os.O_CREATE: Create the file if it doesn't exist.
	// os.O_WRONLY: Open the file for writing only.
	// os.O_TRUNC: Truncate the file if it already exists (overwrite it).
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	if err != nil {
		return err
	}

	return nil
}

func MapEnvToStruct(data map[string]string, result any) error {
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("MapEnvToStruct: expected pointer to struct, got %T", result)
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			if value, ok := data[envTag]; ok {
				if fieldValue.CanSet() && fieldValue.Kind() == reflect.String {
					fieldValue.SetString(value)
				}
			}
		}
	}

	return nil
}
