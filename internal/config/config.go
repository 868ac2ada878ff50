package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// config holds the skslc process configuration. It is initialized by
// init() and cannot be accessed in other packages.
// Please use the exported functions below to access the configuration values.
var config struct {
	ModulePath   string `json:"SKSL_MODULE_PATH"` // may be empty
	CacheDirPath string
	ConfDirPath  string
	Verbose      bool `json:"-"` // this field is governed by a run flag
}

func init() {
	config.ModulePath = os.Getenv("SKSL_MODULE_PATH")
	config.CacheDirPath = getSkslDirectory(os.UserCacheDir())
	config.ConfDirPath = getSkslDirectory(os.UserConfigDir())
	config.Verbose = false
}

// getSkslDirectory returns the skslc-specific path of user/system directories if it can be determined.
func getSkslDirectory(path string, err error) string {
	if err != nil {
		panic(err)
	}
	return filepath.Join(path, "skslc")
}

// ModulePath returns the path specified in the SKSL_MODULE_PATH environment variable.
// It should point to the directory holding the shared SkSL module files.
// Be aware that this might not be set, in which case the returned string is empty.
func ModulePath() string {
	return config.ModulePath
}

// ResolveModulePath returns the path a module referenced by an input file
// is loaded from. If SKSL_MODULE_PATH is set, the module is looked up
// there by its base name; otherwise the input path itself is used.
func ResolveModulePath(inputPath string) string {
	if config.ModulePath == "" {
		return inputPath
	}
	return filepath.Join(config.ModulePath, filepath.Base(inputPath))
}

// CacheDirPath returns the path used for storing skslc-specific cache files.
func CacheDirPath() string {
	return config.CacheDirPath
}

// ConfDirPath returns the path used for storing skslc-specific configuration files.
func ConfDirPath() string {
	return config.ConfDirPath
}

// PrintConf prints the current skslc configuration to stdout in JSON format.
func PrintConf() {
	prettyConf, _ := json.MarshalIndent(config, "", "    ")
	fmt.Println(string(prettyConf))
}

// Set common configuration options. Be careful to use the correct types as value!
func Set(name string, value interface{}) {
	switch name {
	case "verbose":
		config.Verbose = value.(bool)
	}
}

// Verbose returns the Verbose setting.
func Verbose() bool {
	return config.Verbose
}
