// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envVar = "WERK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	env            string
	configDir      string
	configFileName string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	statusFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths, initErr = compute(strings.TrimSpace(os.Getenv(envVar)))
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func compute(env string) (*Paths, error) {
	p := &Paths{
		env:            env,
		configDir:      "werk",
		configFileName: "config.yml",
		statusFileName: "status.json",
		logFileName:    "werk.log",
	}

	p.configFileName = p.withEnv(p.configFileName)
	p.statusFileName = p.withEnv(p.statusFileName)
	p.logFileName = p.withEnv(p.logFileName)

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.statusFilePath = filepath.Join(p.dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}

// withEnv inserts the environment name before the extension so that
// separate environments never share files.
func (p *Paths) withEnv(fileName string) string {
	if p.env == "" {
		return fileName
	}

	ext := filepath.Ext(fileName)

	return fmt.Sprintf("%s_%s%s", StripExtension(fileName), p.env, ext)
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DataFilePath returns the default location of a data file in the data
// directory.
func DataFilePath(fileName string) string {
	p := Must()

	return filepath.Join(p.dataDir, p.withEnv(fileName))
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
