package cli

import (
	"github.com/openziti/bpool"
	"github.com/openziti/bpool/cf"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	RootCmd.PersistentFlags().BoolVar(&doCpuProfile, "cpu", false, "Enable CPU profiling")
	RootCmd.PersistentFlags().BoolVar(&doMemoryProfile, "memory", false, "Enable memory profiling")
	RootCmd.PersistentFlags().BoolVar(&doMutexProfile, "mutex", false, "Enable mutex profiling")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Pool options file path (yaml)")
	RootCmd.PersistentFlags().BoolVarP(&configDump, "dump", "d", false, "Dump the processed options")
}

var RootCmd = &cobra.Command{
	Use:   strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0])),
	Short: "Bounded pool exerciser",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if doCpuProfile {
			cpuProfile = profile.Start(profile.CPUProfile)
		}
		if doMemoryProfile {
			memoryProfile = profile.Start(profile.MemProfile)
		}
		if doMutexProfile {
			mutexProfile = profile.Start(profile.MutexProfile)
		}
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cpuProfile != nil {
			cpuProfile.Stop()
		}
		if memoryProfile != nil {
			memoryProfile.Stop()
		}
		if mutexProfile != nil {
			mutexProfile.Stop()
		}
	},
}
var verbose bool
var doCpuProfile bool
var cpuProfile interface{ Stop() }
var doMemoryProfile bool
var memoryProfile interface{ Stop() }
var doMutexProfile bool
var mutexProfile interface{ Stop() }
var configPath string
var configDump bool

// LoadOptions returns the default pool options, overlaid with the --config file when one was
// given.
func LoadOptions() (*bpool.Options, error) {
	opts := bpool.DefaultOptions()
	if configPath != "" {
		dataMap, err := readConfig(configPath)
		if err != nil {
			return nil, err
		}
		if err := opts.Load(dataMap); err != nil {
			return nil, errors.Wrapf(err, "unable to load pool options [%s]", configPath)
		}
	}
	if configDump {
		logrus.Info(opts.Dump())
	}
	return opts, nil
}

func readConfig(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file [%s]", path)
	}
	dataMap := make(map[interface{}]interface{})
	if err := yaml.Unmarshal(data, &dataMap); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal config data [%s]", path)
	}
	return cf.MapIToMapS(dataMap), nil
}
