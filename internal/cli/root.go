// Package cli implements the packgen command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "packgen",
	Short: "Generate guaranteed-solvable 3D bin-packing instances",
	Long: "packgen reverse-generates 3D bin-packing problem instances by recursively\n" +
		"splitting a container into items, so every instance ships with a reference\n" +
		"solution. Instances can be exported as CSV/Excel shape lists, PDF manifests,\n" +
		"QR item labels, or stored in a SQLite dataset.",
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.packgen/config.yaml)")
}

// initConfig loads defaults from the config file and environment. Flags
// still win over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".packgen"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("PACKGEN")
	viper.AutomaticEnv()
	// The config file is optional.
	_ = viper.ReadInConfig()
}

func defaultDBPath() string {
	if env := os.Getenv("PACKGEN_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".packgen", "instances.db")
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
