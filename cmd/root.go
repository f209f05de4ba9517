/*
Copyright © 2019 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "GRAPHQL_DIRECTIVES"
	configFileName = ".graphql-directives"

	logLevelKey       = "log.level"
	printSpecifiedKey = "print.specified"
	inputFormatKey    = "input.format"
)

var (
	cfgFile   string
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graphql-directives",
	Short: "graphql-directives inspects GraphQL directive definitions",
	Long: `graphql-directives reads directive definitions from GraphQL SDL, YAML or JSON files,
checks them and prints them as SDL. The specified directives @include, @skip and @deprecated
are always known and are left out of the printed output unless asked for.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+configFileName+".yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "", "input format, one of sdl, yaml, json (default by file extension)")
	_ = viper.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(inputFormatKey, rootCmd.PersistentFlags().Lookup("format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = nil
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			configErr = err
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			configErr = errors.Wrapf(err, "read config %s", cfgFile)
		}
		return
	}
}
