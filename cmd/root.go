package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	digits  int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labdiff",
	Short: "Perceptual color difference toolkit",
	Long: `labdiff computes CIEDE2000 (deltaE00) perceptual differences between
colors and extracts perceptually ranked palettes from images.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.labdiff.yaml)")
	rootCmd.PersistentFlags().IntVarP(&digits, "digits", "d", 4, "decimal digits in reported distances")
	viper.BindPFlag("digits", rootCmd.PersistentFlags().Lookup("digits"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".labdiff")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
