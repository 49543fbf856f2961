package cli

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the processed pool options",
	Args:  cobra.NoArgs,
	Run:   config,
}

func config(_ *cobra.Command, _ []string) {
	opts, err := LoadOptions()
	if err != nil {
		logrus.Fatalf("error loading options (%v)", err)
	}
	fmt.Print(opts.Dump())
}
