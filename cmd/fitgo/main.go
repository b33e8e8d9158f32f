// Command fitgo generates a noisy linear sample set, fits a line to it and
// reports the result as a console summary plus optional plot, HTML and
// published artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fitgo",
	Short:         "Least-squares line fitting",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(newFitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
