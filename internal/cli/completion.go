package cli

import (
	"io"

	"github.com/arthur-debert/taml-html/pkg/errors"
	"github.com/spf13/cobra"
)

// Shells lists the shells completions can be generated for
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenerateCompletion writes the completion script for shell
func GenerateCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s", shell).
			WithDetail("supported", Shells)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to generate %s completion", shell)
	}
	return nil
}
