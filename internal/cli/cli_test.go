package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/taml-html/internal/cli"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs a fresh root command with the given stdin and arguments
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}
