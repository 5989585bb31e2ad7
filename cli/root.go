package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marover/webpilot/internals/cliutil"
	"github.com/marover/webpilot/internals/env"
	"github.com/marover/webpilot/internals/version"
	"github.com/marover/webpilot/sdk"
	"github.com/marover/webpilot/tui"
)

var (
	baseURLFlag string
	jsonOut     bool
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "webpilot",
		Short:         "Terminal front-end for a natural-language web-automation backend",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, local := newClient()
			if err := cliutil.EnsureBackendRunning(client, local); err != nil {
				return err
			}
			return tui.Run(client)
		},
	}

	root.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "backend base URL (overrides config and env)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON instead of formatted output")

	root.AddCommand(
		newListCmd(),
		newGenerateCmd(),
		newModifyCmd(),
		newExecCmd(),
		newDevCmd(),
		newExecJSONCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// newClient builds the SDK client from flag > config file > env, and
// reports whether the resolved address is the local default (the only case
// where a missing backend gets auto-started).
func newClient() (*sdk.Client, bool) {
	if baseURLFlag != "" {
		return sdk.NewClient(sdk.WithBaseURL(baseURLFlag)), false
	}
	client := sdk.NewClient()
	return client, isLocalDefault(client.BaseURL(), env.Get())
}

// isLocalDefault reports whether the resolved backend address is the
// env-derived local listen address. A remote address — whether it came from
// the config file or from WEBPILOT_BASE_URL — must never trigger a local
// webpilotd spawn.
func isLocalDefault(resolved string, e *env.EnvStruct) bool {
	return strings.TrimRight(resolved, "/") == e.LISTEN_PROT+e.LISTEN_ADDR
}
