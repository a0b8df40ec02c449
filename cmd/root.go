package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cogni",
		Short:         "CogniSupport (cogni): support ticket intake with live AI triage",
		Long:          "cogni opens a support ticket intake form that classifies the ticket while you type, and lets you run one-off classifications or list tickets from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newIntakeCmd(app),
		newAnalyzeCmd(app),
		newTicketsCmd(app),
	)

	return rootCmd
}
