package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/hltv-cal/internal/preferences"
)

var flagCreateGist bool

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change export settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsShow,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting. Keys:
  defaultProvider   google, outlook, ics or unset (ask every time)
  outlookVariant    live (Outlook.com) or office (Microsoft 365)`,
		Args: cobra.ExactArgs(2),
		RunE: runSettingsSet,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Store default settings if none exist yet",
		Args:  cobra.NoArgs,
		RunE:  runSettingsInit,
	}
	initCmd.Flags().BoolVar(&flagCreateGist, "create-gist", false, "Create a private gist for syncing settings and print its ID")

	cmd.AddCommand(show, set, initCmd)
	return cmd
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	s, err := a.client.Settings(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	return WriteSettings(a.out, s, a.format)
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	s, err := preferences.Set(a.prefs, args[0], args[1])
	if err != nil {
		return err
	}
	return WriteSettings(a.out, s, a.format)
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if flagCreateGist {
		id, err := preferences.CreateGist(a.cfg.Gist.Token, "hltv-cal settings")
		if err != nil {
			return fmt.Errorf("creating gist: %w", err)
		}
		fmt.Fprintf(a.out, "Created gist %s\nSet HLTV_CAL_GIST_ID=%s to sync settings through it.\n", id, id)
		return nil
	}

	// newApp has already installed defaults when nothing was stored
	s, err := a.prefs.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	return WriteSettings(a.out, s, a.format)
}
