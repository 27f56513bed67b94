package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cuentaconmigo/conmigo/internal/progress"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user-id>",
	Short: "Reset a user's progress to defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parse user id: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := progress.NewService(st.ProgressRepo())
		if _, err := svc.Reset(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Println("progress reset for", userID)
		return nil
	},
}
