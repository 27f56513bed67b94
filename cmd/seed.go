package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuentaconmigo/conmigo/internal/lessons"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed <lessons.json>",
	Short: "Import lessons from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := lessons.NewService(st.LessonRepo())
		n, err := svc.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("imported %d lessons\n", n)
		return nil
	},
}
