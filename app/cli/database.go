package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogapi/app/fixtures"
	"blogapi/app/repositories"

	"github.com/spf13/cobra"
)

func newSeedCommand(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated blog posts into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			posts, err := fixtures.SeedBlogData(store, count, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d posts\n", len(posts))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", fixtures.DefaultSeedCount, "number of posts to generate")
	return cmd
}

func newDropCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Remove every post from the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Are you sure you want to drop the database? This cannot be undone. [y/N] ") {
				fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
				return nil
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DropDatabase(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database dropped")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newBackupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [file]",
		Short: "Write a backup of the database",
		Long:  "Write a backup of the database to file, or to data/backups/backup_<unix time>.db when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backupFile := filepath.Join("data", "backups", fmt.Sprintf("backup_%d.db", time.Now().Unix()))
			if len(args) == 1 {
				backupFile = args[0]
			}
			if err := os.MkdirAll(filepath.Dir(backupFile), 0755); err != nil {
				return fmt.Errorf("failed to create backup directory: %w", err)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			f, err := os.Create(backupFile)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}

			if err := writeBackup(store, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database backed up to %s\n", backupFile)
			return nil
		},
	}
}

// writeBackup writes a backup of store to f and closes f. A failed close
// fails the backup.
func writeBackup(store *repositories.Store, f io.WriteCloser) error {
	if err := store.Backup(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close backup file: %w", err)
	}
	return nil
}

func newRestoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Load a backup into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer f.Close()

			fi, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat backup file: %w", err)
			}
			if fi.Size() == 0 {
				return errors.New("backup file is empty: " + args[0])
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Restore(f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database restored")
			return nil
		},
	}
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
