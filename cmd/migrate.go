package cmd

import (
	"errors"

	"github.com/portfolio-simple/config"
	"github.com/portfolio-simple/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateFrom string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the projects table",
	Long: `Create or update the projects table in DATABASE_URL.

With --from, projects are also copied (ids preserved) from another database,
for example an older SQLite file into PostgreSQL:

  DATABASE_URL=postgres://... portfolio migrate --from portfolio.db`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source database to copy projects from")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Database.URL == config.MemoryDatabase {
		return errors.New("DATABASE_URL selects in-memory storage, nothing to migrate")
	}

	target, err := database.NewDBConnection("target", cfg.Database.URL, log)
	if err != nil {
		return err
	}
	defer target.Close()

	if err := target.Migrate(); err != nil {
		return err
	}
	log.Info("schema migrated", zap.String("database", target.Name))

	if migrateFrom == "" {
		return nil
	}

	source, err := database.NewDBConnection("source", migrateFrom, log)
	if err != nil {
		return err
	}
	defer source.Close()

	copied, err := database.CopyProjects(source, target, log)
	if err != nil {
		return err
	}
	log.Info("projects copied", zap.Int("count", copied))
	return nil
}
