package database

import (
	"fmt"

	"github.com/portfolio-simple/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	return nil
}

// CopyProjects copies every project from source into target, keeping ids.
// Rows whose id already exists in target are skipped.
func CopyProjects(source, target *DBConnection, log *zap.Logger) (int, error) {
	var projects []models.Project
	if err := source.DB.Order("id asc").Find(&projects).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch projects from %s: %w", source.Name, err)
	}
	log.Info("found projects to copy", zap.Int("count", len(projects)), zap.String("source", source.Name))

	copied := 0
	err := target.DB.Transaction(func(tx *gorm.DB) error {
		for _, project := range projects {
			var count int64
			if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Warn("project already present in target, skipping", zap.Uint("id", project.ID))
				continue
			}
			if err := tx.Create(&project).Error; err != nil {
				return fmt.Errorf("failed to copy project %d: %w", project.ID, err)
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if target.Dialect == DialectPostgres && copied > 0 {
		// explicit ids leave the serial sequence behind
		if err := target.DB.Exec("SELECT setval(pg_get_serial_sequence('projects', 'id'), (SELECT MAX(id) FROM projects))").Error; err != nil {
			return copied, fmt.Errorf("failed to reset project id sequence: %w", err)
		}
	}

	return copied, nil
}
