package repositories

import (
	"fmt"

	"github.com/avikm/job-board/internal/entities"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Employer{})
	if err != nil {
		return fmt.Errorf("failed to migrate Employer entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Admin{})
	if err != nil {
		return fmt.Errorf("failed to migrate Admin entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	// A contact may not apply twice to the same job with the same phone or
	// the same email. The service layer pre-checks, but these indexes are
	// the guarantee under concurrent submissions.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_phone ON applications (job_id, phone); " +
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_job_email ON applications (job_id, email);").
		Error; err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
