package internal

import (
	"fmt"
	"log/slog"

	"TRECGEN/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) error {
	dsn := cfg.Database.DSN()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema
	if err := autoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("database connected and migrated successfully")
	return nil
}

func autoMigrate() error {
	// Create tables only if they don't exist (preserve existing data)
	result := DB.Exec(`
        CREATE TABLE IF NOT EXISTS teams (
            id varchar(191) PRIMARY KEY,
            name longtext NOT NULL,
            credits int NOT NULL DEFAULT 0,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_teams_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create teams table: %w", result.Error)
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS users (
            id varchar(191) PRIMARY KEY,
            email varchar(191) NOT NULL,
            password_hash longtext NOT NULL,
            name longtext,
            team_id varchar(191) NOT NULL,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            UNIQUE INDEX idx_users_email (email),
            INDEX idx_users_team_id (team_id),
            INDEX idx_users_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create users table: %w", result.Error)
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS team_contract_defaults (
            id varchar(191) PRIMARY KEY,
            team_id varchar(191) NOT NULL,
            listing_firm_name longtext,
            listing_firm_license longtext,
            listing_associate_name longtext,
            listing_associate_license longtext,
            listing_associate_email longtext,
            listing_associate_phone longtext,
            listing_supervisor_name longtext,
            listing_supervisor_license longtext,
            listing_broker_address longtext,
            other_firm_name longtext,
            other_firm_license longtext,
            other_associate_name longtext,
            other_associate_license longtext,
            escrow_agent_name longtext,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            UNIQUE INDEX idx_team_contract_defaults_team_id (team_id)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create team_contract_defaults table: %w", result.Error)
	}

	ensureDefaultsColumns := map[string]string{
		"listing_associate_email":    "ALTER TABLE team_contract_defaults ADD COLUMN listing_associate_email longtext",
		"listing_associate_phone":    "ALTER TABLE team_contract_defaults ADD COLUMN listing_associate_phone longtext",
		"listing_supervisor_name":    "ALTER TABLE team_contract_defaults ADD COLUMN listing_supervisor_name longtext",
		"listing_supervisor_license": "ALTER TABLE team_contract_defaults ADD COLUMN listing_supervisor_license longtext",
		"listing_broker_address":     "ALTER TABLE team_contract_defaults ADD COLUMN listing_broker_address longtext",
		"escrow_agent_name":          "ALTER TABLE team_contract_defaults ADD COLUMN escrow_agent_name longtext",
	}

	for column, stmt := range ensureDefaultsColumns {
		if err := ensureColumn("team_contract_defaults", column, stmt); err != nil {
			return err
		}
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS owners (
            id varchar(191) PRIMARY KEY,
            team_id varchar(191) NOT NULL,
            full_name longtext NOT NULL,
            mailing_address longtext,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_owners_team_id (team_id),
            INDEX idx_owners_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create owners table: %w", result.Error)
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS properties (
            id varchar(191) PRIMARY KEY,
            team_id varchar(191) NOT NULL,
            owner_id varchar(191) NOT NULL,
            street_address longtext NOT NULL,
            city longtext,
            zip_code longtext,
            offer_price longtext,
            status varchar(191) DEFAULT 'pending',
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_properties_team_id (team_id),
            INDEX idx_properties_owner_id (owner_id),
            INDEX idx_properties_deleted_at (deleted_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create properties table: %w", result.Error)
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS contracts (
            id varchar(191) PRIMARY KEY,
            team_id varchar(191) NOT NULL,
            user_id varchar(191) NOT NULL,
            property_id varchar(191) NULL,
            filename longtext NOT NULL,
            gcs_path longtext NOT NULL,
            file_size bigint,
            generated_at datetime(3) NULL,
            created_at datetime(3) NULL,
            INDEX idx_contracts_team_id (team_id),
            INDEX idx_contracts_property_id (property_id)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create contracts table: %w", result.Error)
	}

	result = DB.Exec(`
        CREATE TABLE IF NOT EXISTS activity_logs (
            id varchar(36) PRIMARY KEY,
            method varchar(10) NOT NULL,
            path varchar(255) NOT NULL,
            team_id varchar(36),
            user_id varchar(36),
            ip_address varchar(45),
            status_code int NOT NULL,
            response_time bigint NOT NULL,
            created_at datetime(3) NULL,
            updated_at datetime(3) NULL,
            deleted_at datetime(3) NULL,
            INDEX idx_activity_logs_deleted_at (deleted_at),
            INDEX idx_activity_logs_team_id (team_id),
            INDEX idx_activity_logs_created_at (created_at)
        )
    `)
	if result.Error != nil {
		return fmt.Errorf("failed to create activity_logs table: %w", result.Error)
	}

	return nil
}

func ensureColumn(table, column, statement string) error {
	if DB.Migrator().HasColumn(table, column) {
		return nil
	}

	slog.Info("adding missing column", "table", table, "column", column)
	if err := DB.Exec(statement).Error; err != nil {
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
