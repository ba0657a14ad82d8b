package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"dao-governance-backend/internal/config"
	"dao-governance-backend/internal/database"
	"dao-governance-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AgentData struct {
	Address string   `yaml:"address"`
	Name    string   `yaml:"name"`
	Roles   []string `yaml:"roles,omitempty"`
}

type OrganizationData struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Owner        string `yaml:"owner"`
	StakingAsset string `yaml:"staking_asset"`
	MinStake     int64  `yaml:"min_stake"`
}

type AccountData struct {
	Holder  string `yaml:"holder"`
	Asset   string `yaml:"asset"`
	Balance int64  `yaml:"balance"`
}

type AgentsFile struct {
	Agents []AgentData `yaml:"agents"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type AccountsFile struct {
	Accounts []AccountData `yaml:"accounts"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seedGenesisAdmin(db, cfg.AdminAddress); err != nil {
		log.Fatalf("Failed to seed genesis admin: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// seedGenesisAdmin grants the admin role to the configured genesis address
func seedGenesisAdmin(db *gorm.DB, address string) error {
	if address == "" {
		log.Println("ADMIN_ADDRESS not set, skipping genesis admin grant")
		return nil
	}
	grant := &models.RoleGrant{Role: models.RoleAdmin, Address: address, GrantedBy: "genesis"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(grant).Error; err != nil {
		return fmt.Errorf("failed to grant admin role to %s: %w", address, err)
	}
	log.Printf("Granted admin role to genesis address %s", address)
	return nil
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	agents, err := loadAgents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	accounts, err := loadAccounts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	if err := seedAgents(db, agents); err != nil {
		return err
	}
	if err := seedOrganizations(db, organizations); err != nil {
		return err
	}
	if err := seedAccounts(db, accounts); err != nil {
		return err
	}
	return nil
}

func loadAgents(dataDir string) ([]AgentData, error) {
	var file AgentsFile
	if err := readYAML(filepath.Join(dataDir, "agents.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Agents, nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var file OrganizationsFile
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Organizations, nil
}

func loadAccounts(dataDir string) ([]AccountData, error) {
	var file AccountsFile
	if err := readYAML(filepath.Join(dataDir, "accounts.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Accounts, nil
}

// readYAML unmarshals one YAML file; a missing file yields an empty document
func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("No %s, skipping", filepath.Base(path))
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func seedAgents(db *gorm.DB, agents []AgentData) error {
	for _, a := range agents {
		agent := models.Agent{
			Address:      a.Address,
			Name:         a.Name,
			Active:       true,
			RegisteredAt: time.Now().UTC(),
		}
		result := db.Where("address = ?", a.Address).FirstOrCreate(&agent)
		if result.Error != nil {
			return fmt.Errorf("failed to seed agent %s: %w", a.Address, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Registered agent %s (%s)", a.Name, a.Address)
		}

		for _, role := range a.Roles {
			r := models.Role(role)
			if !r.IsValid() {
				return fmt.Errorf("agent %s has unknown role %q", a.Address, role)
			}
			grant := &models.RoleGrant{Role: r, Address: a.Address, GrantedBy: "seed"}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(grant).Error; err != nil {
				return fmt.Errorf("failed to grant role %s to %s: %w", role, a.Address, err)
			}
		}
	}
	log.Printf("Seeded %d agents", len(agents))
	return nil
}

func seedOrganizations(db *gorm.DB, organizations []OrganizationData) error {
	for _, o := range organizations {
		asset := o.StakingAsset
		if asset == "" {
			asset = models.AssetNative
		}
		org := models.Organization{
			Name:         o.Name,
			Description:  o.Description,
			Owner:        o.Owner,
			StakingAsset: asset,
			MinStake:     o.MinStake,
			Active:       true,
		}
		result := db.Where("name = ?", o.Name).FirstOrCreate(&org)
		if result.Error != nil {
			return fmt.Errorf("failed to seed organization %s: %w", o.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Created organization %s (min stake %d)", o.Name, o.MinStake)
		}
	}
	log.Printf("Seeded %d organizations", len(organizations))
	return nil
}

func seedAccounts(db *gorm.DB, accounts []AccountData) error {
	for _, a := range accounts {
		asset := a.Asset
		if asset == "" {
			asset = models.AssetNative
		}
		account := models.Account{
			Holder:  a.Holder,
			Asset:   asset,
			Balance: a.Balance,
		}
		result := db.Where("holder = ? AND asset = ?", a.Holder, asset).FirstOrCreate(&account)
		if result.Error != nil {
			return fmt.Errorf("failed to seed account %s: %w", a.Holder, result.Error)
		}
	}
	log.Printf("Seeded %d escrow accounts", len(accounts))
	return nil
}
