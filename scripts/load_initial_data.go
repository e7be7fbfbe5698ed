package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"organisation-api/internal/auth"
	"organisation-api/internal/config"
	"organisation-api/internal/database"
	"organisation-api/internal/logger"
	"organisation-api/internal/repository"
	"organisation-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML files
type UserData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Phone     string `yaml:"phone,omitempty"`
}

type OrganisationData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	OwnerEmail  string   `yaml:"owner_email"`
	Members     []string `yaml:"members,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganisationsFile struct {
	Organisations []OrganisationData `yaml:"organisations"`
}

// seedResult counts what a run actually created
type seedResult struct {
	Users         int
	Organisations int
	Memberships   int
}

func main() {
	logrus.Info("Loading initial data from YAML files")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	result, err := loadDataFromYAMLFiles(context.Background(), db, []byte(cfg.JWTSecret), "scripts/data")
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":         result.Users,
		"organisations": result.Organisations,
		"memberships":   result.Memberships,
	}).Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadDataFromYAMLFiles registers users and builds organisations through the service
// layer, so seeded accounts get the same default organisation as real sign-ups.
// Records that already exist are left alone.
func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, secret []byte, dataDir string) (*seedResult, error) {
	users, err := loadUsers(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	organisations, err := loadOrganisations(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load organisations: %w", err)
	}

	tokens, err := auth.NewTokenCodec(secret, auth.DefaultTokenTTL)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)
	validator := service.NewValidator()
	authService := service.NewAuthService(transactor, repos.Users, auth.NewBcryptHasher(0), tokens, validator, nil)
	organisationService := service.NewOrganisationService(transactor, repos, validator)

	result := &seedResult{}

	// Create users first
	userIDs := make(map[string]uuid.UUID, len(users))
	for _, userData := range users {
		id, created, err := createUser(ctx, repos.Users, authService, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userIDs[userData.Email] = id
		if created {
			result.Users++
		}
	}
	logrus.Infof("Users: %d created, %d total", result.Users, len(users))

	// Create organisations and their memberships
	for _, orgData := range organisations {
		ownerID, ok := userIDs[orgData.OwnerEmail]
		if !ok {
			return nil, fmt.Errorf("organisation %s: owner %s is not in users.yaml", orgData.Name, orgData.OwnerEmail)
		}

		orgID, created, err := createOrganisation(ctx, organisationService, ownerID, orgData)
		if err != nil {
			return nil, fmt.Errorf("failed to create organisation %s: %w", orgData.Name, err)
		}
		if created {
			result.Organisations++
		}

		for _, email := range orgData.Members {
			memberID, ok := userIDs[email]
			if !ok {
				logrus.Warnf("Skipping unknown member %s of organisation %s", email, orgData.Name)
				continue
			}
			added, err := addMember(ctx, repos.Memberships, organisationService, orgID, memberID)
			if err != nil {
				return nil, fmt.Errorf("failed to add %s to %s: %w", email, orgData.Name, err)
			}
			if added {
				result.Memberships++
			}
		}
	}
	logrus.Infof("Organisations: %d created, %d total", result.Organisations, len(organisations))
	logrus.Infof("Memberships: %d created", result.Memberships)

	return result, nil
}

func createUser(ctx context.Context, users repository.UserRepositoryInterface, authService *service.AuthService, data UserData) (uuid.UUID, bool, error) {
	existing, err := users.GetByEmail(ctx, data.Email)
	if err == nil {
		return existing.UserID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, err
	}

	req := &service.RegisterRequest{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
	}
	if data.Phone != "" {
		req.Phone = &data.Phone
	}

	response, err := authService.Register(ctx, req)
	if err != nil {
		return uuid.Nil, false, err
	}
	return response.User.UserID, true, nil
}

func createOrganisation(ctx context.Context, organisations *service.OrganisationService, ownerID uuid.UUID, data OrganisationData) (uuid.UUID, bool, error) {
	owned, err := organisations.ListForMember(ctx, ownerID)
	if err != nil {
		return uuid.Nil, false, err
	}
	for _, org := range owned {
		if org.Name == data.Name {
			return org.OrgID, false, nil
		}
	}

	req := &service.CreateOrganisationRequest{Name: data.Name}
	if data.Description != "" {
		req.Description = &data.Description
	}

	org, err := organisations.Create(ctx, ownerID, req)
	if err != nil {
		return uuid.Nil, false, err
	}
	return org.OrgID, true, nil
}

func addMember(ctx context.Context, memberships repository.MembershipRepositoryInterface, organisations *service.OrganisationService, orgID, userID uuid.UUID) (bool, error) {
	exists, err := memberships.Exists(ctx, userID, orgID)
	if err != nil || exists {
		return false, err
	}
	if err := organisations.AddUser(ctx, orgID, &service.AddUserRequest{UserID: userID.String()}); err != nil {
		return false, err
	}
	return true, nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var file UsersFile
	if err := loadYAMLFile(filepath.Join(dataDir, "users.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadOrganisations(dataDir string) ([]OrganisationData, error) {
	var file OrganisationsFile
	if err := loadYAMLFile(filepath.Join(dataDir, "organisations.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Organisations, nil
}

// loadYAMLFile decodes path into out; a missing file leaves out empty.
func loadYAMLFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Warnf("%s not found, skipping", path)
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
