package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"application-catalog-bff/internal/config"
	"application-catalog-bff/internal/database"
	"application-catalog-bff/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ToolData struct {
	Title              string                   `yaml:"title"`
	Description        string                   `yaml:"description"`
	Category           string                   `yaml:"category"`
	Tags               []string                 `yaml:"tags,omitempty"`
	AccessOwnerName    string                   `yaml:"access_owner_name,omitempty"`
	AccessOwnerEmail   string                   `yaml:"access_owner_email,omitempty"`
	AccessProcess      string                   `yaml:"access_process,omitempty"`
	Experts            []map[string]interface{} `yaml:"experts,omitempty"`
	DocumentationLinks []map[string]interface{} `yaml:"documentation_links,omitempty"`
	ToolURL            string                   `yaml:"tool_url,omitempty"`
	Status             string                   `yaml:"status,omitempty"`
	SortOrder          int                      `yaml:"sort_order,omitempty"`
	IsFeatured         bool                     `yaml:"is_featured,omitempty"`
	OwnerTeamNames     []string                 `yaml:"owner_teams,omitempty"`
}

type TeamData struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description,omitempty"`
	Members     []map[string]interface{} `yaml:"members,omitempty"`
}

type ToolsFile struct {
	Tools []ToolData `yaml:"tools"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading initial catalog data from YAML files...")

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

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial catalog data loaded successfully!")
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
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	tools, err := loadTools(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tools: %w", err)
	}

	// Create teams first so tools can reference them by name
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	toolCreated := 0
	for _, toolData := range tools {
		_, created, err := createTool(db, toolData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create tool %s: %w", toolData.Title, err)
		}
		if created {
			toolCreated++
		}
	}
	log.Printf("📋 Tools: %d created, %d total", toolCreated, len(tools))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadTools(dataDir string) ([]ToolData, error) {
	var allTools []ToolData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tools") {
			var file ToolsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTools = append(allTools, file.Tools...)
		}
		return nil
	})

	return allTools, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			members := teamData.Members
			if members == nil {
				members = []map[string]interface{}{}
			}
			membersJSON, _ := json.Marshal(members)

			team = models.Team{
				Name:        teamData.Name,
				Description: teamData.Description,
				Members:     membersJSON,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createTool(db *gorm.DB, toolData ToolData, teamMap map[string]*models.Team) (*models.Tool, bool, error) {
	var tool models.Tool
	if err := db.Where("title = ?", toolData.Title).First(&tool).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tags := toolData.Tags
			if tags == nil {
				tags = []string{}
			}
			tagsJSON, _ := json.Marshal(tags)

			experts := toolData.Experts
			if experts == nil {
				experts = []map[string]interface{}{}
			}
			expertsJSON, _ := json.Marshal(experts)

			docLinks := toolData.DocumentationLinks
			if docLinks == nil {
				docLinks = []map[string]interface{}{}
			}
			docLinksJSON, _ := json.Marshal(docLinks)

			// Resolve owning teams by name; unknown names are skipped with a warning
			ownerIDs := make([]string, 0, len(toolData.OwnerTeamNames))
			for _, name := range toolData.OwnerTeamNames {
				team := teamMap[name]
				if team == nil {
					log.Printf("⚠️  Tool %s references unknown team %q, skipping", toolData.Title, name)
					continue
				}
				ownerIDs = append(ownerIDs, team.ID.String())
			}
			ownerTeamsJSON, _ := json.Marshal(ownerIDs)

			status := models.ToolStatus(toolData.Status)
			if status == "" {
				status = models.ToolStatusActive
			}

			tool = models.Tool{
				Title:              toolData.Title,
				Description:        toolData.Description,
				Category:           toolData.Category,
				Tags:               tagsJSON,
				OwnerTeams:         ownerTeamsJSON,
				AccessOwnerName:    toolData.AccessOwnerName,
				AccessOwnerEmail:   toolData.AccessOwnerEmail,
				AccessProcess:      toolData.AccessProcess,
				Experts:            expertsJSON,
				DocumentationLinks: docLinksJSON,
				ToolURL:            toolData.ToolURL,
				Status:             status,
				SortOrder:          toolData.SortOrder,
				IsFeatured:         toolData.IsFeatured,
			}

			if err := db.Create(&tool).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tool: %w", err)
			}
			return &tool, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query tool: %w", err)
	}

	return &tool, false, nil // created = false (existing)
}
