package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Lutefd/estate-site/internal/commons"
	"github.com/Lutefd/estate-site/internal/model"
	"github.com/Lutefd/estate-site/internal/repository"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type dependencies struct {
	loadConfig func() (commons.Config, error)
	openDB     func(driverName, dataSourceName string) (*sql.DB, error)
	readFile   func(name string) ([]byte, error)
	loadEnv    func(...string) error
}

var defaultDeps = dependencies{
	loadConfig: commons.LoadConfig,
	openDB:     sql.Open,
	readFile:   os.ReadFile,
	loadEnv:    godotenv.Load,
}

type seedFile struct {
	Properties []model.Property `yaml:"properties"`
}

func main() {
	path := flag.String("file", "sql/properties.yaml", "YAML file with the property listings")
	flag.Parse()

	if err := run(context.Background(), defaultDeps, *path); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, deps dependencies, path string) error {
	if err := deps.loadEnv(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	config, err := deps.loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	properties, err := loadProperties(deps, path)
	if err != nil {
		return err
	}

	db, err := deps.openDB("postgres", config.PostgresConn)
	if err != nil {
		return fmt.Errorf("error opening database connection: %w", err)
	}

	repo, err := repository.NewPostgresPropertyRepository(config.PostgresConn, db)
	if err != nil {
		db.Close()
		return fmt.Errorf("error connecting to the database: %w", err)
	}
	defer repo.Close()

	if err := seedProperties(ctx, repo, properties); err != nil {
		return err
	}

	fmt.Printf("Seeded %d properties successfully!\n", len(properties))
	return nil
}

func loadProperties(deps dependencies, path string) ([]model.Property, error) {
	data, err := deps.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing seed file: %w", err)
	}

	for i, p := range file.Properties {
		if p.ID == "" {
			return nil, fmt.Errorf("property %d in %s has no id", i+1, path)
		}
	}
	return file.Properties, nil
}

func seedProperties(ctx context.Context, repo repository.PropertyRepository, properties []model.Property) error {
	for i := range properties {
		if err := repo.Upsert(ctx, &properties[i]); err != nil {
			return fmt.Errorf("error seeding properties: %w", err)
		}
	}
	return nil
}
