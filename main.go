package main

import (
	"log"
	"os"

	"superstore-cli/cli"
	"superstore-cli/config"
	"superstore-cli/services"
)

func main() {
	log.Println("Starting Superstore order management...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := config.CloseDatabase(); err != nil {
			log.Printf("warning: failed to close database: %v", err)
		}
	}()

	db := config.GetDB()
	if err := config.MigrateAndSeed(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if cfg.S3ExportEnabled() {
		if _, err := services.InitS3ExportService(); err != nil {
			log.Printf("warning: S3 export disabled: %v", err)
		} else {
			log.Printf("S3 export enabled for bucket %s", cfg.AWSS3Bucket)
		}
	}

	menu := cli.NewMenu(db, cfg.ExportDir, os.Stdin, os.Stdout)
	menu.Run()
}
