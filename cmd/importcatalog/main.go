package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"library-lending/internal/config"
	"library-lending/internal/domain"
	"library-lending/internal/repository"
)

// catalogRow is one CSV line:
// kind,title,author,isbn,artist,genre,duration_minutes
type catalogRow struct {
	Kind            string `validate:"required,oneof=book cd"`
	Title           string `validate:"required"`
	Author          string
	ISBN            string
	Artist          string
	Genre           string
	DurationMinutes int `validate:"gte=0"`
}

func main() {
	file := flag.String("file", "catalog.csv", "CSV file with media rows to import")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("sqlite3", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	mediaRepo := repository.NewMediaRepository(db)
	validate := validator.New()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 7

	successCount := 0
	errorCount := 0
	line := 0

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			fmt.Printf("line %d: ERROR - %v\n", line, err)
			errorCount++
			continue
		}
		if line == 1 && fields[0] == "kind" {
			// Header row.
			continue
		}

		row := catalogRow{
			Kind:   fields[0],
			Title:  fields[1],
			Author: fields[2],
			ISBN:   fields[3],
			Artist: fields[4],
			Genre:  fields[5],
		}
		if fields[6] != "" {
			if row.DurationMinutes, err = strconv.Atoi(fields[6]); err != nil {
				fmt.Printf("line %d: ERROR - bad duration %q\n", line, fields[6])
				errorCount++
				continue
			}
		}

		if err := validate.Struct(&row); err != nil {
			fmt.Printf("line %d: ERROR - %v\n", line, err)
			errorCount++
			continue
		}

		media := toMedia(row)
		if err := mediaRepo.Insert(context.Background(), media); err != nil {
			fmt.Printf("line %d: ERROR - %v\n", line, err)
			errorCount++
			continue
		}

		fmt.Printf("Imported %s %q (ID: %d)\n", media.Kind, media.Title, media.ID)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d items\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)
}

func toMedia(row catalogRow) *domain.Media {
	media := &domain.Media{
		Title:     row.Title,
		Kind:      domain.MediaKind(row.Kind),
		Available: true,
	}
	switch media.Kind {
	case domain.KindBook:
		media.Book = &domain.BookDetail{Author: row.Author, ISBN: row.ISBN}
	case domain.KindCD:
		media.CD = &domain.CDDetail{Artist: row.Artist, Genre: row.Genre, DurationMinutes: row.DurationMinutes}
	}
	return media
}
