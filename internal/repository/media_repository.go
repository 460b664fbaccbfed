package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"library-lending/internal/domain"
)

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// mediaRow is the flat table shape; the kind-specific columns are nullable
// and folded into the tagged Media union on read.
type mediaRow struct {
	ID              int64            `db:"id"`
	Title           string           `db:"title"`
	Kind            domain.MediaKind `db:"kind"`
	Available       bool             `db:"available"`
	Author          sql.NullString   `db:"author"`
	ISBN            sql.NullString   `db:"isbn"`
	Artist          sql.NullString   `db:"artist"`
	Genre           sql.NullString   `db:"genre"`
	DurationMinutes sql.NullInt64    `db:"duration_minutes"`
}

func (row *mediaRow) toDomain() *domain.Media {
	media := &domain.Media{
		ID:        row.ID,
		Title:     row.Title,
		Kind:      row.Kind,
		Available: row.Available,
	}
	switch row.Kind {
	case domain.KindBook:
		media.Book = &domain.BookDetail{
			Author: row.Author.String,
			ISBN:   row.ISBN.String,
		}
	case domain.KindCD:
		media.CD = &domain.CDDetail{
			Artist:          row.Artist.String,
			Genre:           row.Genre.String,
			DurationMinutes: int(row.DurationMinutes.Int64),
		}
	}
	return media
}

func (r *mediaRepository) Insert(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (title, kind, available, author, isbn, artist, genre, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var author, isbn, artist, genre interface{}
	var duration interface{}
	if media.Book != nil {
		author, isbn = media.Book.Author, media.Book.ISBN
	}
	if media.CD != nil {
		artist, genre = media.CD.Artist, media.CD.Genre
		duration = media.CD.DurationMinutes
	}

	res, err := r.db.ExecContext(ctx, query,
		media.Title,
		media.Kind,
		media.Available,
		author,
		isbn,
		artist,
		genre,
		duration,
	)
	if err != nil {
		return err
	}

	media.ID, err = res.LastInsertId()
	return err
}

func (r *mediaRepository) FindByID(ctx context.Context, id int64) (*domain.Media, error) {
	query := `
		SELECT id, title, kind, available, author, isbn, artist, genre, duration_minutes
		FROM media
		WHERE id = ?
	`

	var row mediaRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}

	return row.toDomain(), nil
}

func (r *mediaRepository) List(ctx context.Context) ([]*domain.Media, error) {
	query := `
		SELECT id, title, kind, available, author, isbn, artist, genre, duration_minutes
		FROM media
		ORDER BY id
	`

	var rows []*mediaRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	items := make([]*domain.Media, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

func (r *mediaRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	query := `
		UPDATE media
		SET available = ?
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
