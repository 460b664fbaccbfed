package domain

// MediaKind tags a catalog item as a book or a CD.
type MediaKind string

const (
	KindBook MediaKind = "book"
	KindCD   MediaKind = "cd"
)

// Media represents a catalog item with its availability flag. Exactly one of
// Book or CD is set, matching Kind; the lending engine only ever reads the
// kind tag, id and title.
type Media struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Kind      MediaKind   `json:"kind"`
	Available bool        `json:"available"`
	Book      *BookDetail `json:"book,omitempty"`
	CD        *CDDetail   `json:"cd,omitempty"`
}

// BookDetail carries the book-specific catalog fields.
type BookDetail struct {
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// CDDetail carries the CD-specific catalog fields.
type CDDetail struct {
	Artist          string `json:"artist"`
	Genre           string `json:"genre"`
	DurationMinutes int    `json:"duration_minutes"`
}
