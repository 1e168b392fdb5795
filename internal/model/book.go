package model

// AuthorRef is a denormalized {id, name} snapshot of an author embedded on a
// book record. It is a copy made at creation time, not a live reference.
type AuthorRef struct {
	ID   string `bson:"_id" json:"_id"`
	Name string `bson:"name" json:"name"`
}

// Book uses its ISBN as the record identity.
type Book struct {
	ISBN           string      `bson:"_id" json:"isbn"`
	Title          string      `bson:"title" json:"title"`
	Year           int         `bson:"year" json:"year"`
	Authors        []AuthorRef `bson:"authors" json:"authors"`
	Synopsis       string      `bson:"synopsis" json:"synopsis"`
	Publisher      string      `bson:"publisher" json:"publisher"`
	Pages          int         `bson:"pages" json:"pages"`
	Language       string      `bson:"language" json:"language"`
	TotalInventory int         `bson:"totalInventory" json:"totalInventory"`
	Available      int         `bson:"available" json:"available"`
	Attributes     []string    `bson:"attributes" json:"attributes"`
	Reviews        []Review    `bson:"reviews" json:"reviews"`
}

// BookRef is the lean representation returned for a book that already existed,
// callers must not expect the full record shape behind it.
type BookRef struct {
	ISBN  string `json:"isbn"`
	Title string `json:"title"`
}
