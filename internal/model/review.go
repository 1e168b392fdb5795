package model

type Review struct {
	ID       string `bson:"_id,omitempty" json:"id,omitempty"`
	BookISBN string `bson:"bookIsbn,omitempty" json:"bookIsbn,omitempty"`
	Text     string `bson:"text" json:"text"`
	Rating   int    `bson:"rating" json:"rating"`
	Reviewer string `bson:"reviewer,omitempty" json:"reviewer,omitempty"`
}
