package model

// Author is the authoritative author record stored in the authors collection.
// SearchName holds the lowercased name used for case-insensitive lookups.
type Author struct {
	ID         string   `bson:"_id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	SearchName string   `bson:"searchName" json:"searchName"`
	Aliases    []string `bson:"aliases" json:"aliases"`
	Bio        string   `bson:"bio" json:"bio"`
	Books      []string `bson:"books" json:"books"`
}
