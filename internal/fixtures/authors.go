package fixtures

import "library_seeder/internal/model"

// Authors is the baseline author dataset. IDs are assigned on first insert,
// so the fixture records carry an empty ID.
var Authors = []model.Author{
	{
		Name:       "George Orwell",
		SearchName: "george orwell",
		Aliases:    []string{"Eric Arthur Blair"},
		Bio:        "English novelist and essayist, known for his lucid prose and opposition to totalitarianism.",
		Books:      []string{},
	},
	{
		Name:       "Harper Lee",
		SearchName: "harper lee",
		Aliases:    []string{"Nelle Harper Lee"},
		Bio:        "American novelist whose single published novel for decades became a classic of modern American literature.",
		Books:      []string{},
	},
	{
		Name:       "J.R.R. Tolkien",
		SearchName: "j.r.r. tolkien",
		Aliases:    []string{"John Ronald Reuel Tolkien"},
		Bio:        "English writer and philologist, author of the high fantasy works that shaped the genre.",
		Books:      []string{},
	},
	{
		Name:       "Jane Austen",
		SearchName: "jane austen",
		Aliases:    []string{},
		Bio:        "English novelist known for her six major novels of manners set among the landed gentry.",
		Books:      []string{},
	},
	{
		Name:       "F. Scott Fitzgerald",
		SearchName: "f. scott fitzgerald",
		Aliases:    []string{"Francis Scott Key Fitzgerald"},
		Bio:        "American novelist of the Jazz Age, celebrated for his portraits of wealth and disillusionment.",
		Books:      []string{},
	},
	{
		Name:       "Aldous Huxley",
		SearchName: "aldous huxley",
		Aliases:    []string{},
		Bio:        "English writer and philosopher, author of nearly fifty books spanning novels and essays.",
		Books:      []string{},
	},
	{
		Name:       "William Golding",
		SearchName: "william golding",
		Aliases:    []string{"William Gerald Golding"},
		Bio:        "British novelist and Nobel laureate, best known for his debut novel about marooned schoolboys.",
		Books:      []string{},
	},
	{
		Name:       "Ray Bradbury",
		SearchName: "ray bradbury",
		Aliases:    []string{"Ray Douglas Bradbury"},
		Bio:        "American author of speculative fiction, bridging science fiction and literary fantasy.",
		Books:      []string{},
	},
}
