package fixtures

// SeedBook is a book record before author resolution: AuthorName links it to
// an entry in Authors and is replaced by an embedded {id, name} snapshot when
// the book document is built.
type SeedBook struct {
	ISBN           string
	Title          string
	Year           int
	AuthorName     string
	Synopsis       string
	Publisher      string
	Pages          int
	Language       string
	TotalInventory int
	Available      int
}

var Books = []SeedBook{
	{
		ISBN:           "9780451524935",
		Title:          "1984",
		Year:           1949,
		AuthorName:     "George Orwell",
		Synopsis:       "Winston Smith rewrites history for the Ministry of Truth while dreaming of rebellion against Big Brother.",
		Publisher:      "Signet Classic",
		Pages:          328,
		Language:       "English",
		TotalInventory: 5,
		Available:      5,
	},
	{
		ISBN:           "9780452284241",
		Title:          "Animal Farm",
		Year:           1945,
		AuthorName:     "George Orwell",
		Synopsis:       "The animals of Manor Farm overthrow their farmer only to watch their revolution curdle into tyranny.",
		Publisher:      "Plume",
		Pages:          144,
		Language:       "English",
		TotalInventory: 4,
		Available:      4,
	},
	{
		ISBN:           "9780060935467",
		Title:          "To Kill a Mockingbird",
		Year:           1960,
		AuthorName:     "Harper Lee",
		Synopsis:       "Scout Finch watches her father defend a Black man falsely accused of a crime in Depression-era Alabama.",
		Publisher:      "Harper Perennial",
		Pages:          336,
		Language:       "English",
		TotalInventory: 5,
		Available:      5,
	},
	{
		ISBN:           "9780547928227",
		Title:          "The Hobbit",
		Year:           1937,
		AuthorName:     "J.R.R. Tolkien",
		Synopsis:       "Bilbo Baggins is swept out of his comfortable hole into a quest to reclaim a dwarven kingdom from a dragon.",
		Publisher:      "Mariner Books",
		Pages:          300,
		Language:       "English",
		TotalInventory: 6,
		Available:      6,
	},
	{
		ISBN:           "9780547928210",
		Title:          "The Fellowship of the Ring",
		Year:           1954,
		AuthorName:     "J.R.R. Tolkien",
		Synopsis:       "Frodo inherits a ring of terrible power and sets out from the Shire with eight companions to destroy it.",
		Publisher:      "Mariner Books",
		Pages:          432,
		Language:       "English",
		TotalInventory: 4,
		Available:      4,
	},
	{
		ISBN:           "9780141439518",
		Title:          "Pride and Prejudice",
		Year:           1813,
		AuthorName:     "Jane Austen",
		Synopsis:       "Elizabeth Bennet and Mr. Darcy spar their way past first impressions toward an unlikely match.",
		Publisher:      "Penguin Classics",
		Pages:          480,
		Language:       "English",
		TotalInventory: 5,
		Available:      5,
	},
	{
		ISBN:           "9780141439587",
		Title:          "Emma",
		Year:           1815,
		AuthorName:     "Jane Austen",
		Synopsis:       "A clever, wealthy young woman meddles in the romances of her village and misreads nearly everyone, herself included.",
		Publisher:      "Penguin Classics",
		Pages:          474,
		Language:       "English",
		TotalInventory: 3,
		Available:      3,
	},
	{
		ISBN:           "9780743273565",
		Title:          "The Great Gatsby",
		Year:           1925,
		AuthorName:     "F. Scott Fitzgerald",
		Synopsis:       "Nick Carraway narrates the glittering, doomed obsession of Jay Gatsby with Daisy Buchanan.",
		Publisher:      "Scribner",
		Pages:          180,
		Language:       "English",
		TotalInventory: 5,
		Available:      5,
	},
	{
		ISBN:           "9780060850524",
		Title:          "Brave New World",
		Year:           1932,
		AuthorName:     "Aldous Huxley",
		Synopsis:       "In a World State of engineered castes and compulsory happiness, a 'savage' confronts civilization.",
		Publisher:      "Harper Perennial",
		Pages:          288,
		Language:       "English",
		TotalInventory: 4,
		Available:      4,
	},
	{
		ISBN:           "9780399501487",
		Title:          "Lord of the Flies",
		Year:           1954,
		AuthorName:     "William Golding",
		Synopsis:       "A planeload of schoolboys stranded on an island descend from order into savagery.",
		Publisher:      "Penguin Books",
		Pages:          224,
		Language:       "English",
		TotalInventory: 5,
		Available:      5,
	},
	{
		ISBN:           "9781451673319",
		Title:          "Fahrenheit 451",
		Year:           1953,
		AuthorName:     "Ray Bradbury",
		Synopsis:       "Fireman Guy Montag burns books for a living until he starts reading them.",
		Publisher:      "Simon & Schuster",
		Pages:          249,
		Language:       "English",
		TotalInventory: 4,
		Available:      4,
	},
	{
		ISBN:           "9781451678192",
		Title:          "The Martian Chronicles",
		Year:           1950,
		AuthorName:     "Ray Bradbury",
		Synopsis:       "Linked stories of Earth's colonization of Mars and the quiet ruin it brings to both worlds.",
		Publisher:      "Simon & Schuster",
		Pages:          256,
		Language:       "English",
		TotalInventory: 3,
		Available:      3,
	},
}
