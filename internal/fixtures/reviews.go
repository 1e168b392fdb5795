package fixtures

// ReviewTemplate is a canned review submitted for a freshly seeded book.
type ReviewTemplate struct {
	Text   string
	Rating int
}

// reviewTemplates maps a book title to its curated review set. Titles without
// an entry fall back to GenericReviews.
var reviewTemplates = map[string][]ReviewTemplate{
	"1984": {
		{Text: "Chilling and prophetic. The surveillance state Orwell imagined feels closer every year.", Rating: 5},
		{Text: "Heavy going in the middle section, but the ending is unforgettable.", Rating: 4},
		{Text: "Required reading. Newspeak alone is worth the price of admission.", Rating: 5},
	},
	"Animal Farm": {
		{Text: "A fable that says more in 140 pages than most political treatises manage in 500.", Rating: 5},
		{Text: "All reviews are equal, but some reviews are more equal than others.", Rating: 4},
	},
	"To Kill a Mockingbird": {
		{Text: "Atticus Finch remains the moral center American fiction keeps returning to.", Rating: 5},
		{Text: "Seen through Scout's eyes, the small-town cruelty lands even harder.", Rating: 5},
		{Text: "A little slow to start, but patient readers are rewarded.", Rating: 4},
	},
	"The Hobbit": {
		{Text: "The warmest adventure story ever written. Riddles in the dark is a perfect chapter.", Rating: 5},
		{Text: "Lighter than its sequels and better for it.", Rating: 4},
	},
	"The Fellowship of the Ring": {
		{Text: "The Council of Elrond drags, but the Mines of Moria make up for everything.", Rating: 4},
		{Text: "World-building nobody has matched since.", Rating: 5},
	},
	"Pride and Prejudice": {
		{Text: "Two hundred years old and the dialogue still sparkles.", Rating: 5},
		{Text: "Darcy's first proposal is the most satisfying trainwreck in literature.", Rating: 5},
	},
	"The Great Gatsby": {
		{Text: "The green light at the end of the dock earns every bit of its fame.", Rating: 5},
		{Text: "Beautiful prose wrapped around hollow people, which is exactly the point.", Rating: 4},
	},
	"Brave New World": {
		{Text: "Scarier than 1984 because everyone in it is having a wonderful time.", Rating: 5},
		{Text: "The Shakespeare-quoting savage is a blunt device, but it works.", Rating: 4},
	},
	"Fahrenheit 451": {
		{Text: "Bradbury writes about burning books with the fervor of a man who loves them.", Rating: 5},
		{Text: "Short, furious, and sadly evergreen.", Rating: 4},
	},
}

// GenericReviews is the fallback set for titles with no curated entry.
var GenericReviews = []ReviewTemplate{
	{Text: "A solid addition to any library. Worth the read.", Rating: 4},
	{Text: "Enjoyed it more than I expected to.", Rating: 4},
}
