package fixtures

// UserNames are the display names seeded through the login-or-create endpoint,
// in submission order.
var UserNames = []string{
	"Alice Johnson",
	"Bob Smith",
	"Carol Davis",
	"David Wilson",
	"Emma Brown",
	"Frank Miller",
	"Grace Lee",
	"Henry Clark",
}

// ReservationPair indexes into the resolved books and user credentials slices.
type ReservationPair struct {
	BookIdx int
	UserIdx int
}

// Reservations are the seed reservation attempts. On a repeat run these are
// expected to be rejected by the API as conflicts.
var Reservations = []ReservationPair{
	{BookIdx: 0, UserIdx: 1},
	{BookIdx: 4, UserIdx: 3},
	{BookIdx: 7, UserIdx: 6},
}
