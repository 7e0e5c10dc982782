// Package catalog holds the fixed mapping from team slugs (as used in the
// uploaded data sheet) to the external provider's club identifiers.
// The table is deployed configuration, not user input: it is defined once at
// startup and iterated in a fixed order so reports are deterministic.
package catalog

// Entry binds a team slug to the provider's numeric club id.
type Entry struct {
	Slug   string
	ClubID int
}

// entries is the LaLiga 2025/26 club table. Order here is the report order.
var entries = []Entry{
	{"athletic-club-bilbao", 621},
	{"atletico-madrid-madrid", 13},
	{"barcelona-barcelona", 131},
	{"celta-de-vigo-vigo", 940},
	{"deportivo-alaves-vitoria-gasteiz", 1108},
	{"elche-elche", 1531},
	{"espanyol-barcelona", 670},
	{"getafe-getafe-madrid", 3709},
	{"girona-girona", 12321},
	{"levante-valencia", 3368},
	{"mallorca-palma-de-mallorca", 237},
	{"osasuna-pamplona", 331},
	{"rayo-vallecano-madrid", 367},
	{"real-betis-sevilla", 150},
	{"real-madrid-madrid", 418},
	{"real-oviedo-oviedo", 2497},
	{"real-sociedad-san-sebastian", 681},
	{"sevilla-sevilla", 368},
	{"valencia-valencia", 1049},
	{"villarreal-villarreal", 1050},
}

// Clubs returns the catalog in its fixed iteration order. Callers must not
// mutate the returned slice.
func Clubs() []Entry {
	return entries
}

// ClubID resolves a slug to its provider club id.
func ClubID(slug string) (int, bool) {
	for _, e := range entries {
		if e.Slug == slug {
			return e.ClubID, true
		}
	}
	return 0, false
}
