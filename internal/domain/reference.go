package domain

// Reference data is seeded explicitly and never created as a side effect of business logic.

// AdStatus is a named advertisement status. Its lifecycle meaning comes from configuration.
type AdStatus struct {
	ID   int64
	Name string
}

// Species of an animal.
type Species struct {
	ID   int64
	Name string
}

// Breed always belongs to exactly one species.
type Breed struct {
	ID        int64
	SpeciesID int64
	Name      string
}

// Color of an animal.
type Color struct {
	ID   int64
	Name string
}

// Region a user lives in; advertisements are filtered by their owner's region.
type Region struct {
	ID   int64
	Name string
}
