package component

// Hazard is the damage an arena hazard deals on entry.
type Hazard struct {
	Damage    int
	Knockback float64
}

var HazardComponent = NewComponent[Hazard]()
