package models

// Category is the closed set of storage categories an item can belong to.
// Stored values must always come from this set, never free-form strings.
type Category string

const (
	CategoryPantry       Category = "Pantry"
	CategoryFruitVeg     Category = "FruitVeg"
	CategoryFreezer      Category = "Freezer"
	CategoryRefrigerator Category = "Refrigerator"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryPantry, CategoryFruitVeg, CategoryFreezer, CategoryRefrigerator}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPantry, CategoryFruitVeg, CategoryFreezer, CategoryRefrigerator:
		return true
	}
	return false
}

// Label returns the human-readable name shown in clients.
func (c Category) Label() string {
	switch c {
	case CategoryFruitVeg:
		return "Fruit & Veg"
	case CategoryFreezer:
		return "Freezer"
	case CategoryRefrigerator:
		return "Refrigerator"
	default:
		return "Pantry"
	}
}

// Unit is the closed set of quantity units.
type Unit string

const (
	UnitUnits Unit = "units"
	UnitKg    Unit = "kg"
	UnitG     Unit = "g"
	UnitL     Unit = "L"
)

func Units() []Unit {
	return []Unit{UnitUnits, UnitKg, UnitG, UnitL}
}

func (u Unit) Valid() bool {
	switch u {
	case UnitUnits, UnitKg, UnitG, UnitL:
		return true
	}
	return false
}
