package units

// DefaultEntries is the built-in English and German unit vocabulary.
var DefaultEntries = []Entry{
	// Volume, metric
	{Canonical: "milliliter", Class: Volume, Surfaces: []string{"ml", "milliliters", "millilitre", "millilitres"}},
	{Canonical: "liter", Class: Volume, Surfaces: []string{"l", "liters", "litre", "litres"}},

	// Volume, imperial/US
	{Canonical: "cup", Class: Volume, Surfaces: []string{"cups", "c"}},
	{Canonical: "tablespoon", Class: Volume, Surfaces: []string{"tbsp", "tablespoons"}},
	{Canonical: "teaspoon", Class: Volume, Surfaces: []string{"tsp", "teaspoons"}},
	{Canonical: "fluid_ounce", Class: Volume, Surfaces: []string{"fl oz", "fluid ounce", "fluid ounces"}},
	{Canonical: "pint", Class: Volume, Surfaces: []string{"pints", "pt"}},
	{Canonical: "quart", Class: Volume, Surfaces: []string{"quarts", "qt"}},
	{Canonical: "gallon", Class: Volume, Surfaces: []string{"gallons", "gal"}},

	// Weight, metric
	{Canonical: "gram", Class: Weight, Surfaces: []string{"g", "grams", "gramm"}},
	{Canonical: "kilogram", Class: Weight, Surfaces: []string{"kg", "kilograms", "kilogramm"}},

	// Weight, imperial/US
	{Canonical: "ounce", Class: Weight, Surfaces: []string{"oz", "ounces"}},
	{Canonical: "pound", Class: Weight, Surfaces: []string{"lb", "lbs", "pounds"}},

	// Count
	{Canonical: "piece", Class: Count, Surfaces: []string{"pieces", "pc", "pcs", "item", "items"}},

	// German volume and count
	{Canonical: "teaspoon", Class: Volume, Surfaces: []string{"tl", "teelöffel"}},
	{Canonical: "tablespoon", Class: Volume, Surfaces: []string{"el", "esslöffel", "essl"}},
	{Canonical: "pinch", Class: Volume, Surfaces: []string{"msp", "messerspitze", "prise", "prisen"}},
	{Canonical: "piece", Class: Count, Surfaces: []string{"st", "stück", "stk"}},

	// Containers
	{Canonical: "can", Class: Container, Surfaces: []string{"cans"}},
	{Canonical: "jar", Class: Container, Surfaces: []string{"jars"}},
	{Canonical: "bottle", Class: Container, Surfaces: []string{"bottles"}},
	{Canonical: "package", Class: Container, Surfaces: []string{"packages", "pkg"}},
	{Canonical: "box", Class: Container, Surfaces: []string{"boxes"}},

	// German containers
	{Canonical: "can", Class: Container, Surfaces: []string{"dose", "dosen"}},
	{Canonical: "package", Class: Container, Surfaces: []string{"packung", "päckchen", "pck"}},
	{Canonical: "jar", Class: Container, Surfaces: []string{"glas"}},
	{Canonical: "bottle", Class: Container, Surfaces: []string{"flasche"}},
	{Canonical: "cup", Class: Container, Surfaces: []string{"becher"}},

	// Specialized counts
	{Canonical: "clove", Class: Count, Surfaces: []string{"cloves", "zehe", "zehen"}},
	{Canonical: "bunch", Class: Count, Surfaces: []string{"bunches", "bund"}},
	{Canonical: "head", Class: Count, Surfaces: []string{"heads", "kopf"}},
	{Canonical: "slice", Class: Count, Surfaces: []string{"slices", "scheibe", "scheiben"}},
}

var defaultTable = NewTable(DefaultEntries)

// Default returns the process-wide built-in table.
func Default() *Table {
	return defaultTable
}
