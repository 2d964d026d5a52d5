package estimation

// ServerType classifies the physical form factor of a server record.
type ServerType string

const (
	ServerTypeRack   ServerType = "rack"
	ServerTypeBlade  ServerType = "blade"
	ServerTypeCustom ServerType = "custom"
)

// IsValid reports whether t is one of the known server types.
func (t ServerType) IsValid() bool {
	switch t {
	case ServerTypeRack, ServerTypeBlade, ServerTypeCustom:
		return true
	}
	return false
}

// TypeFactor holds the per-type constants of the estimation formula.
type TypeFactor struct {
	// BaseTime is the racking time in hours for a single unit before multipliers.
	BaseTime float64
	// ComplexityMultiplier scales the base time by how involved the setup of
	// this form factor usually is.
	ComplexityMultiplier float64
}

// DefaultManufacturerFactor is used for manufacturers not present in the table.
const DefaultManufacturerFactor = 1.0

// FactorTable is the static lookup data behind the estimation formula.
// It is built once at process start and never mutated afterwards, so it is
// safe to share across concurrent requests.
type FactorTable struct {
	types         map[ServerType]TypeFactor
	manufacturers map[string]float64
}

// NewFactorTable builds a table from explicit per-type and per-manufacturer
// factors. Callers must not mutate the maps after handing them over.
func NewFactorTable(types map[ServerType]TypeFactor, manufacturers map[string]float64) *FactorTable {
	return &FactorTable{
		types:         types,
		manufacturers: manufacturers,
	}
}

// DefaultFactorTable returns the built-in factor table.
func DefaultFactorTable() *FactorTable {
	return NewFactorTable(
		map[ServerType]TypeFactor{
			ServerTypeRack:   {BaseTime: 2, ComplexityMultiplier: 1.2},
			ServerTypeBlade:  {BaseTime: 3, ComplexityMultiplier: 1.5},
			ServerTypeCustom: {BaseTime: 5, ComplexityMultiplier: 2.0},
		},
		map[string]float64{
			"Dell":       0.9,
			"HPE":        1.0,
			"Lenovo":     1.1,
			"Supermicro": 1.25,
			"Cisco":      1.3,
		},
	)
}

// TypeFactor looks up the factors for the given server type.
func (t *FactorTable) TypeFactor(serverType ServerType) (TypeFactor, bool) {
	f, ok := t.types[serverType]
	return f, ok
}

// ManufacturerFactor looks up the multiplier for the given manufacturer.
// Unknown manufacturers map to DefaultManufacturerFactor.
func (t *FactorTable) ManufacturerFactor(manufacturer string) float64 {
	if f, ok := t.manufacturers[manufacturer]; ok {
		return f
	}
	return DefaultManufacturerFactor
}
