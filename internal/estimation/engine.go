package estimation

// Complexity is the coarse classification of the total estimated effort.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Classification thresholds in hours. High is tested first, so a total of
// exactly 20 is Medium and a total of exactly 10 is Low.
const (
	highComplexityThreshold   = 20.0
	mediumComplexityThreshold = 10.0
)

// ClassifyComplexity maps a total estimated time to its complexity tier.
func ClassifyComplexity(totalTime float64) Complexity {
	switch {
	case totalTime > highComplexityThreshold:
		return ComplexityHigh
	case totalTime > mediumComplexityThreshold:
		return ComplexityMedium
	default:
		return ComplexityLow
	}
}

// ServerEstimate is the per-record output: the record echoed back plus its
// estimated racking time in hours.
type ServerEstimate struct {
	Type          ServerType
	Manufacturer  string
	Model         string
	Quantity      float64
	EstimatedTime float64
}

// Result is the outcome of estimating one batch of server records.
type Result struct {
	TotalTime  float64
	Breakdown  []ServerEstimate
	Complexity Complexity
}

// Engine computes racking time estimates from a static factor table.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	factors *FactorTable
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithFactorTable replaces the default factor table. A nil table is ignored
// and the default is kept.
func WithFactorTable(table *FactorTable) Option {
	return func(engine *Engine) {
		if table != nil {
			engine.factors = table
		}
	}
}

// NewEngine creates an Engine backed by the default factor table.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		factors: DefaultFactorTable(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Estimate validates each record of the batch and computes its estimated
// time as baseTime * manufacturerFactor * complexityMultiplier * quantity.
// The breakdown preserves input order and the total is the plain sum of all
// per-record estimates.
//
// Validation is fail-fast: the first invalid record aborts the whole batch
// with an InvalidInputError and no partial breakdown is returned.
func (e *Engine) Estimate(records []any) (*Result, error) {
	breakdown := make([]ServerEstimate, 0, len(records))
	totalTime := 0.0

	for i, raw := range records {
		if err := ValidateRecord(i, raw); err != nil {
			return nil, err
		}

		// Safe after validation: the record is an object, type is a valid
		// enum value and quantity is a positive number.
		record := raw.(map[string]any)
		serverType := ServerType(record[FieldType].(string))
		typeFactor, _ := e.factors.TypeFactor(serverType)
		quantity, _ := toFloat(record[FieldQuantity])
		manufacturer := asString(record[FieldManufacturer])

		estimatedTime := typeFactor.BaseTime *
			e.factors.ManufacturerFactor(manufacturer) *
			typeFactor.ComplexityMultiplier *
			quantity

		breakdown = append(breakdown, ServerEstimate{
			Type:          serverType,
			Manufacturer:  manufacturer,
			Model:         asString(record[FieldModel]),
			Quantity:      quantity,
			EstimatedTime: estimatedTime,
		})
		totalTime += estimatedTime
	}

	return &Result{
		TotalTime:  totalTime,
		Breakdown:  breakdown,
		Complexity: ClassifyComplexity(totalTime),
	}, nil
}
