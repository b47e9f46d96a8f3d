package domain

// Reference data. CRUD for these entities lives outside the core (see
// Non-goals); the core only reads them to validate and annotate commands.

type Item struct {
	ID     int64
	SKU    string
	Name   string
	IsMeat bool
}

type Supplier struct {
	ID   int64
	Name string
}

type Customer struct {
	ID   int64
	Name string
}

type LocationKind string

type Location struct {
	ID   int64
	Name string
	Kind LocationKind
}

// LossType is an active/inactive code accepted on BreakdownLoss rows.
type LossType struct {
	ID        int64
	Code      string
	Name      string
	Active    bool
	SortOrder int
}

// AgingMode distinguishes how a ProcessProfile's default_aging_days is applied.
type AgingMode string

// ProcessProfile governs whether a ProductionOrder may mix lots and, for
// aging, how long a lot rests before it is ready.
type ProcessProfile struct {
	ID                int64
	Name              string
	AllowsLotMixing   bool
	DefaultAgingDays  *int
	Mode              *AgingMode
}

// QASplitProfileName is the well-known process profile name used for
// ProductionOrder.process_type = qa_split, fetched by name instead of a
// hard-coded id.
const QASplitProfileName = "QA Split"

// ReworkProfileName is the well-known process profile used for rework
// orders; it never allows lot mixing.
const ReworkProfileName = "Rework / Regrade"

// BreakdownProfileName is the well-known process profile used for breakdown
// orders, fetched by name for the same reason as QASplitProfileName.
const BreakdownProfileName = "Breakdown"
