package jobset

import "fmt"

// Flattened is the on-disk shape of a jobset. The columns backing flake
// and inputs are not nullable, so unused fields are written as "" and {}
// rather than omitted. Field order is the column order.
type Flattened struct {
	Enabled          bool   `json:"enabled"`
	Hidden           bool   `json:"hidden"`
	Description      string `json:"description"`
	CheckInterval    uint64 `json:"checkinterval"`
	SchedulingShares uint64 `json:"schedulingshares"`
	EnableEmail      bool   `json:"enableemail"`
	EmailOverride    string `json:"emailoverride"`
	KeepNr           uint64 `json:"keepnr"`
	Flake            string `json:"flake"`
	NixExprInput     string `json:"nixexprinput"`
	NixExprPath      string `json:"nixexprpath"`
	Inputs           Inputs `json:"inputs"`
}

// Jobsets maps jobset names to their flattened definitions.
type Jobsets map[string]Flattened

// Flatten unpacks the definition of j into top level fields. It never fails
// for a Legacy or Flake definition; a nil Definition panics.
func Flatten(j Jobset) Flattened {
	flat := Flattened{
		Enabled:          j.Enabled,
		Hidden:           j.Hidden,
		Description:      j.Description,
		CheckInterval:    j.CheckInterval,
		SchedulingShares: j.SchedulingShares,
		EnableEmail:      j.EnableEmail,
		EmailOverride:    j.EmailOverride,
		KeepNr:           j.KeepNr,
		Inputs:           Inputs{},
	}

	switch d := j.Definition.(type) {
	case Flake:
		flat.Flake = d.URI
	case Legacy:
		flat.NixExprInput = d.NixExprInput
		flat.NixExprPath = d.NixExprPath
		flat.Inputs = d.Inputs.Clone()
	default:
		// Definition is sealed; a nil Definition is a programming error.
		panic(fmt.Sprintf("jobset: unsupported definition %T", j.Definition))
	}

	return flat
}

// IsFlake reports whether f was produced from a Flake definition.
func (f Flattened) IsFlake() bool {
	return f.Flake != ""
}
