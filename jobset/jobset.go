// Package jobset models Hydra jobsets and the flat record Hydra's
// declarative jobset loader stores in its jobsets table.
package jobset

// Input is a named build input of a legacy jobset.
type Input struct {
	Type             string `json:"type" yaml:"type"`
	Value            string `json:"value" yaml:"value"`
	EmailResponsible bool   `json:"emailresponsible" yaml:"emailresponsible"`
}

// Inputs maps an input name to its definition. encoding/json writes map
// keys in sorted order, so the serialized form is stable.
type Inputs map[string]Input

// Clone returns a copy that shares no storage with i. A nil receiver
// yields an empty, non-nil map.
func (i Inputs) Clone() Inputs {
	out := make(Inputs, len(i))
	for k, v := range i {
		out[k] = v
	}
	return out
}

// Definition is how Hydra finds the expression to evaluate. It is either
// Legacy or Flake.
type Definition interface {
	definition()
}

// Legacy names an input and a path inside it, plus every input the
// expression may refer to.
type Legacy struct {
	NixExprInput string
	NixExprPath  string
	Inputs       Inputs
}

// Flake points at a flake by URI.
type Flake struct {
	URI string
}

func (Legacy) definition() {}
func (Flake) definition()  {}

// Jobset is a single Hydra jobset.
type Jobset struct {
	Enabled          bool
	Hidden           bool
	Description      string
	CheckInterval    uint64
	SchedulingShares uint64
	EnableEmail      bool
	EmailOverride    string
	KeepNr           uint64
	Definition       Definition
}
