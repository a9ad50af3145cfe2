package entities

// Vertical is the trade a business operates in. The set is closed: adding a
// vertical means adding a row to verticalCapabilities.
type Vertical string

const (
	VerticalHVAC        Vertical = "hvac"
	VerticalPlumbing    Vertical = "plumbing"
	VerticalElectrical  Vertical = "electrical"
	VerticalLawnCare    Vertical = "lawn_care"
	VerticalPestControl Vertical = "pest_control"
	VerticalCleaning    Vertical = "cleaning"
)

// VerticalCapabilities is the per-vertical behaviour table.
type VerticalCapabilities struct {
	DefaultJobHours        float64
	RequiredCertifications []string
	RouteOptimization      bool
}

var verticalCapabilities = map[Vertical]VerticalCapabilities{
	VerticalHVAC:        {DefaultJobHours: 2, RequiredCertifications: []string{"epa_608"}, RouteOptimization: true},
	VerticalPlumbing:    {DefaultJobHours: 1.5, RequiredCertifications: []string{"licensed_plumber"}, RouteOptimization: true},
	VerticalElectrical:  {DefaultJobHours: 2, RequiredCertifications: []string{"licensed_electrician"}, RouteOptimization: true},
	VerticalLawnCare:    {DefaultJobHours: 1, RouteOptimization: true},
	VerticalPestControl: {DefaultJobHours: 1, RequiredCertifications: []string{"pesticide_applicator"}, RouteOptimization: true},
	VerticalCleaning:    {DefaultJobHours: 3, RouteOptimization: false},
}

var genericCapabilities = VerticalCapabilities{DefaultJobHours: 1, RouteOptimization: true}

func (v Vertical) Valid() bool {
	_, ok := verticalCapabilities[v]
	return ok
}

// Capabilities returns the table row, or generic defaults for an unset vertical.
func (v Vertical) Capabilities() VerticalCapabilities {
	if c, ok := verticalCapabilities[v]; ok {
		return c
	}
	return genericCapabilities
}

func Verticals() []Vertical {
	return []Vertical{VerticalHVAC, VerticalPlumbing, VerticalElectrical, VerticalLawnCare, VerticalPestControl, VerticalCleaning}
}
