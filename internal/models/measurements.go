package models

// Field keys are the ASCII identifiers derived from the Swedish labels on
// the product page ("Bredd", "Brygga", "Glasbredd", "Skalmlängd").
const (
	FieldFrameWidth   = "bredd"
	FieldBridgeWidth  = "brygga"
	FieldLensWidth    = "glasbredd"
	FieldTempleLength = "skalmlangd"
)

// Fields returns the known measurement fields in output column order.
func Fields() []string {
	return []string{FieldFrameWidth, FieldBridgeWidth, FieldLensWidth, FieldTempleLength}
}

// Measurements is one output row: the product URL plus up to four frame
// measurements in millimeters. A nil field means the value could not be
// parsed or matched for that product, not that it is zero.
type Measurements struct {
	URL          string
	FrameWidth   *int
	BridgeWidth  *int
	LensWidth    *int
	TempleLength *int
}

func NewMeasurements(url string) *Measurements {
	return &Measurements{URL: url}
}

// Set stores a measurement under a normalized field key. It returns false
// for keys outside the known field set.
func (m *Measurements) Set(field string, mm int) bool {
	switch field {
	case FieldFrameWidth:
		m.FrameWidth = &mm
	case FieldBridgeWidth:
		m.BridgeWidth = &mm
	case FieldLensWidth:
		m.LensWidth = &mm
	case FieldTempleLength:
		m.TempleLength = &mm
	default:
		return false
	}
	return true
}

// Get returns the stored value for a field key and whether it is present.
func (m *Measurements) Get(field string) (int, bool) {
	var v *int
	switch field {
	case FieldFrameWidth:
		v = m.FrameWidth
	case FieldBridgeWidth:
		v = m.BridgeWidth
	case FieldLensWidth:
		v = m.LensWidth
	case FieldTempleLength:
		v = m.TempleLength
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}
