package marketplace

import (
	"strings"
)

const Unknown = "UNKNOWN"

type Orientation string

const (
	OrientationN  Orientation = "N"
	OrientationNE Orientation = "NE"
	OrientationE  Orientation = "E"
	OrientationSE Orientation = "SE"
	OrientationS  Orientation = "S"
	OrientationSW Orientation = "SW"
	OrientationW  Orientation = "W"
	OrientationNW Orientation = "NW"

	OrientationUnknown Orientation = Unknown
)

var orientations = map[string]Orientation{
	"noord": OrientationN, "n": OrientationN,
	"noordoost": OrientationNE, "no": OrientationNE, "ne": OrientationNE,
	"oost": OrientationE, "o": OrientationE, "e": OrientationE,
	"zuidoost": OrientationSE, "zo": OrientationSE, "se": OrientationSE,
	"zuid": OrientationS, "z": OrientationS, "s": OrientationS,
	"zuidwest": OrientationSW, "zw": OrientationSW, "sw": OrientationSW,
	"west": OrientationW, "w": OrientationW,
	"noordwest": OrientationNW, "nw": OrientationNW,
}

// ParseOrientation maps "Zuid-West", "ZW" and the like to a compass point.
func ParseOrientation(s string) Orientation {
	key := strings.ToLower(strings.NewReplacer("-", "", " ", "", ".", "").Replace(s))
	if o, ok := orientations[key]; ok {
		return o
	}
	return OrientationUnknown
}

type FloodRisk string

const (
	FloodRiskEffective FloodRisk = "EFFECTIVE"
	FloodRiskPossible  FloodRisk = "POSSIBLE"
	FloodRiskNone      FloodRisk = "NONE"
	FloodRiskUnknown   FloodRisk = Unknown
)

// ParseFloodRisk reads the "Risicozone voor overstromingen" style values.
func ParseFloodRisk(s string) FloodRisk {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return FloodRiskUnknown
	case strings.Contains(v, "mogelijk"):
		return FloodRiskPossible
	case strings.Contains(v, "effectief"):
		return FloodRiskEffective
	case strings.Contains(v, "niet"), strings.Contains(v, "geen"):
		return FloodRiskNone
	}
	switch firstWord(v) {
	case "ja":
		return FloodRiskEffective
	case "nee":
		return FloodRiskNone
	}
	return FloodRiskUnknown
}

type Permit string

const (
	PermitYes     Permit = "YES"
	PermitNo      Permit = "NO"
	PermitUnknown Permit = Unknown
)

// ParsePermit reads "Bouwvergunning"/"Verkavelingsvergunning" values.
func ParsePermit(s string) Permit {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return PermitUnknown
	case strings.Contains(v, "niet"), strings.Contains(v, "geen"):
		return PermitNo
	case strings.HasPrefix(v, "vergund"), strings.Contains(v, "verkregen"):
		return PermitYes
	}
	switch firstWord(v) {
	case "ja":
		return PermitYes
	case "nee":
		return PermitNo
	}
	return PermitUnknown
}

type EnergyLabel string

const EnergyLabelUnknown EnergyLabel = Unknown

var energyLabels = map[string]EnergyLabel{
	"A+": "A+", "A": "A", "B": "B", "C": "C", "D": "D", "E": "E", "F": "F", "G": "G",
}

// ParseEnergyLabel takes an explicit label ("B", "Label C") or derives one
// from the EPC score in kWh/m² using the Flemish residential bands.
func ParseEnergyLabel(s string) EnergyLabel {
	for _, tok := range strings.Fields(strings.ToUpper(s)) {
		if l, ok := energyLabels[tok]; ok {
			return l
		}
	}
	if strings.TrimSpace(s) == "" {
		return EnergyLabelUnknown
	}
	fields := strings.Fields(s)
	if _, ok := parseDutchNumber(fields[0]); !ok {
		return EnergyLabelUnknown
	}
	score := ParseLeadingInt(s)
	switch {
	case score <= 0:
		return "A+"
	case score <= 100:
		return "A"
	case score <= 200:
		return "B"
	case score <= 300:
		return "C"
	case score <= 400:
		return "D"
	case score <= 500:
		return "E"
	}
	return "F"
}

func firstWord(s string) string {
	f := strings.Fields(strings.Trim(s, ".,;"))
	if len(f) == 0 {
		return ""
	}
	return strings.Trim(f[0], ".,;:")
}
