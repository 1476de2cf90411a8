package types

// DatePreset is a named shortcut date range for the dashboard filter
type DatePreset string

const (
	DatePresetMTD    DatePreset = "MTD"
	DatePresetYTD    DatePreset = "YTD"
	DatePreset2024   DatePreset = "2024"
	DatePreset2023   DatePreset = "2023"
	DatePresetCustom DatePreset = "custom"
)

// String returns the string representation of the preset
func (p DatePreset) String() string {
	return string(p)
}

// IsValid checks if the preset is valid
func (p DatePreset) IsValid() bool {
	switch p {
	case DatePresetMTD, DatePresetYTD, DatePreset2024, DatePreset2023, DatePresetCustom:
		return true
	default:
		return false
	}
}
