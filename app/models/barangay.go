package models

// barangayCodes maps the three-character prefix of a PWD card ID to the
// barangay it was issued in. Codes "001".."020" cover the office's
// jurisdiction.
var barangayCodes = map[string]string{
	"001": "Almanza Uno",
	"002": "Daniel Fajardo",
	"003": "Elias Aldana",
	"004": "Ilaya",
	"005": "Manuyo Uno",
	"006": "Pamplona Uno",
	"007": "Pulanglupa Uno",
	"008": "Talon Uno",
	"009": "Zapote",
	"010": "Almanza Dos",
	"011": "BF International/CAA",
	"012": "Manuyo Dos",
	"013": "Pamplona Dos",
	"014": "Pamplona Tres",
	"015": "Pilar",
	"016": "Pulanglupa Dos",
	"017": "Talon Dos",
	"018": "Talon Tres",
	"019": "Talon Kuatro",
	"020": "Talon Singko",
}

// Barangays lists the valid barangay names in form/display order.
var Barangays = []string{
	"Almanza Uno",
	"Daniel Fajardo",
	"Elias Aldana",
	"Ilaya",
	"Manuyo Uno",
	"Pamplona Uno",
	"Pulanglupa Uno",
	"Talon Uno",
	"Zapote",
	"Almanza Dos",
	"BF International/CAA",
	"Manuyo Dos",
	"Pamplona Dos",
	"Pamplona Tres",
	"Pilar",
	"Pulanglupa Dos",
	"Talon Dos",
	"Talon Tres",
	"Talon Kuatro",
	"Talon Singko",
}

// BarangayFromCode resolves a card ID prefix to its barangay name.
func BarangayFromCode(code string) (string, bool) {
	name, ok := barangayCodes[code]
	return name, ok
}

// ValidBarangay reports whether name is one of the 20 known barangays.
func ValidBarangay(name string) bool {
	for _, b := range Barangays {
		if b == name {
			return true
		}
	}
	return false
}
