package tui

import (
	"fmt"

	"github.com/MKhiriev/go-cam-scan/models"
)

// pairingInstructions tells the user what the camera expects before it
// accepts the connection. It is empty when no pairing is needed.
func pairingInstructions(method models.AuthMethod) string {
	switch m := method.(type) {
	case nil:
		return ""
	case models.InteractAtDevice:
		return "Please confirm the connection on the camera."
	case models.UsernamePassword:
		if m.Realm == "" {
			return "The camera asks for a username and password."
		}
		return fmt.Sprintf("The camera asks for your %s username and password.", m.Realm)
	case models.NumericCode:
		if m.Digits <= 0 {
			return "Enter the code shown on the camera."
		}
		return fmt.Sprintf("Enter the %d-digit code shown on the camera.", m.Digits)
	default:
		return fmt.Sprintf("The camera needs pairing (%T).", method)
	}
}
