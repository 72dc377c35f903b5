// utils/slots.go
package utils

// TimeSlots is the fixed set of bookable hourly ranges. A booking's TimeSlot
// must be one of these labels verbatim.
var TimeSlots = []string{
	"9:00 AM - 10:00 AM", "10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM", "1:00 PM - 2:00 PM", "2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM", "4:00 PM - 5:00 PM",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
