package service

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// CalculateWorkHours derives the "H:MM" worked-hours string from "HH:MM"
// check-in/check-out clocks. A missing or unparsable endpoint, or a
// check-out that is not strictly after the check-in, yields "0:00".
// Shifts longer than six hours lose one hour to the lunch break.
func CalculateWorkHours(checkIn, checkOut *string) string {
	if checkIn == nil || checkOut == nil {
		return "0:00"
	}
	in, err := time.Parse(clockLayout, *checkIn)
	if err != nil {
		return "0:00"
	}
	out, err := time.Parse(clockLayout, *checkOut)
	if err != nil {
		return "0:00"
	}
	if !out.After(in) {
		return "0:00"
	}
	diff := out.Sub(in)
	if diff > 6*time.Hour {
		diff -= time.Hour
	}
	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
