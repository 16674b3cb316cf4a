// Package delivery decides how many deliveries of a crafted item are worth making
// against an escalating requirement schedule.
package delivery

// MaxSearchDeliveries caps the best-mode search
const MaxSearchDeliveries = 50

// Milestones are the delivery counts rewards are paid out at, largest first
var Milestones = []int{25, 20, 10, 2, 1}

// SnapToMilestone returns the largest milestone not above deliveries, or 0 if none
func SnapToMilestone(deliveries int) int {
	for _, m := range Milestones {
		if m <= deliveries {
			return m
		}
	}
	return 0
}
