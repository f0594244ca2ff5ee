package projection

import (
	"time"

	"github.com/limbo/coachplan/pkg/entity"
)

// ExpiringSoonDays is the window, in days, in which a bono is flagged as
// expiring soon.
const ExpiringSoonDays = 7

// BonoStatus is the remaining balance of a bono at a given date. Neither
// counter is clamped: overuse shows as negative SessionsLeft and an expired
// bono as negative DaysLeft.
type BonoStatus struct {
	SessionsLeft int  `json:"sessions_left"`
	DaysLeft     int  `json:"days_left"`
	ExpiringSoon bool `json:"expiring_soon"`
	Expired      bool `json:"expired"`
	Overused     bool `json:"overused"`
}

func Remaining(b entity.Bono, asOf time.Time) BonoStatus {
	st := BonoStatus{
		SessionsLeft: b.SessionsTotal - b.SessionsUsed,
		DaysLeft:     DaysBetween(asOf, b.ExpiryDate),
	}
	st.ExpiringSoon = st.DaysLeft >= 0 && st.DaysLeft <= ExpiringSoonDays
	st.Expired = st.DaysLeft < 0
	st.Overused = st.SessionsLeft < 0
	return st
}

// CountExpiringSoon counts the bonos that expire within ExpiringSoonDays of asOf.
func CountExpiringSoon(bonos []entity.Bono, asOf time.Time) int {
	n := 0
	for _, b := range bonos {
		if Remaining(b, asOf).ExpiringSoon {
			n++
		}
	}
	return n
}
