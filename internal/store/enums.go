package store

// Adventure types shared by users and partners
const (
	AdventureWater = "water"
	AdventureAir   = "air"
	AdventureLand  = "land"
)

// User ENUMs
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

// Partner ENUMs
const (
	PartnerStatusPending  = "pending"
	PartnerStatusApproved = "approved"
	PartnerStatusRejected = "rejected"
)

const (
	BusinessTypeTourOperator    = "tour_operator"
	BusinessTypeEquipmentRental = "equipment_rental"
	BusinessTypeAccommodation   = "accommodation"
	BusinessTypeTrainingCenter  = "training_center"
	BusinessTypeOther           = "other"
)

// Event registration ENUMs
const (
	AttendeeTypeUser     = "user"
	AttendeeTypePartner  = "partner"
	AttendeeTypeInvestor = "investor"
	AttendeeTypeMedia    = "media"
)

// API log ENUMs
const (
	APILogMethodTrack = "TRACK"
)

// IsValidPartnerStatus reports whether status is one of the legal partner statuses
func IsValidPartnerStatus(status string) bool {
	switch status {
	case PartnerStatusPending, PartnerStatusApproved, PartnerStatusRejected:
		return true
	}
	return false
}
