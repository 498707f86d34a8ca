package models

// Application lifecycle states.
const (
	ApplicationPending  = "Pending"
	ApplicationApproved = "Approved"
	ApplicationRejected = "Rejected"
)

// Positions a candidate can apply for. An approved application copies the
// position into the applicant's account role.
const (
	PositionAstronaut = "astronaut"
	PositionEngineer  = "engineer"
	PositionScientist = "scientist"
)

// HireApplication is one candidate's job application. A user may hold at
// most one Pending application at a time; that rule lives in the agency
// layer, not here.
type HireApplication struct {
	Username   string
	Role       string
	Experience string
	Status     string
	FullName   string
	Education  string
}
