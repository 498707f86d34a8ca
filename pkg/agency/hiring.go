package agency

import "horizon/pkg/models"

// Apply files a job application. A user may hold at most one Pending
// application at a time.
func (a *Agency) Apply(username, fullName, education, experience, role string) error {
	pending := false
	a.Applications.Scan(func(_ int, app models.HireApplication) bool {
		if app.Username == username && app.Status == models.ApplicationPending {
			pending = true
			return false
		}
		return true
	})
	if pending {
		return ErrPendingApplication
	}

	application := models.HireApplication{
		Username:   username,
		Role:       role,
		Experience: experience,
		Status:     models.ApplicationPending,
		FullName:   fullName,
		Education:  education,
	}
	if err := a.Applications.Append(application); err != nil {
		return err
	}
	a.Log.Append("Applied: " + role)
	return a.store.SaveHires(a.Applications)
}

// ApplicationsFor returns every application filed by one user, in filing
// order.
func (a *Agency) ApplicationsFor(username string) []models.HireApplication {
	var out []models.HireApplication
	a.Applications.Scan(func(_ int, app models.HireApplication) bool {
		if app.Username == username {
			out = append(out, app)
		}
		return true
	})
	return out
}

// PendingApplications returns the positions of all applications awaiting a
// decision.
func (a *Agency) PendingApplications() []int {
	var out []int
	a.Applications.Scan(func(i int, app models.HireApplication) bool {
		if app.Status == models.ApplicationPending {
			out = append(out, i)
		}
		return true
	})
	return out
}

// ApproveApplication promotes the applicant's account to the applied role
// and marks the application Approved. Astronaut hires are additionally
// copied onto the roster as an active Recruit when the roster has room;
// rosterAdded reports whether that copy happened.
func (a *Agency) ApproveApplication(index int) (rosterAdded bool, err error) {
	application, err := a.Applications.At(index)
	if err != nil {
		return false, err
	}

	userIndex := a.findUser(application.Username)
	if userIndex == -1 {
		return false, ErrApplicantUnknown
	}
	_ = a.Users.Update(userIndex, func(u *models.User) { u.Role = application.Role })
	if err := a.store.SaveUsers(a.Users); err != nil {
		return false, err
	}

	_ = a.Applications.Update(index, func(h *models.HireApplication) { h.Status = models.ApplicationApproved })
	a.Log.Append("Hired " + application.Username)

	if application.Role == models.PositionAstronaut {
		recruit := models.Astronaut{
			Name:   application.FullName,
			Rank:   "Recruit",
			Status: models.AstronautActive,
		}
		if appendErr := a.Astronauts.Append(recruit); appendErr == nil {
			rosterAdded = true
			if err := a.store.SaveAstronauts(a.Astronauts); err != nil {
				return rosterAdded, err
			}
		}
	}
	return rosterAdded, a.store.SaveHires(a.Applications)
}

// RejectApplication marks an application Rejected.
func (a *Agency) RejectApplication(index int) error {
	if err := a.Applications.Update(index, func(h *models.HireApplication) { h.Status = models.ApplicationRejected }); err != nil {
		return err
	}
	return a.store.SaveHires(a.Applications)
}
