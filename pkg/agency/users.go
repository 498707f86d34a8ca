package agency

import "horizon/pkg/models"

// superAdmin is the built-in account that can never be deleted.
const superAdmin = "themystery"

// defaultDepartment is assigned to fresh sign-ups.
const defaultDepartment = "GEN"

// SignUp registers a new visitor account. Username uniqueness is enforced
// here, not by the table.
func (a *Agency) SignUp(username, password string) error {
	if a.findUser(username) != -1 {
		return ErrUsernameTaken
	}
	user := models.User{
		Username:   username,
		Password:   password,
		Role:       models.RoleVisitor,
		Department: defaultDepartment,
	}
	if err := a.Users.Append(user); err != nil {
		return err
	}
	a.Log.Append("New Visitor Registered: " + username)
	return a.store.SaveUsers(a.Users)
}

// Authenticate matches the credentials against the user table and returns
// the account and its position, or ok=false.
func (a *Agency) Authenticate(username, password string) (models.User, int, bool) {
	found := models.User{}
	index := -1
	a.Users.Scan(func(i int, u models.User) bool {
		if u.Username == username && u.Password == password {
			found, index = u, i
			return false
		}
		return true
	})
	return found, index, index != -1
}

// SetUserRole rewrites one account's role.
func (a *Agency) SetUserRole(index int, role string) error {
	if err := a.Users.Update(index, func(u *models.User) { u.Role = role }); err != nil {
		return err
	}
	user, _ := a.Users.At(index)
	a.Log.Append("Updated Role: " + user.Username)
	return a.store.SaveUsers(a.Users)
}

// DeleteUser removes an account. The built-in admin is protected.
func (a *Agency) DeleteUser(index int) error {
	user, err := a.Users.At(index)
	if err != nil {
		return err
	}
	if user.Username == superAdmin {
		return ErrProtectedUser
	}
	if err := a.Users.RemoveAt(index); err != nil {
		return err
	}
	a.Log.Append("Deleted User: " + user.Username)
	return a.store.SaveUsers(a.Users)
}

func (a *Agency) findUser(username string) int {
	index := -1
	a.Users.Scan(func(i int, u models.User) bool {
		if u.Username == username {
			index = i
			return false
		}
		return true
	})
	return index
}
