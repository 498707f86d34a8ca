package store

import (
	"horizon/pkg/codec"
	"horizon/pkg/models"
	"horizon/pkg/table"
)

const userFieldCount = 4

func encodeUser(u models.User) string {
	return codec.Join(u.Username, u.Password, u.Role, u.Department)
}

func decodeUser(_ int, line string) (models.User, bool) {
	fields, ok := codec.Split(line, userFieldCount)
	if !ok {
		return models.User{}, false
	}
	return models.User{
		Username:   fields[0],
		Password:   fields[1],
		Role:       fields[2],
		Department: fields[3],
	}, true
}

// LoadUsers hydrates the user table from the user store. A missing store
// yields an empty table.
func (s *Store) LoadUsers(capacity int) *table.Table[models.User] {
	return loadTable(s, usersFile, capacity, decodeUser)
}

// SaveUsers rewrites the user store.
func (s *Store) SaveUsers(tbl *table.Table[models.User]) error {
	return saveTable(s, usersFile, countHeader(tbl.Count()), tbl.Records(), encodeUser)
}
