// Package user contains the User aggregate and its Role value object.
//
// A user is created through registration with a unique email and a bcrypt
// password hash; the aggregate stores the hash only and never exposes it in
// read models. Roles are a closed vocabulary: customer, driver, admin.
package user
