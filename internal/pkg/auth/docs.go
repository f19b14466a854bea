// Package auth provides credential hashing and access-token handling:
// bcrypt password hashing and HS256 JWTs carrying the user's id, email
// and role.
package auth
