package models

import "time"

// Roles recognised by the service.
const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleStudent = "Student"
)

// User represents a platform user. Branch/Section/Semester classify
// students and drive the my-timetable lookup.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	Branch    string    `bson:"branch,omitempty" json:"branch,omitempty"`
	Section   string    `bson:"section,omitempty" json:"section,omitempty"`
	Semester  string    `bson:"semester,omitempty" json:"semester,omitempty"`
	TokenHash string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
