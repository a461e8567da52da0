package models

import "time"

type Grade struct {
	Name string `bson:"name" json:"name"`
	Year int    `bson:"year,omitempty" json:"year,omitempty"`
}

type School struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Grades        []Grade   `bson:"grades" json:"grades"`
	LicenseExpiry time.Time `bson:"license_expiry" json:"licenseExpiry"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasGrade reports whether the school offers the given grade label.
func (s *School) HasGrade(name string) bool {
	for _, g := range s.Grades {
		if g.Name == name {
			return true
		}
	}
	return false
}

// LicenseValid reports whether the license covers the given moment.
func (s *School) LicenseValid(now time.Time) bool {
	return s.LicenseExpiry.After(now)
}
