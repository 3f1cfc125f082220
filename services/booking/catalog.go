package booking

import (
	"fmt"

	"campuscare/models"
)

// Catalog holds the static service and counselor lookup tables. It is loaded
// once at startup and never mutated.
type Catalog struct {
	services   map[string]models.Service
	counselors map[string]models.Counselor

	serviceKeys   []string
	counselorKeys []string
}

// DefaultCatalog returns the built-in catalog of counseling services and
// counselors.
func DefaultCatalog() *Catalog {
	services := []models.Service{
		{Key: "academic", Name: "Academic Stress Counseling", Duration: "50 min", Fee: "Free for enrolled students"},
		{Key: "career", Name: "Career & Future Planning", Duration: "60 min", Fee: "Free for enrolled students"},
		{Key: "adjustment", Name: "College Adjustment Support", Duration: "45 min", Fee: "Free for enrolled students"},
		{Key: "social", Name: "Social Skills & Relationships", Duration: "50 min", Fee: "Free for enrolled students"},
		{Key: "crisis", Name: "Crisis Intervention", Duration: "30-60 min", Fee: "Free for enrolled students"},
	}
	counselors := []models.Counselor{
		{Key: "maria", Name: "Dr. Maria Santos", Specialty: "Head Campus Psychologist", Experience: "10 years", Rating: "4.9"},
		{Key: "james", Name: "Prof. James Reyes", Specialty: "Guidance Counselor", Experience: "8 years", Rating: "4.8"},
		{Key: "andrea", Name: "Dr. Andrea Cruz", Specialty: "Student Wellness Coordinator", Experience: "7 years", Rating: "4.9"},
		{Key: "carlos", Name: "Dr. Carlos Lim", Specialty: "Clinical Psychologist", Experience: "12 years", Rating: "4.9"},
	}

	c := &Catalog{
		services:   make(map[string]models.Service, len(services)),
		counselors: make(map[string]models.Counselor, len(counselors)),
	}
	for _, s := range services {
		c.services[s.Key] = s
		c.serviceKeys = append(c.serviceKeys, s.Key)
	}
	for _, cs := range counselors {
		c.counselors[cs.Key] = cs
		c.counselorKeys = append(c.counselorKeys, cs.Key)
	}
	return c
}

// Services returns all services in catalog order.
func (c *Catalog) Services() []models.Service {
	out := make([]models.Service, 0, len(c.serviceKeys))
	for _, k := range c.serviceKeys {
		out = append(out, c.services[k])
	}
	return out
}

// Counselors returns all counselors in catalog order.
func (c *Catalog) Counselors() []models.Counselor {
	out := make([]models.Counselor, 0, len(c.counselorKeys))
	for _, k := range c.counselorKeys {
		out = append(out, c.counselors[k])
	}
	return out
}

// ServiceByKey looks up a service.
func (c *Catalog) ServiceByKey(key string) (models.Service, error) {
	s, ok := c.services[key]
	if !ok {
		return models.Service{}, fmt.Errorf("unknown service %q", key)
	}
	return s, nil
}

// CounselorByKey looks up a counselor.
func (c *Catalog) CounselorByKey(key string) (models.Counselor, error) {
	cs, ok := c.counselors[key]
	if !ok {
		return models.Counselor{}, fmt.Errorf("unknown counselor %q", key)
	}
	return cs, nil
}
