// File: services/resources/catalog.go
package resources

import "campuscare/models"

// Resource activity kinds recorded against a user.
const (
	ActivityStarted = models.ResourceActivityStarted
	ActivitySaved   = models.ResourceActivitySaved
)

// defaultResources is the built-in wellness resource library.
func defaultResources() []models.Resource {
	return []models.Resource{
		{Key: "breathing-basics", Title: "5-Minute Breathing Exercises", Category: "self-help", Description: "Guided breathing techniques to calm anxiety before exams or presentations.", Duration: "5 min"},
		{Key: "sleep-hygiene", Title: "Better Sleep for Students", Category: "self-help", Description: "Practical sleep hygiene habits for dorm life and late study nights.", Duration: "10 min read"},
		{Key: "mindful-study", Title: "Mindful Study Breaks", Category: "self-help", Description: "Short mindfulness practices to reset focus between study blocks.", Duration: "8 min"},
		{Key: "stress-journal", Title: "Stress Journaling Starter", Category: "self-help", Description: "A simple journaling structure for tracking stressors and wins.", Duration: "15 min read"},
		{Key: "crisis-hotlines", Title: "Crisis Hotlines & Emergency Contacts", Category: "crisis", Description: "24/7 hotlines, the campus crisis line, and how to reach after-hours support.", Duration: "2 min read"},
		{Key: "suicide-warning-signs", Title: "Recognizing Warning Signs", Category: "crisis", Description: "How to recognize when you or a friend needs immediate help, and what to do next.", Duration: "7 min read"},
		{Key: "exam-anxiety", Title: "Managing Exam Anxiety", Category: "academic", Description: "Evidence-based strategies for test anxiety, from preparation to exam day.", Duration: "12 min read"},
		{Key: "time-blocking", Title: "Time Blocking for Heavy Course Loads", Category: "academic", Description: "A scheduling method that prevents all-nighters and burnout.", Duration: "10 min read"},
		{Key: "procrastination", Title: "Breaking the Procrastination Cycle", Category: "academic", Description: "Why procrastination happens and small steps that actually work.", Duration: "9 min read"},
		{Key: "peer-support", Title: "Peer Support Groups", Category: "community", Description: "Weekly student-led groups for shared experiences, from homesickness to thesis stress.", Duration: "varies"},
		{Key: "campus-events", Title: "Wellness Events Calendar", Category: "community", Description: "Upcoming wellness workshops, de-stress fairs, and therapy dog visits.", Duration: "varies"},
	}
}
