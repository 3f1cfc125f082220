// File: services/chat/responder.go
package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// rule maps trigger keywords to a canned reply. Rules are checked in order;
// the first rule with any keyword present in the message wins.
type rule struct {
	keywords []string
	reply    string
}

// Responder produces canned replies for the support chat widget. Matching is
// keyword-based and case-insensitive; unmatched messages draw from a
// fallback pool.
type Responder struct {
	rules     []rule
	fallbacks []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder builds the default rule table.
func NewResponder(seed int64) *Responder {
	return &Responder{
		rules: []rule{
			{
				keywords: []string{"book", "appointment", "schedule"},
				reply:    "You can book an appointment through the Booking page. Pick a service, choose a counselor, and select a date and time that works for you.",
			},
			{
				keywords: []string{"cancel", "reschedule"},
				reply:    "To cancel or reschedule, open My Bookings and select the appointment. Please give us at least 24 hours notice when you can.",
			},
			{
				keywords: []string{"urgent", "emergency", "crisis", "help me"},
				reply:    "If this is an emergency, please call the campus crisis line at (02) 8888-1234 right away. It is staffed 24/7. You matter, and help is available.",
			},
			{
				keywords: []string{"stress", "anxious", "anxiety", "overwhelmed"},
				reply:    "Feeling stressed is very common, especially around exams. Our Academic Stress Counseling service can help, and the Resources page has self-help guides you can start with today.",
			},
			{
				keywords: []string{"sad", "depressed", "lonely", "down"},
				reply:    "I'm sorry you're feeling this way. Talking to one of our counselors can really help. Would you like to book a session? All conversations are confidential.",
			},
			{
				keywords: []string{"hours", "open", "available"},
				reply:    "The counseling center is open Monday to Friday, 8:00 AM to 5:00 PM. Chat support is available 9:00 AM to 6:00 PM on weekdays.",
			},
			{
				keywords: []string{"free", "cost", "fee", "pay"},
				reply:    "All counseling services are free for enrolled students. You only need your student ID to book.",
			},
			{
				keywords: []string{"confidential", "private", "privacy"},
				reply:    "Everything you share with our counselors stays confidential, in line with the center's privacy policy and professional ethics standards.",
			},
			{
				keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
				reply:    "Hello! Welcome to CampusCare support. How can I help you today?",
			},
			{
				keywords: []string{"thank", "thanks"},
				reply:    "You're welcome! Feel free to reach out any time. Take care!",
			},
		},
		fallbacks: []string{
			"Thanks for reaching out. Could you tell me a bit more about what you need help with?",
			"I want to make sure I point you to the right place. Are you asking about booking, our services, or something else?",
			"A counselor can give you a much better answer than I can. Would you like to book a session or leave a message through the Contact page?",
			"I'm not sure I caught that. You can ask me about booking appointments, our services, opening hours, or campus resources.",
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reply returns the canned response for a message.
func (r *Responder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lower, kw) {
				return rl.reply
			}
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[r.rng.Intn(len(r.fallbacks))]
}
