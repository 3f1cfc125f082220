// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "campuscare/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Booking   *BookingHandler
	Catalog   *CatalogHandler
	Contact   *ContactHandler
	Chat      *ChatHandler
	Feedback  *FeedbackHandler
	Resources *ResourceHandler
	User      *UserHandler
}
