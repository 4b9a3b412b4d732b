package ports

import (
	"context"
)

// TripPlanner is the opaque planning engine: one text prompt in, one text
// itinerary out.
type TripPlanner interface {
	Plan(ctx context.Context, prompt string) (string, error)
}
