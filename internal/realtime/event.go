package realtime

// Event names pushed over the viewer channel.
const (
	EventConnected      = "connected"
	EventBidUpdate      = "bid_update"
	EventPollUpdate     = "poll_update"
	EventActivityUpdate = "activity_update"
)

// Event is one broadcast message delivered to every connected viewer.
// Viewers receiving poll_update re-fetch via the read API instead of
// trusting an embedded payload.
type Event struct {
	Name    string `json:"event"`
	Payload any    `json:"data,omitempty"`
}

// Publisher is the narrow broadcast capability handed to services. It
// decouples them from the set of active viewer connections, which the hub
// manages.
type Publisher interface {
	Publish(event Event)
}

// BidUpdate is the payload broadcast after a successful bid.
type BidUpdate struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
	BidderName string `json:"bidder_name"`
	BidAmount  int    `json:"bid_amount"`
}
